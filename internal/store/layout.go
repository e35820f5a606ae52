// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Names of the entries of a profile vault root.
const (
	VaultMetadataFile = "vault_metadata"
	FoldersDir        = "folders"
	MetadataDir       = "metadata"
	TempDir           = "temp"
	TempUnlockFile    = "temp_unlock_state"

	// CiphertextSuffix is appended to every stored file.
	CiphertextSuffix = ".pvault"

	// DirPerm and FilePerm are applied to everything the vault creates.
	DirPerm  os.FileMode = 0o700
	FilePerm os.FileMode = 0o600
)

// Layout resolves paths inside one profile vault root.
//
//	<root>/vault_metadata
//	<root>/folders/<location>/...    ciphertext tree
//	<root>/metadata/<location>       FolderMetadata
//	<root>/temp/                     scratch space
//	<root>/temp_unlock_state
type Layout struct {
	Root string
}

func (l Layout) VaultMetadataPath() string { return filepath.Join(l.Root, VaultMetadataFile) }
func (l Layout) FoldersDir() string        { return filepath.Join(l.Root, FoldersDir) }
func (l Layout) MetadataDir() string       { return filepath.Join(l.Root, MetadataDir) }
func (l Layout) TempDir() string           { return filepath.Join(l.Root, TempDir) }
func (l Layout) TempUnlockPath() string    { return filepath.Join(l.Root, TempUnlockFile) }

// FolderDir returns folders/<location>. location must pass ValidateLocation.
func (l Layout) FolderDir(location string) (string, error) {
	if err := ValidateLocation(location); err != nil {
		return "", err
	}
	return filepath.Join(l.FoldersDir(), location), nil
}

// MetadataPath returns metadata/<location>.
func (l Layout) MetadataPath(location string) (string, error) {
	if err := ValidateLocation(location); err != nil {
		return "", err
	}
	return filepath.Join(l.MetadataDir(), location), nil
}

// Ensure creates the vault directories with owner-only permissions.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.Root, l.FoldersDir(), l.MetadataDir(), l.TempDir()} {
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		if err := os.Chmod(dir, DirPerm); err != nil {
			return fmt.Errorf("chmod %s: %w", dir, err)
		}
	}
	return nil
}

// ValidateLocation accepts a single path element that cannot be hidden or
// escape its parent.
func ValidateLocation(location string) error {
	switch {
	case location == "", location == ".", location == "..":
		return fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	case strings.ContainsAny(location, `/\`), strings.ContainsRune(location, 0):
		return fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	case strings.HasPrefix(location, "."):
		return fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	return nil
}
