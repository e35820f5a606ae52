// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package obfuscation names vault entries so that nothing in the vault
// layout reveals the folders it protects, and removes what a locked folder
// leaves behind at its original location.
package obfuscation

//go:generate mockgen -source=interfaces.go -destination=../mock/obfuscation_namer_mock.go -package=mock

// Namer generates obfuscated identifiers and decoys and erases path traces.
type Namer interface {
	// GenerateIdentifier derives a filesystem-safe identifier for
	// originalPath keyed by the vault salt. A fresh salt is drawn on every
	// call, so locking the same path twice yields unlinkable identifiers.
	// The salt is returned for storage in FolderMetadata.
	GenerateIdentifier(originalPath string, vaultSalt []byte) (identifier string, salt []byte, err error)

	// IsValidIdentifier reports whether id has the identifier shape.
	IsValidIdentifier(id string) bool

	// CreateDecoyStructure creates up to count empty directories next to
	// identifier inside foldersDir and returns their names. Failures are
	// tolerated; the names created so far are returned with the error.
	CreateDecoyStructure(foldersDir, identifier string, count int) ([]string, error)

	// EliminatePathTraces removes what remains at originalPath after a lock:
	// an empty directory and any in-flight or restore artifacts created
	// for that path.
	EliminatePathTraces(originalPath string) error

	// ArtifactPath returns a hidden sibling path of originalPath used while
	// moving a folder in or out of the vault.
	ArtifactPath(originalPath string, kind ArtifactKind) (string, error)

	// SecureRemoveAll overwrites every regular file under path with random
	// data and removes the tree.
	SecureRemoveAll(path string) error
}
