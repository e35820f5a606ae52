// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// VaultSchemaVersion is written into every new VaultMetadata document. The
// blob algorithm and manifest layout are fixed per schema version.
const VaultSchemaVersion = "1.0"

// EntryKind distinguishes manifest entries.
type EntryKind string

const (
	EntryDir     EntryKind = "dir"
	EntryFile    EntryKind = "file"
	EntrySymlink EntryKind = "symlink"
)

// FileAttributes is the filesystem metadata captured from an object before it
// is locked and re-applied after it is restored.
type FileAttributes struct {
	Mode       uint32            `json:"mode"`
	UID        int               `json:"uid"`
	GID        int               `json:"gid"`
	CreatedAt  time.Time         `json:"created_at"`
	ModifiedAt time.Time         `json:"modified_at"`
	AccessedAt time.Time         `json:"accessed_at"`
	Xattrs     map[string][]byte `json:"xattrs,omitempty"`
}

// ManifestEntry describes one object of a locked tree. Paths are slash
// separated and relative to the folder root.
type ManifestEntry struct {
	Path  string         `json:"path"`
	Kind  EntryKind      `json:"kind"`
	Attrs FileAttributes `json:"attrs"`

	// Size is the plaintext size of a regular file.
	Size int64 `json:"size,omitempty"`
	// LinkTarget is set for symlinks.
	LinkTarget string `json:"link_target,omitempty"`
	// Compression is the algorithm applied before encryption ("none", "zstd").
	Compression string `json:"compression,omitempty"`
	// PlainChecksum is a hex multihash of the plaintext.
	PlainChecksum string `json:"plain_checksum,omitempty"`
	// CipherChecksum is a hex multihash of the whole stored blob.
	CipherChecksum string `json:"cipher_checksum,omitempty"`
}

// FolderMetadata is the per-folder document stored at metadata/<identifier>.
// It is written once per lock and never mutated while the folder is LOCKED.
type FolderMetadata struct {
	FolderID             string            `json:"folder_id"`
	OriginalPath         string            `json:"original_path"`
	ObfuscatedIdentifier string            `json:"obfuscated_identifier"`
	ObfuscationSalt      []byte            `json:"obfuscation_salt"`
	DecoyPaths           []string          `json:"decoy_paths,omitempty"`
	Root                 FileAttributes    `json:"root"`
	ExtendedAttributes   map[string][]byte `json:"extended_attributes,omitempty"`

	// KeySalt is the PBKDF2 salt of the folder key.
	KeySalt       []byte          `json:"key_salt"`
	KDFIterations int             `json:"kdf_iterations"`
	Algorithm     string          `json:"algorithm"`
	Entries       []ManifestEntry `json:"entries"`
	FileCount     int             `json:"file_count"`
	TotalSize     int64           `json:"total_size"`
	LockedAt      time.Time       `json:"locked_at"`
}

// Files returns the regular-file entries of the manifest.
func (m *FolderMetadata) Files() []ManifestEntry {
	files := make([]ManifestEntry, 0, m.FileCount)
	for _, e := range m.Entries {
		if e.Kind == EntryFile {
			files = append(files, e)
		}
	}
	return files
}

// KeyVerifier lets the vault check a master key without decrypting data.
type KeyVerifier struct {
	Algorithm  string `json:"algorithm"`
	Iterations int    `json:"iterations"`
	Salt       []byte `json:"salt"`
	Token      []byte `json:"token"`
}

// VaultMetadata is the per-profile index stored at vault_metadata.
type VaultMetadata struct {
	ProfileID       string                   `json:"profile_id"`
	VaultVersion    string                   `json:"vault_version"`
	CreatedAt       time.Time                `json:"created_at"`
	ModifiedAt      time.Time                `json:"modified_at"`
	LockedFolderIDs []string                 `json:"locked_folder_ids"`
	Folders         map[string]SecuredFolder `json:"folders"`
	TotalFolders    int                      `json:"total_folders"`
	TotalFiles      int                      `json:"total_files"`
	ObfuscationSalt []byte                   `json:"obfuscation_salt"`
	Verifier        *KeyVerifier             `json:"verifier,omitempty"`
}

// NewVaultMetadata returns an empty index for profileID.
func NewVaultMetadata(profileID string, now time.Time) *VaultMetadata {
	return &VaultMetadata{
		ProfileID:       profileID,
		VaultVersion:    VaultSchemaVersion,
		CreatedAt:       now,
		ModifiedAt:      now,
		LockedFolderIDs: []string{},
		Folders:         map[string]SecuredFolder{},
	}
}

// Track appends folder to the index, keeping LockedFolderIDs ordered by
// insertion and free of duplicates.
func (v *VaultMetadata) Track(folder SecuredFolder) {
	if v.Folders == nil {
		v.Folders = map[string]SecuredFolder{}
	}
	if !slices.Contains(v.LockedFolderIDs, folder.ID) {
		v.LockedFolderIDs = append(v.LockedFolderIDs, folder.ID)
	}
	v.Folders[folder.ID] = folder
	v.Recount()
}

// Untrack removes folderID from the index.
func (v *VaultMetadata) Untrack(folderID string) {
	v.LockedFolderIDs = slices.DeleteFunc(v.LockedFolderIDs, func(id string) bool { return id == folderID })
	delete(v.Folders, folderID)
	v.Recount()
}

// Recount recomputes the aggregate counters from the folder records.
func (v *VaultMetadata) Recount() {
	v.TotalFolders = len(v.LockedFolderIDs)
	v.TotalFiles = 0
	for _, id := range v.LockedFolderIDs {
		v.TotalFiles += v.Folders[id].FileCount
	}
}

// FindByPath returns the record tracking originalPath.
func (v *VaultMetadata) FindByPath(originalPath string) (SecuredFolder, bool) {
	for _, id := range v.LockedFolderIDs {
		if f := v.Folders[id]; f.OriginalPath == originalPath {
			return f, true
		}
	}
	return SecuredFolder{}, false
}

// FindByLocation returns the record stored under the obfuscated identifier.
func (v *VaultMetadata) FindByLocation(location string) (SecuredFolder, bool) {
	for _, id := range v.LockedFolderIDs {
		if f := v.Folders[id]; f.VaultLocation == location {
			return f, true
		}
	}
	return SecuredFolder{}, false
}

// TemporaryUnlockState is stored at temp_unlock_state while at least one
// folder is TEMP_UNLOCKED.
type TemporaryUnlockState struct {
	UnlockedFolderIDs []string  `json:"unlocked_folder_ids"`
	UnlockTimestamp   time.Time `json:"unlock_timestamp"`
}
