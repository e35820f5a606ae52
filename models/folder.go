// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LockState is the lifecycle state of a vault-tracked folder.
//
// Transitions:
//
//	UNLOCKED ──lock──▶ LOCKED ──unlock(TEMPORARY)──▶ TEMP_UNLOCKED ──relock──▶ LOCKED
//	                     │                                │
//	                     └──unlock(PERMANENT)─────────────┴──▶ PERMANENTLY_REMOVED
//
// CORRUPTED is entered only by the integrity repair pass and is left only
// through manual recovery.
type LockState string

const (
	StateUnlocked           LockState = "UNLOCKED"
	StateLocked             LockState = "LOCKED"
	StateTempUnlocked       LockState = "TEMP_UNLOCKED"
	StatePermanentlyRemoved LockState = "PERMANENTLY_REMOVED"
	StateCorrupted          LockState = "CORRUPTED"
)

// UnlockMode selects the lifetime of an unlock.
type UnlockMode string

const (
	// UnlockTemporary restores plaintext but keeps the folder vault-owned;
	// the next session-boundary relock encrypts it again.
	UnlockTemporary UnlockMode = "TEMPORARY"
	// UnlockPermanent restores plaintext and drops the folder from the vault.
	UnlockPermanent UnlockMode = "PERMANENT"
)

// Valid reports whether m is one of the known unlock modes.
func (m UnlockMode) Valid() bool {
	return m == UnlockTemporary || m == UnlockPermanent
}

// SecuredFolder is the vault index record of one folder. It is owned by a
// single profile vault and never shared between profiles.
type SecuredFolder struct {
	// ID is the stable folder handle (UUIDv7) returned by LockFolder.
	ID string `json:"id"`
	// ProfileID is the owning profile.
	ProfileID string `json:"profile_id"`
	// OriginalPath is the absolute, cleaned path the folder was locked from.
	OriginalPath string `json:"original_path"`
	// VaultLocation is the obfuscated identifier naming folders/<id> and
	// metadata/<id> inside the profile vault.
	VaultLocation string `json:"vault_location"`
	// State is the current lifecycle state.
	State LockState `json:"state"`
	// Lifetime is set while the folder is unlocked.
	Lifetime UnlockMode `json:"lifetime,omitempty"`
	// CreatedAt is the time of the first lock.
	CreatedAt time.Time `json:"created_at"`
	// LastAccess is the time of the last lock, unlock or relock.
	LastAccess time.Time `json:"last_access"`
	// OriginalSize is the total plaintext size in bytes.
	OriginalSize int64 `json:"original_size"`
	// FileCount is the number of regular files in the folder.
	FileCount int `json:"file_count"`
}
