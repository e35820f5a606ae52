// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the vault engine: folder lock and unlock, the
// temporary-unlock lifecycle, integrity validation and repair, and the
// profile-scoped facades that serialize all of it per profile.
package service

import (
	"context"

	"github.com/MKhiriev/phantom-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProfileVault is the entry point of one profile's vault. Every method takes
// the profile's exclusive lock; different profiles proceed in parallel.
// Operations that change the vault return result values instead of errors.
type ProfileVault interface {
	// ProfileID returns the owning profile.
	ProfileID() string

	// LockFolder encrypts the folder at folderPath into the vault and wipes
	// the original. masterKey is not retained or modified.
	LockFolder(ctx context.Context, folderPath string, masterKey []byte) models.FolderOperationResult

	// UnlockFolder restores a locked folder to its original path. folder is
	// the folder id or its obfuscated identifier.
	UnlockFolder(ctx context.Context, folder string, masterKey []byte, mode models.UnlockMode, trigger models.UnlockTrigger) models.UnlockResult

	// RelockTemporaryFolders re-encrypts every TEMP_UNLOCKED folder with the
	// folder keys cached by this session.
	RelockTemporaryFolders(ctx context.Context) models.UnlockResult

	// RelockTemporaryFoldersWithKey is RelockTemporaryFolders for folders
	// whose session key is gone, for example after a restart.
	RelockTemporaryFoldersWithKey(ctx context.Context, masterKey []byte) models.UnlockResult

	ListFolders(ctx context.Context) ([]models.SecuredFolder, error)
	FolderInfo(ctx context.Context, folder string) (models.SecuredFolder, error)
	TemporarilyUnlocked(ctx context.Context) ([]models.SecuredFolder, error)

	// ValidateIntegrity cross-checks index, metadata and ciphertext.
	ValidateIntegrity(ctx context.Context) models.IntegrityReport

	// RepairStructure fixes recoverable issues, marks folders with
	// unrecoverable issues CORRUPTED and reports them.
	RepairStructure(ctx context.Context) models.RepairResult

	// VaultSize returns the bytes the vault occupies on disk.
	VaultSize(ctx context.Context) (int64, error)

	// Backup uploads an archive of the vault to the backup target.
	Backup(ctx context.Context) (models.BackupInfo, error)

	// RestoreBackup replaces an empty vault with the archive at objectKey.
	RestoreBackup(ctx context.Context, objectKey string) error
}

// VaultManager owns the profile vaults under one vault root.
type VaultManager interface {
	CreateProfileVault(ctx context.Context, profileID string) (ProfileVault, error)
	Profile(ctx context.Context, profileID string) (ProfileVault, error)
	ListProfiles(ctx context.Context) ([]string, error)

	// DeleteProfileVault verifies masterKey and removes the whole vault.
	DeleteProfileVault(ctx context.Context, profileID string, masterKey []byte) error

	// RelockAll relocks the temporarily unlocked folders of every profile.
	RelockAll(ctx context.Context) map[string]models.UnlockResult

	// PerformMaintenance validates every vault, repairs when auto repair is
	// enabled and reports what remains.
	PerformMaintenance(ctx context.Context) map[string]models.IntegrityReport

	ValidateAll(ctx context.Context) map[string]models.IntegrityReport
	TotalSize(ctx context.Context) (int64, error)
}

// RecoveryReporter receives integrity and corruption events that need user
// attention.
type RecoveryReporter interface {
	Report(ctx context.Context, event models.RecoveryEvent) error
}

// BackupTarget stores vault archives off the machine.
type BackupTarget interface {
	// Upload archives the vault directory root of profileID.
	Upload(ctx context.Context, profileID, root string) (models.BackupInfo, error)
	// Restore extracts the archive at objectKey into root.
	Restore(ctx context.Context, profileID, objectKey, root string) error
	// List returns the archives of profileID, newest first.
	List(ctx context.Context, profileID string) ([]models.BackupInfo, error)
}

// AppInfoService exposes the build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ProgressFunc is called after every file of a lock, unlock or relock with
// the number of files done and the total. It may be called from several
// goroutines.
type ProgressFunc func(done, total int)
