package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned when the binary was built without
	// a version string.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrVaultNotFound is returned for a profile that has no vault.
	ErrVaultNotFound = errors.New("profile vault not found")
	// ErrVaultExists is returned when creating a vault that already exists.
	ErrVaultExists = errors.New("profile vault already exists")

	// ErrEmptyMasterKey is returned when no master key is supplied.
	ErrEmptyMasterKey = errors.New("master key is empty")
	// ErrInvalidMasterKey is returned when the master key does not match the
	// vault verifier. It is never retried.
	ErrInvalidMasterKey = errors.New("master key verification failed")
	// ErrSessionKeyUnavailable is returned by a relock that has no cached
	// folder key for a temporarily unlocked folder, typically after a
	// restart. The folder can be relocked with the master key.
	ErrSessionKeyUnavailable = errors.New("folder key for relock is not available in this session")

	// ErrFolderNotFound is returned when the vault tracks no such folder.
	ErrFolderNotFound = errors.New("folder is not tracked by the vault")
	// ErrAlreadyTracked is returned when locking a path that overlaps a
	// folder the vault already tracks.
	ErrAlreadyTracked = errors.New("folder is already tracked by the vault")
	// ErrInvalidState is returned when an operation is not allowed in the
	// folder's current lock state.
	ErrInvalidState = errors.New("operation is not allowed in the current folder state")
	// ErrNotADirectory is returned when the lock target is not a real
	// directory.
	ErrNotADirectory = errors.New("folder path is not a directory")
	// ErrUnsupportedFile is returned for sockets, devices and pipes.
	ErrUnsupportedFile = errors.New("special files cannot be locked")
	// ErrOriginalPathExists is returned when an unlock would overwrite an
	// existing object at the original path.
	ErrOriginalPathExists = errors.New("original path is occupied")

	// ErrIntegrity marks metadata and ciphertext that disagree.
	ErrIntegrity = errors.New("vault integrity violation")
	// ErrOriginalPathMissing is returned when a temporarily unlocked folder
	// disappeared from its original path.
	ErrOriginalPathMissing = errors.New("temporarily unlocked folder is missing from its original path")

	// ErrLockTimeout is returned when the per-profile lock could not be
	// acquired within the configured bound.
	ErrLockTimeout = errors.New("timed out waiting for the profile lock")

	// ErrBackupNotConfigured is returned by backup operations when no backup
	// target is configured.
	ErrBackupNotConfigured = errors.New("vault backup is not configured")
	// ErrVaultNotEmpty is returned when restoring a backup into a vault that
	// still tracks folders.
	ErrVaultNotEmpty = errors.New("profile vault is not empty")
)
