// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// phantom-vault engine.
//
// All Msg* constants are human-readable message strings that are written into
// operation results or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording for every caller of
// the engine.
package app

const (
	// MsgInvalidDataProvided is returned when a request fails validation
	// (e.g. a relative path or an unknown unlock mode).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidMasterKey is returned when the master key does not match
	// the vault verifier.
	MsgInvalidMasterKey = "invalid master key"

	// MsgEmptyMasterKey is returned when no master key was supplied.
	MsgEmptyMasterKey = "master key is required"

	// MsgVaultNotFound is returned when the profile has no vault.
	MsgVaultNotFound = "profile vault not found"

	// MsgVaultExists is returned when creating a vault that already exists.
	MsgVaultExists = "profile vault already exists"

	// MsgVaultNotEmpty is returned when a backup restore targets a vault
	// that still tracks folders.
	MsgVaultNotEmpty = "profile vault is not empty"

	// MsgFolderNotFound is returned when the vault tracks no such folder.
	MsgFolderNotFound = "folder not found"

	// MsgFolderAlreadyTracked is returned when the lock target overlaps a
	// folder the vault already tracks.
	MsgFolderAlreadyTracked = "folder is already secured"

	// MsgNotADirectory is returned when the lock target is not a directory.
	MsgNotADirectory = "path is not a directory"

	// MsgUnsupportedFile is returned when the folder contains sockets,
	// devices or pipes.
	MsgUnsupportedFile = "folder contains unsupported special files"

	// MsgOriginalPathExists is returned when an unlock target is occupied.
	MsgOriginalPathExists = "original location is occupied"

	// MsgOriginalPathMissing is returned when a temporarily unlocked folder
	// disappeared from its original location.
	MsgOriginalPathMissing = "temporarily unlocked folder is missing"

	// MsgInvalidState is returned when the folder state does not allow the
	// operation.
	MsgInvalidState = "operation not allowed in the current folder state"

	// MsgSessionKeyUnavailable is returned when a relock needs the master
	// key because the session no longer holds the folder key.
	MsgSessionKeyUnavailable = "master key is required to relock this folder"

	// MsgIntegrityViolation is returned when metadata and ciphertext
	// disagree.
	MsgIntegrityViolation = "vault integrity violation"

	// MsgCryptoFailure is returned when a crypto primitive fails.
	MsgCryptoFailure = "encryption failure"

	// MsgLockTimeout is returned when the profile is busy with another
	// operation for longer than the configured bound.
	MsgLockTimeout = "profile vault is busy"

	// MsgOperationCancelled is returned when the caller cancelled the
	// operation and it was rolled back.
	MsgOperationCancelled = "operation cancelled"

	// MsgBackupNotConfigured is returned by backup operations when no
	// object storage is configured.
	MsgBackupNotConfigured = "vault backup is not configured"

	// MsgIOError is returned for filesystem failures.
	MsgIOError = "filesystem error"

	// MsgVersionIsNotSpecified is returned when the binary carries no
	// version string.
	MsgVersionIsNotSpecified = "version is not specified"
)
