// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorKind is the error taxonomy surfaced in operation results.
type ErrorKind string

const (
	ErrorKindNone        ErrorKind = ""
	ErrorKindCrypto      ErrorKind = "CryptoError"
	ErrorKindAuth        ErrorKind = "AuthError"
	ErrorKindIO          ErrorKind = "IOError"
	ErrorKindIntegrity   ErrorKind = "IntegrityError"
	ErrorKindConcurrency ErrorKind = "ConcurrencyError"
	ErrorKindValidation  ErrorKind = "ValidationError"
)

// FolderOperationResult is returned by LockFolder.
type FolderOperationResult struct {
	Success        bool      `json:"success"`
	Error          string    `json:"error,omitempty"`
	ErrorKind      ErrorKind `json:"error_kind,omitempty"`
	FolderID       string    `json:"folder_id,omitempty"`
	Identifier     string    `json:"identifier,omitempty"`
	ProcessedFiles int       `json:"processed_files"`
	TotalFiles     int       `json:"total_files"`
	Warnings       []string  `json:"warnings,omitempty"`
}

// UnlockResult is returned by UnlockFolder and RelockTemporaryFolders.
type UnlockResult struct {
	Success        bool      `json:"success"`
	Error          string    `json:"error,omitempty"`
	ErrorKind      ErrorKind `json:"error_kind,omitempty"`
	FolderID       string    `json:"folder_id,omitempty"`
	RestoredPath   string    `json:"restored_path,omitempty"`
	ProcessedFiles int       `json:"processed_files"`
	// RelockedFolders lists the folders re-encrypted by a relock call.
	RelockedFolders []string `json:"relocked_folders,omitempty"`
	// FailedFolders lists the folders left TEMP_UNLOCKED by a relock call.
	FailedFolders []string `json:"failed_folders,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

// IntegrityIssueKind classifies a vault consistency violation.
type IntegrityIssueKind string

const (
	IssueMissingVaultMetadata IntegrityIssueKind = "missing_vault_metadata"
	IssueMissingMetadata      IntegrityIssueKind = "missing_folder_metadata"
	IssueMissingCiphertext    IntegrityIssueKind = "missing_ciphertext"
	IssueChecksumMismatch     IntegrityIssueKind = "checksum_mismatch"
	IssueOrphanedCiphertext   IntegrityIssueKind = "orphaned_ciphertext"
	IssueOrphanedMetadata     IntegrityIssueKind = "orphaned_metadata"
	IssueUnindexedFolder      IntegrityIssueKind = "unindexed_folder"
	IssueMissingOriginal      IntegrityIssueKind = "missing_original_path"
	IssueStaleTemporaryState  IntegrityIssueKind = "stale_temporary_state"
	IssueStaleStaging         IntegrityIssueKind = "stale_staging"
	IssueCountMismatch        IntegrityIssueKind = "count_mismatch"
	IssueCorruptedFolder      IntegrityIssueKind = "corrupted_folder"
)

// IntegrityIssue is one violation found by the validator.
type IntegrityIssue struct {
	FolderID      string             `json:"folder_id,omitempty"`
	VaultLocation string             `json:"vault_location,omitempty"`
	Kind          IntegrityIssueKind `json:"kind"`
	Detail        string             `json:"detail"`
	// Recoverable issues can be fixed by RepairVaultStructure without data loss.
	Recoverable bool `json:"recoverable"`
}

// IntegrityReport is the outcome of a validation pass.
type IntegrityReport struct {
	ProfileID string           `json:"profile_id"`
	Valid     bool             `json:"valid"`
	Issues    []IntegrityIssue `json:"issues,omitempty"`
}

// FolderIssues returns the issues that reference folderID.
func (r IntegrityReport) FolderIssues(folderID string) []IntegrityIssue {
	var out []IntegrityIssue
	for _, issue := range r.Issues {
		if issue.FolderID == folderID {
			out = append(out, issue)
		}
	}
	return out
}

// RepairResult is returned by RepairVaultStructure.
type RepairResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	// Repaired lists the issues fixed in place.
	Repaired []IntegrityIssue `json:"repaired,omitempty"`
	// Corrupted lists folder ids marked CORRUPTED for manual recovery.
	Corrupted []string `json:"corrupted,omitempty"`
	// Unresolved lists issues surfaced to the recovery collaborator.
	Unresolved []IntegrityIssue `json:"unresolved,omitempty"`
}
