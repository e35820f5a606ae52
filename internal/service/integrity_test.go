// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/phantom-vault/models"
)

func issueKinds(issues []models.IntegrityIssue) []models.IntegrityIssueKind {
	out := make([]models.IntegrityIssueKind, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Kind)
	}
	return out
}

func lockTestFolder(t *testing.T, pv *profileVault, name string) models.FolderOperationResult {
	t.Helper()
	folder := filepath.Join(t.TempDir(), name)
	writeTree(t, folder)
	res := pv.LockFolder(context.Background(), folder, masterKey)
	require.True(t, res.Success, res.Error)
	return res
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestValidate_FreshVault(t *testing.T) {
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	report := pv.ValidateIntegrity(context.Background())
	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
	assert.Equal(t, "alice", report.ProfileID)
}

func TestValidate_MissingVaultMetadata(t *testing.T) {
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	require.NoError(t, os.Remove(pv.vault.layout.VaultMetadataPath()))

	report := pv.ValidateIntegrity(context.Background())
	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, models.IssueMissingVaultMetadata, report.Issues[0].Kind)
	assert.False(t, report.Issues[0].Recoverable)

	reporter := &recordingReporter{}
	pv.integrity.reporter = reporter
	repair := pv.RepairStructure(context.Background())
	assert.False(t, repair.Success)
	assert.Len(t, repair.Unresolved, 1)
	assert.Equal(t, []models.RecoveryEventKind{models.EventIntegrityError}, reporter.kinds())
}

func TestIntegrity_ByteFlipMarksFolderCorrupted(t *testing.T) {
	ctx := context.Background()
	reporter := &recordingReporter{}
	mgr := newTestManager(t, testConfig(t.TempDir()), reporter, nil)
	pv := newTestProfile(t, mgr, "alice")

	damaged := lockTestFolder(t, pv, "damaged")
	healthy := lockTestFolder(t, pv, "healthy")

	dir, err := pv.vault.layout.FolderDir(damaged.Identifier)
	require.NoError(t, err)
	blob := filepath.Join(dir, "readme.txt.pvault")
	data, err := os.ReadFile(blob)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xff
	require.NoError(t, os.WriteFile(blob, data, 0o600))

	report := pv.ValidateIntegrity(ctx)
	assert.False(t, report.Valid)
	issues := report.FolderIssues(damaged.FolderID)
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueChecksumMismatch, issues[0].Kind)
	assert.False(t, issues[0].Recoverable)
	assert.Empty(t, report.FolderIssues(healthy.FolderID))

	info := folderInfo(t, pv, damaged.FolderID)
	unlock := pv.UnlockFolder(ctx, damaged.FolderID, masterKey, models.UnlockPermanent, "")
	assert.False(t, unlock.Success)
	assert.Equal(t, models.ErrorKindIntegrity, unlock.ErrorKind)
	assert.NoDirExists(t, info.OriginalPath)
	assertNoArtifacts(t, filepath.Dir(info.OriginalPath))

	repair := pv.RepairStructure(ctx)
	assert.Equal(t, []string{damaged.FolderID}, repair.Corrupted)
	assert.Equal(t, models.StateCorrupted, folderInfo(t, pv, damaged.FolderID).State)
	assert.Equal(t, models.StateLocked, folderInfo(t, pv, healthy.FolderID).State)
	assert.Contains(t, reporter.kinds(), models.EventCorruptionDetected)

	// A corrupted folder is reported once, not on every pass.
	before := len(reporter.kinds())
	pv.RepairStructure(ctx)
	assert.Len(t, reporter.kinds(), before)

	again := pv.UnlockFolder(ctx, damaged.FolderID, masterKey, models.UnlockPermanent, "")
	assert.False(t, again.Success)
	assert.Equal(t, models.ErrorKindIntegrity, again.ErrorKind)

	ok := pv.UnlockFolder(ctx, healthy.FolderID, masterKey, models.UnlockPermanent, "")
	assert.True(t, ok.Success, ok.Error)
}

func TestIntegrity_MissingCiphertext(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	lock := lockTestFolder(t, pv, "docs")
	dir, err := pv.vault.layout.FolderDir(lock.Identifier)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))

	report := pv.ValidateIntegrity(ctx)
	assert.Contains(t, issueKinds(report.FolderIssues(lock.FolderID)), models.IssueMissingCiphertext)

	repair := pv.RepairStructure(ctx)
	assert.Equal(t, []string{lock.FolderID}, repair.Corrupted)
}

func TestIntegrity_MissingFolderMetadata(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	lock := lockTestFolder(t, pv, "docs")
	require.NoError(t, pv.vault.store.DeleteFolderMetadata(ctx, lock.Identifier))

	report := pv.ValidateIntegrity(ctx)
	assert.Contains(t, issueKinds(report.FolderIssues(lock.FolderID)), models.IssueMissingMetadata)

	unlock := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, "")
	assert.Equal(t, models.ErrorKindIntegrity, unlock.ErrorKind)
}

// ── Repair of recoverable issues ─────────────────────────────────────────────

func TestRepair_StaleStaging(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	staging := filepath.Join(pv.vault.layout.FoldersDir(), stagingPrefix+"123")
	require.NoError(t, os.MkdirAll(filepath.Join(staging, "sub"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "sub", "x.pvault"), []byte("partial"), 0o600))

	report := pv.ValidateIntegrity(ctx)
	assert.Equal(t, []models.IntegrityIssueKind{models.IssueStaleStaging}, issueKinds(report.Issues))
	assert.True(t, report.Issues[0].Recoverable)

	repair := pv.RepairStructure(ctx)
	require.True(t, repair.Success, repair.Error)
	assert.Len(t, repair.Repaired, 1)
	assert.NoDirExists(t, staging)
	assert.True(t, pv.ValidateIntegrity(ctx).Valid)
}

func TestRepair_UnindexedFolder(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	lock := lockTestFolder(t, pv, "docs")

	meta, err := pv.vault.store.LoadVaultMetadata(ctx)
	require.NoError(t, err)
	meta.Untrack(lock.FolderID)
	require.NoError(t, pv.vault.store.SaveVaultMetadata(ctx, meta))

	report := pv.ValidateIntegrity(ctx)
	assert.Contains(t, issueKinds(report.Issues), models.IssueUnindexedFolder)

	repair := pv.RepairStructure(ctx)
	require.True(t, repair.Success, repair.Error)

	info := folderInfo(t, pv, lock.FolderID)
	assert.Equal(t, models.StateLocked, info.State)
	assert.Equal(t, lock.Identifier, info.VaultLocation)
	assert.True(t, pv.ValidateIntegrity(ctx).Valid, "%+v", pv.ValidateIntegrity(ctx).Issues)

	unlock := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, "")
	assert.True(t, unlock.Success, unlock.Error)
}

func TestRepair_OrphanedMetadata(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	lock := lockTestFolder(t, pv, "docs")
	dir, err := pv.vault.layout.FolderDir(lock.Identifier)
	require.NoError(t, err)

	meta, err := pv.vault.store.LoadVaultMetadata(ctx)
	require.NoError(t, err)
	meta.Untrack(lock.FolderID)
	require.NoError(t, pv.vault.store.SaveVaultMetadata(ctx, meta))
	require.NoError(t, os.RemoveAll(dir))

	report := pv.ValidateIntegrity(ctx)
	assert.Contains(t, issueKinds(report.Issues), models.IssueOrphanedMetadata)

	repair := pv.RepairStructure(ctx)
	require.True(t, repair.Success, repair.Error)
	locations, err := pv.vault.store.ListFolderMetadata(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestRepair_UnknownCiphertextIsReported(t *testing.T) {
	ctx := context.Background()
	reporter := &recordingReporter{}
	mgr := newTestManager(t, testConfig(t.TempDir()), reporter, nil)
	pv := newTestProfile(t, mgr, "alice")

	stray := filepath.Join(pv.vault.layout.FoldersDir(), "strayentry")
	require.NoError(t, os.MkdirAll(stray, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(stray, "x.pvault"), []byte("?"), 0o600))

	report := pv.ValidateIntegrity(ctx)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, models.IssueOrphanedCiphertext, report.Issues[0].Kind)
	assert.False(t, report.Issues[0].Recoverable)

	repair := pv.RepairStructure(ctx)
	assert.Len(t, repair.Unresolved, 1)
	assert.DirExists(t, stray, "unknown ciphertext is never deleted")
	assert.Equal(t, []models.RecoveryEventKind{models.EventIntegrityError}, reporter.kinds())
}

func TestRepair_EmptyStrayDirectory(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	stray := filepath.Join(pv.vault.layout.FoldersDir(), "emptyentry")
	require.NoError(t, os.MkdirAll(stray, 0o700))

	report := pv.ValidateIntegrity(ctx)
	require.Len(t, report.Issues, 1)
	assert.True(t, report.Issues[0].Recoverable)

	repair := pv.RepairStructure(ctx)
	require.True(t, repair.Success, repair.Error)
	assert.NoDirExists(t, stray)
}

func TestRepair_CountMismatch(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	lockTestFolder(t, pv, "docs")

	meta, err := pv.vault.store.LoadVaultMetadata(ctx)
	require.NoError(t, err)
	meta.TotalFiles = 99
	meta.LockedFolderIDs = append(meta.LockedFolderIDs, "ghost")
	require.NoError(t, pv.vault.store.SaveVaultMetadata(ctx, meta))

	report := pv.ValidateIntegrity(ctx)
	kinds := issueKinds(report.Issues)
	assert.Contains(t, kinds, models.IssueCountMismatch)

	repair := pv.RepairStructure(ctx)
	require.True(t, repair.Success, repair.Error)

	meta, err = pv.vault.store.LoadVaultMetadata(ctx)
	require.NoError(t, err)
	assert.Len(t, meta.LockedFolderIDs, 1)
	assert.Equal(t, 4, meta.TotalFiles)
	assert.True(t, pv.ValidateIntegrity(ctx).Valid)
}

func TestRepair_StaleTemporaryState(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	lock := lockTestFolder(t, pv, "docs")
	require.NoError(t, pv.vault.tracker.Add(ctx, lock.FolderID))
	require.NoError(t, pv.vault.tracker.Add(ctx, "ghost"))

	report := pv.ValidateIntegrity(ctx)
	assert.Equal(t, []models.IntegrityIssueKind{models.IssueStaleTemporaryState, models.IssueStaleTemporaryState}, issueKinds(report.Issues))

	repair := pv.RepairStructure(ctx)
	require.True(t, repair.Success, repair.Error)

	ids, err := pv.vault.tracker.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.True(t, pv.ValidateIntegrity(ctx).Valid)
}

func TestValidate_TemporaryFolderMissingFromState(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	lock := lockTestFolder(t, pv, "docs")
	require.True(t, pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockTemporary, "").Success)
	require.NoError(t, pv.vault.tracker.Remove(ctx, lock.FolderID))

	report := pv.ValidateIntegrity(ctx)
	assert.Equal(t, []models.IntegrityIssueKind{models.IssueStaleTemporaryState}, issueKinds(report.Issues))

	repair := pv.RepairStructure(ctx)
	require.True(t, repair.Success, repair.Error)

	ids, err := pv.vault.tracker.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{lock.FolderID}, ids)

	relock := pv.RelockTemporaryFolders(ctx)
	assert.True(t, relock.Success, relock.Error)
}

// ── normalizeIndex / sortedRecords ───────────────────────────────────────────

func TestNormalizeIndex(t *testing.T) {
	meta := models.NewVaultMetadata("alice", treeTime)
	meta.Folders["b"] = models.SecuredFolder{ID: "b", FileCount: 2}
	meta.Folders["a"] = models.SecuredFolder{ID: "a", FileCount: 1}
	meta.LockedFolderIDs = []string{"ghost", "b"}

	normalizeIndex(meta)

	assert.Equal(t, []string{"b", "a"}, meta.LockedFolderIDs)
	assert.Equal(t, 2, meta.TotalFolders)
	assert.Equal(t, 3, meta.TotalFiles)
}

func TestSortedRecords(t *testing.T) {
	meta := models.NewVaultMetadata("alice", treeTime)
	meta.Folders["c"] = models.SecuredFolder{ID: "c"}
	meta.Folders["a"] = models.SecuredFolder{ID: "a"}
	meta.Folders["b"] = models.SecuredFolder{ID: "b"}
	meta.LockedFolderIDs = []string{"b", "b"}

	var ids []string
	for _, rec := range sortedRecords(meta) {
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}
