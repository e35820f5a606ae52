// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/phantom-vault/models"
)

// ── LockFolder / UnlockFolder ────────────────────────────────────────────────

func TestLockUnlock_PermanentRoundTrip(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	base := t.TempDir()
	folder := filepath.Join(base, "photos")
	want := writeTree(t, folder)

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)
	assert.Equal(t, 4, lock.TotalFiles)
	assert.Equal(t, 4, lock.ProcessedFiles)
	assert.NotEmpty(t, lock.FolderID)
	assert.NotEmpty(t, lock.Identifier)
	assert.NotContains(t, lock.Identifier, "photos")

	assert.NoDirExists(t, folder)
	assertNoArtifacts(t, base)
	assert.Len(t, ciphertextFiles(t, pv), 4)

	info := folderInfo(t, pv, lock.FolderID)
	assert.Equal(t, models.StateLocked, info.State)
	assert.Equal(t, folder, info.OriginalPath)
	assert.Equal(t, 4, info.FileCount)

	unlock := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, models.TriggerCommandLine)
	require.True(t, unlock.Success, unlock.Error)
	assert.Equal(t, folder, unlock.RestoredPath)
	assert.Equal(t, 4, unlock.ProcessedFiles)

	assert.Equal(t, want, readTree(t, folder))
	assertNoArtifacts(t, base)

	st, err := os.Stat(filepath.Join(folder, "notes", "today.md"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), st.Mode().Perm())
	assert.True(t, st.ModTime().Equal(treeTime), "mtime %v", st.ModTime())

	target, err := os.Readlink(filepath.Join(folder, "link"))
	require.NoError(t, err)
	assert.Equal(t, "readme.txt", target)

	folders, err := pv.ListFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)

	entries, err := os.ReadDir(pv.vault.layout.FoldersDir())
	require.NoError(t, err)
	assert.Empty(t, entries, "ciphertext and decoys must be removed")
	locations, err := pv.vault.store.ListFolderMetadata(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations)

	report := pv.ValidateIntegrity(ctx)
	assert.True(t, report.Valid, "%+v", report.Issues)
}

func TestUnlock_WrongKey(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	folder := filepath.Join(t.TempDir(), "secret")
	writeTree(t, folder)

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)

	unlock := pv.UnlockFolder(ctx, lock.FolderID, otherKey, models.UnlockPermanent, "")
	assert.False(t, unlock.Success)
	assert.Equal(t, models.ErrorKindAuth, unlock.ErrorKind)
	assert.Empty(t, unlock.RestoredPath)
	assert.NoDirExists(t, folder)
	assert.Equal(t, models.StateLocked, folderInfo(t, pv, lock.FolderID).State)

	second := pv.LockFolder(ctx, filepath.Join(t.TempDir(), "other"), otherKey)
	assert.False(t, second.Success)
	assert.Equal(t, models.ErrorKindAuth, second.ErrorKind)
}

func TestUnlock_ByIdentifier(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	folder := filepath.Join(t.TempDir(), "docs")
	writeTree(t, folder)

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)

	unlock := pv.UnlockFolder(ctx, lock.Identifier, masterKey, models.UnlockPermanent, models.TriggerGUI)
	require.True(t, unlock.Success, unlock.Error)
	assert.Equal(t, lock.FolderID, unlock.FolderID)
}

func TestUnlock_OriginalPathOccupied(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	folder := filepath.Join(t.TempDir(), "docs")
	writeTree(t, folder)

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)

	require.NoError(t, os.MkdirAll(folder, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "new.txt"), []byte("new"), 0o600))

	unlock := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, "")
	assert.False(t, unlock.Success)
	assert.Equal(t, models.ErrorKindValidation, unlock.ErrorKind)
	assert.Equal(t, map[string]string{"new.txt": "new"}, readTree(t, folder))
	assert.Equal(t, models.StateLocked, folderInfo(t, pv, lock.FolderID).State)
}

func TestUnlock_UnknownFolder(t *testing.T) {
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	unlock := pv.UnlockFolder(context.Background(), "nope", masterKey, models.UnlockTemporary, "")
	assert.False(t, unlock.Success)
	assert.Equal(t, models.ErrorKindValidation, unlock.ErrorKind)
}

func TestUnlock_InvalidMode(t *testing.T) {
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	unlock := pv.UnlockFolder(context.Background(), "some-id", masterKey, "FOREVER", "")
	assert.False(t, unlock.Success)
	assert.Equal(t, models.ErrorKindValidation, unlock.ErrorKind)
}

func TestLock_EmptyFolder(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	folder := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.Mkdir(folder, 0o750))

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)
	assert.Zero(t, lock.TotalFiles)
	assert.NoDirExists(t, folder)

	unlock := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, "")
	require.True(t, unlock.Success, unlock.Error)
	assert.DirExists(t, folder)
	st, err := os.Stat(folder)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), st.Mode().Perm())
}

func TestLock_TaxesScenario(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	folder := filepath.Join(t.TempDir(), "docs", "taxes")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	want := map[string]string{
		"2023.pdf": strings.Repeat("a", 1024),
		"2024.pdf": strings.Repeat("b", 1024),
		"w2.pdf":   strings.Repeat("c", 2048),
	}
	for name, content := range want {
		require.NoError(t, os.WriteFile(filepath.Join(folder, name), []byte(content), 0o600))
	}

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)
	assert.Equal(t, 3, lock.TotalFiles)
	assert.Len(t, ciphertextFiles(t, pv), 3)
	assert.Equal(t, int64(4096), folderInfo(t, pv, lock.FolderID).OriginalSize)
	assert.NoDirExists(t, folder)

	unlock := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockTemporary, models.TriggerNotification)
	require.True(t, unlock.Success, unlock.Error)
	assert.Equal(t, want, readTree(t, folder))
	assert.Equal(t, models.StateTempUnlocked, folderInfo(t, pv, lock.FolderID).State)

	relock := pv.RelockTemporaryFolders(ctx)
	require.True(t, relock.Success, relock.Error)
	assert.Equal(t, []string{lock.FolderID}, relock.RelockedFolders)
	assert.NoDirExists(t, folder)
	assert.Len(t, ciphertextFiles(t, pv), 3)

	report := pv.ValidateIntegrity(ctx)
	assert.True(t, report.Valid, "%+v", report.Issues)
}

// ── RelockTemporaryFolders ───────────────────────────────────────────────────

func TestRelock_TemporaryLifecycle(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	folder := filepath.Join(t.TempDir(), "work")
	writeTree(t, folder)

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)

	unlock := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockTemporary, models.TriggerContextMenu)
	require.True(t, unlock.Success, unlock.Error)
	assert.DirExists(t, folder)

	temp, err := pv.TemporarilyUnlocked(ctx)
	require.NoError(t, err)
	require.Len(t, temp, 1)
	assert.Equal(t, models.UnlockTemporary, temp[0].Lifetime)

	again := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockTemporary, "")
	assert.True(t, again.Success, again.Error)
	assert.NotEmpty(t, again.Warnings)

	for name, key := range map[string][]byte{"wrong key": otherKey, "nil key": nil, "empty key": {}} {
		denied := pv.UnlockFolder(ctx, lock.FolderID, key, models.UnlockTemporary, "")
		assert.False(t, denied.Success, name)
		assert.Equal(t, models.ErrorKindAuth, denied.ErrorKind, name)
		assert.Empty(t, denied.RestoredPath, name)
		assert.Empty(t, denied.Warnings, name)

		finalize := pv.UnlockFolder(ctx, lock.FolderID, key, models.UnlockPermanent, "")
		assert.False(t, finalize.Success, name)
		assert.Equal(t, models.ErrorKindAuth, finalize.ErrorKind, name)
	}
	assert.Equal(t, models.StateTempUnlocked, folderInfo(t, pv, lock.FolderID).State)

	require.NoError(t, os.WriteFile(filepath.Join(folder, "added.txt"), []byte("edited while unlocked"), 0o600))

	relock := pv.RelockTemporaryFolders(ctx)
	require.True(t, relock.Success, relock.Error)
	assert.Equal(t, []string{lock.FolderID}, relock.RelockedFolders)
	assert.NoDirExists(t, folder)

	info := folderInfo(t, pv, lock.FolderID)
	assert.Equal(t, models.StateLocked, info.State)
	assert.NotEqual(t, lock.Identifier, info.VaultLocation, "relock must use a fresh identifier")
	assert.Equal(t, 5, info.FileCount)

	temp, err = pv.TemporarilyUnlocked(ctx)
	require.NoError(t, err)
	assert.Empty(t, temp)

	second := pv.RelockTemporaryFolders(ctx)
	assert.True(t, second.Success, second.Error)
	assert.Empty(t, second.RelockedFolders)

	report := pv.ValidateIntegrity(ctx)
	assert.True(t, report.Valid, "%+v", report.Issues)

	final := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, "")
	require.True(t, final.Success, final.Error)
	assert.Equal(t, "edited while unlocked", readTree(t, folder)["added.txt"])
}

func TestUnlock_PermanentAfterTemporary(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	folder := filepath.Join(t.TempDir(), "work")
	want := writeTree(t, folder)

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)
	require.True(t, pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockTemporary, "").Success)

	res := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, "")
	require.True(t, res.Success, res.Error)
	assert.Equal(t, want, readTree(t, folder))

	folders, err := pv.ListFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)
	_, ok := pv.vault.keys.get(lock.FolderID)
	assert.False(t, ok)
	assert.NoFileExists(t, pv.vault.layout.TempUnlockPath())
}

func TestRelock_MissingOriginal(t *testing.T) {
	ctx := context.Background()
	reporter := &recordingReporter{}
	mgr := newTestManager(t, testConfig(t.TempDir()), reporter, nil)
	pv := newTestProfile(t, mgr, "alice")

	folder := filepath.Join(t.TempDir(), "work")
	writeTree(t, folder)

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)
	require.True(t, pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockTemporary, "").Success)
	require.NoError(t, os.RemoveAll(folder))

	relock := pv.RelockTemporaryFolders(ctx)
	assert.False(t, relock.Success)
	assert.Equal(t, []string{lock.FolderID}, relock.FailedFolders)
	assert.Equal(t, models.ErrorKindIntegrity, relock.ErrorKind)
	assert.Equal(t, models.StateTempUnlocked, folderInfo(t, pv, lock.FolderID).State)
	assert.Contains(t, reporter.kinds(), models.EventIntegrityError)

	report := pv.ValidateIntegrity(ctx)
	assert.False(t, report.Valid)
	issues := report.FolderIssues(lock.FolderID)
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueMissingOriginal, issues[0].Kind)
	assert.True(t, issues[0].Recoverable)

	repair := pv.RepairStructure(ctx)
	require.True(t, repair.Success, repair.Error)
	require.Len(t, repair.Repaired, 1)
	assert.Equal(t, models.StateLocked, folderInfo(t, pv, lock.FolderID).State)

	temp, err := pv.TemporarilyUnlocked(ctx)
	require.NoError(t, err)
	assert.Empty(t, temp)
	assert.True(t, pv.ValidateIntegrity(ctx).Valid)

	unlock := pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, "")
	require.True(t, unlock.Success, unlock.Error)
	assert.DirExists(t, folder)
}

func TestRelock_AfterRestartNeedsMasterKey(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	first := newTestManager(t, testConfig(root), nil, nil)
	pv := newTestProfile(t, first, "alice")

	folder := filepath.Join(t.TempDir(), "work")
	want := writeTree(t, folder)

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)
	require.True(t, pv.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockTemporary, "").Success)

	second := newTestManager(t, testConfig(root), nil, nil)
	restarted, err := second.profile("alice")
	require.NoError(t, err)

	relock := restarted.RelockTemporaryFolders(ctx)
	assert.False(t, relock.Success)
	assert.Equal(t, []string{lock.FolderID}, relock.FailedFolders)
	assert.Equal(t, models.ErrorKindAuth, relock.ErrorKind)
	assert.DirExists(t, folder)

	bad := restarted.RelockTemporaryFoldersWithKey(ctx, otherKey)
	assert.False(t, bad.Success)
	assert.Equal(t, models.ErrorKindAuth, bad.ErrorKind)

	empty := restarted.RelockTemporaryFoldersWithKey(ctx, nil)
	assert.False(t, empty.Success)
	assert.Equal(t, models.ErrorKindAuth, empty.ErrorKind)

	ok := restarted.RelockTemporaryFoldersWithKey(ctx, masterKey)
	require.True(t, ok.Success, ok.Error)
	assert.Equal(t, []string{lock.FolderID}, ok.RelockedFolders)
	assert.NoDirExists(t, folder)

	unlock := restarted.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, "")
	require.True(t, unlock.Success, unlock.Error)
	assert.Equal(t, want, readTree(t, folder))
}

// ── Lock preconditions ───────────────────────────────────────────────────────

func TestLock_RejectsOverlap(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	base := t.TempDir()
	folder := filepath.Join(base, "parent", "child")
	writeTree(t, folder)

	lock := pv.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)

	require.NoError(t, os.MkdirAll(folder, 0o755))
	same := pv.LockFolder(ctx, folder, masterKey)
	assert.False(t, same.Success)
	assert.Equal(t, models.ErrorKindValidation, same.ErrorKind)

	parent := pv.LockFolder(ctx, filepath.Join(base, "parent"), masterKey)
	assert.False(t, parent.Success)
	assert.Equal(t, models.ErrorKindValidation, parent.ErrorKind)
	assert.DirExists(t, folder)
}

func TestLock_RejectsInvalidTargets(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	mgr := newTestManager(t, testConfig(root), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	tests := []struct {
		name string
		path string
	}{
		{name: "regular file", path: file},
		{name: "relative path", path: "relative/dir"},
		{name: "inside vault", path: filepath.Join(root, "alice")},
		{name: "filesystem root", path: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := pv.LockFolder(ctx, tt.path, masterKey)
			assert.False(t, res.Success)
			assert.Equal(t, models.ErrorKindValidation, res.ErrorKind)
		})
	}

	missing := pv.LockFolder(ctx, filepath.Join(t.TempDir(), "missing"), masterKey)
	assert.False(t, missing.Success)
	assert.Equal(t, models.ErrorKindIO, missing.ErrorKind)

	empty := pv.LockFolder(ctx, t.TempDir(), nil)
	assert.False(t, empty.Success)
	assert.Equal(t, models.ErrorKindAuth, empty.ErrorKind)
}

func TestLock_CancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := testConfig(t.TempDir())
	cfg.Workers = 1
	mgr := newTestManager(t, cfg, nil, nil, WithProgress(func(done, total int) {
		if done == 1 {
			cancel()
		}
	}))
	pv := newTestProfile(t, mgr, "alice")

	base := t.TempDir()
	folder := filepath.Join(base, "big")
	want := writeTree(t, folder)

	res := pv.LockFolder(ctx, folder, masterKey)
	assert.False(t, res.Success)
	assert.Equal(t, models.ErrorKindConcurrency, res.ErrorKind)

	assert.Equal(t, want, readTree(t, folder))
	assertNoArtifacts(t, base)

	entries, err := os.ReadDir(pv.vault.layout.FoldersDir())
	require.NoError(t, err)
	assert.Empty(t, entries, "staging and decoys must be rolled back")

	folders, err := pv.ListFolders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, folders)
	assert.True(t, pv.ValidateIntegrity(context.Background()).Valid)
}

func TestLock_ProfileLockTimeout(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.LockTimeout = 50 * time.Millisecond
	mgr := newTestManager(t, cfg, nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	release, err := mgr.locker.acquire(context.Background(), "alice")
	require.NoError(t, err)
	defer release()

	folder := filepath.Join(t.TempDir(), "work")
	writeTree(t, folder)

	res := pv.LockFolder(context.Background(), folder, masterKey)
	assert.False(t, res.Success)
	assert.Equal(t, models.ErrorKindConcurrency, res.ErrorKind)
	assert.DirExists(t, folder)
}

// ── Profile isolation ────────────────────────────────────────────────────────

func TestProfiles_AreIsolated(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	alice := newTestProfile(t, mgr, "alice")
	bob := newTestProfile(t, mgr, "bob")

	folder := filepath.Join(t.TempDir(), "shared")
	writeTree(t, folder)

	lock := alice.LockFolder(ctx, folder, masterKey)
	require.True(t, lock.Success, lock.Error)

	res := bob.UnlockFolder(ctx, lock.FolderID, masterKey, models.UnlockPermanent, "")
	assert.False(t, res.Success)
	assert.Equal(t, models.ErrorKindValidation, res.ErrorKind)

	folders, err := bob.ListFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)

	// Bob's vault uses its own key verifier.
	other := filepath.Join(t.TempDir(), "bobs")
	writeTree(t, other)
	bobLock := bob.LockFolder(ctx, other, otherKey)
	require.True(t, bobLock.Success, bobLock.Error)

	assert.True(t, alice.ValidateIntegrity(ctx).Valid)
	assert.True(t, bob.ValidateIntegrity(ctx).Valid)
}

// ── Size ─────────────────────────────────────────────────────────────────────

func TestVaultSize(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	before, err := pv.VaultSize(ctx)
	require.NoError(t, err)

	folder := filepath.Join(t.TempDir(), "work")
	writeTree(t, folder)
	require.True(t, pv.LockFolder(ctx, folder, masterKey).Success)

	after, err := pv.VaultSize(ctx)
	require.NoError(t, err)
	assert.Greater(t, after, before)
}

// ── checkOverlap / resolveFolder ─────────────────────────────────────────────

func TestCheckOverlap(t *testing.T) {
	meta := models.NewVaultMetadata("alice", treeTime)
	meta.Track(models.SecuredFolder{ID: "f1", OriginalPath: "/data/docs", State: models.StateLocked})

	assert.ErrorIs(t, checkOverlap(meta, "/data/docs"), ErrAlreadyTracked)
	assert.ErrorIs(t, checkOverlap(meta, "/data/docs/taxes"), ErrAlreadyTracked)
	assert.ErrorIs(t, checkOverlap(meta, "/data"), ErrAlreadyTracked)
	assert.NoError(t, checkOverlap(meta, "/data/docs2"))
	assert.NoError(t, checkOverlap(meta, "/other"))
}

func TestResolveFolder(t *testing.T) {
	meta := models.NewVaultMetadata("alice", treeTime)
	meta.Track(models.SecuredFolder{ID: "f1", VaultLocation: "loc1", State: models.StateLocked})

	byID, err := resolveFolder(meta, "f1")
	require.NoError(t, err)
	assert.Equal(t, "loc1", byID.VaultLocation)

	byLoc, err := resolveFolder(meta, "loc1")
	require.NoError(t, err)
	assert.Equal(t, "f1", byLoc.ID)

	_, err = resolveFolder(meta, "f2")
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestLoadVault_ForeignProfile(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, testConfig(t.TempDir()), nil, nil)
	pv := newTestProfile(t, mgr, "alice")

	meta, err := pv.vault.store.LoadVaultMetadata(ctx)
	require.NoError(t, err)
	meta.ProfileID = "mallory"
	require.NoError(t, pv.vault.store.SaveVaultMetadata(ctx, meta))

	_, err = pv.vault.loadVault(ctx)
	assert.ErrorIs(t, err, ErrIntegrity)
}
