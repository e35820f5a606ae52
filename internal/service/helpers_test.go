// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/phantom-vault/internal/config"
	"github.com/MKhiriev/phantom-vault/internal/crypto"
	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/store"
	"github.com/MKhiriev/phantom-vault/models"
)

var (
	masterKey = []byte("correct horse battery staple")
	otherKey  = []byte("wrong horse battery staple")

	treeTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
)

func testConfig(root string) config.Vault {
	return config.Vault{
		RootDir:       root,
		KDFIterations: crypto.MinIterations,
		KDFAlgorithm:  "pbkdf2-sha256",
		Workers:       4,
		Compression:   crypto.CompressionZstd,
		DecoyCount:    2,
		WipePasses:    1,
		LockTimeout:   time.Second,
	}
}

func newTestManager(t *testing.T, cfg config.Vault, reporter RecoveryReporter, backup BackupTarget, opts ...ManagerOption) *vaultManager {
	t.Helper()
	mgr, err := NewVaultManager(cfg, crypto.NewEngine(), reporter, backup, nil, logger.Nop(), opts...)
	require.NoError(t, err)
	return mgr.(*vaultManager)
}

func newTestProfile(t *testing.T, mgr *vaultManager, profileID string) *profileVault {
	t.Helper()
	_, err := mgr.CreateProfileVault(context.Background(), profileID)
	require.NoError(t, err)
	pv, err := mgr.profile(profileID)
	require.NoError(t, err)
	return pv
}

// writeTree creates a folder with nested files, an empty file and a symlink
// below dir and returns the relative file contents.
func writeTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := map[string]string{
		"readme.txt":             "top level file",
		"notes/today.md":         strings.Repeat("remember the milk\n", 200),
		"notes/archive/2024.txt": "old notes",
		"empty.bin":              "",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	}
	require.NoError(t, os.Symlink("readme.txt", filepath.Join(dir, "link")))
	for rel := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.Chtimes(path, treeTime, treeTime))
	}
	return files
}

// readTree returns the regular files below dir keyed by slash path.
func readTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

// ciphertextFiles lists the stored blobs of a profile vault.
func ciphertextFiles(t *testing.T, pv *profileVault) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(pv.vault.layout.FoldersDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.HasSuffix(path, store.CiphertextSuffix) {
			out = append(out, path)
		}
		return nil
	})
	require.NoError(t, err)
	return out
}

func assertNoArtifacts(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), ".pv-"), "artifact %s left in %s", e.Name(), dir)
	}
}

func folderInfo(t *testing.T, pv *profileVault, folderID string) models.SecuredFolder {
	t.Helper()
	f, err := pv.FolderInfo(context.Background(), folderID)
	require.NoError(t, err)
	return f
}

// ─────── Mock: RecoveryReporter ───────

type recordingReporter struct {
	mu     sync.Mutex
	events []models.RecoveryEvent

	ReportFunc func(ctx context.Context, event models.RecoveryEvent) error
}

func (r *recordingReporter) Report(ctx context.Context, event models.RecoveryEvent) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	if r.ReportFunc != nil {
		return r.ReportFunc(ctx, event)
	}
	return nil
}

func (r *recordingReporter) kinds() []models.RecoveryEventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.RecoveryEventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

// ─────── Mock: BackupTarget ───────

type mockBackupTarget struct {
	UploadFunc  func(ctx context.Context, profileID, root string) (models.BackupInfo, error)
	RestoreFunc func(ctx context.Context, profileID, objectKey, root string) error
	ListFunc    func(ctx context.Context, profileID string) ([]models.BackupInfo, error)
}

func (m *mockBackupTarget) Upload(ctx context.Context, profileID, root string) (models.BackupInfo, error) {
	return m.UploadFunc(ctx, profileID, root)
}

func (m *mockBackupTarget) Restore(ctx context.Context, profileID, objectKey, root string) error {
	return m.RestoreFunc(ctx, profileID, objectKey, root)
}

func (m *mockBackupTarget) List(ctx context.Context, profileID string) ([]models.BackupInfo, error) {
	return m.ListFunc(ctx, profileID)
}

// ─────── Mock: store.RecoveryJournal ───────

type mockRecoveryJournal struct {
	SaveFunc         func(ctx context.Context, event models.RecoveryEvent) (int64, error)
	ListFunc         func(ctx context.Context, filter store.JournalFilter) ([]models.RecoveryEvent, error)
	MarkResolvedFunc func(ctx context.Context, id int64) error
}

func (m *mockRecoveryJournal) Save(ctx context.Context, event models.RecoveryEvent) (int64, error) {
	return m.SaveFunc(ctx, event)
}

func (m *mockRecoveryJournal) List(ctx context.Context, filter store.JournalFilter) ([]models.RecoveryEvent, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockRecoveryJournal) MarkResolved(ctx context.Context, id int64) error {
	return m.MarkResolvedFunc(ctx, id)
}
