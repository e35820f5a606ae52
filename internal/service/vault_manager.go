// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/phantom-vault/internal/config"
	"github.com/MKhiriev/phantom-vault/internal/crypto"
	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/metrics"
	"github.com/MKhiriev/phantom-vault/internal/obfuscation"
	"github.com/MKhiriev/phantom-vault/internal/store"
	"github.com/MKhiriev/phantom-vault/internal/utils"
	"github.com/MKhiriev/phantom-vault/internal/validators"
	"github.com/MKhiriev/phantom-vault/models"
)

type vaultManager struct {
	cfg config.Vault

	engine    crypto.Engine
	namer     obfuscation.Namer
	validator validators.Validator
	reporter  RecoveryReporter
	backup    BackupTarget
	metrics   *metrics.Metrics
	locker    *profileLocker
	progress  ProgressFunc

	mu     sync.Mutex
	vaults map[string]*profileVault

	logger *logger.Logger
}

// ManagerOption tunes a vault manager.
type ManagerOption func(*vaultManager)

// WithProgress installs a callback invoked after every file of a lock,
// unlock or relock.
func WithProgress(fn ProgressFunc) ManagerOption {
	return func(m *vaultManager) {
		m.progress = fn
	}
}

// WithValidator replaces the request validator built from the config.
func WithValidator(v validators.Validator) ManagerOption {
	return func(m *vaultManager) {
		if v != nil {
			m.validator = v
		}
	}
}

// NewVaultManager returns a manager for the profile vaults under
// cfg.RootDir. The crypto engine self-test runs first; a failing engine
// never touches a vault. reporter, backup and m may be nil.
func NewVaultManager(cfg config.Vault, engine crypto.Engine, reporter RecoveryReporter, backup BackupTarget, m *metrics.Metrics, logger *logger.Logger, opts ...ManagerOption) (VaultManager, error) {
	if err := engine.SelfTest(); err != nil {
		return nil, err
	}
	if cfg.RootDir == "" || !filepath.IsAbs(cfg.RootDir) {
		return nil, fmt.Errorf("vault root %q must be an absolute path", cfg.RootDir)
	}
	if err := os.MkdirAll(cfg.RootDir, store.DirPerm); err != nil {
		return nil, fmt.Errorf("create vault root: %w", err)
	}

	mgr := &vaultManager{
		cfg:       cfg,
		engine:    engine,
		namer:     obfuscation.NewNamer(engine, cfg.WipePasses),
		validator: validators.NewVaultRequestValidator(cfg.RootDir, cfg.AllowedRoots),
		reporter:  reporter,
		backup:    backup,
		metrics:   m,
		locker:    newProfileLocker(cfg.LockTimeout, m),
		vaults:    make(map[string]*profileVault),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(mgr)
	}
	return mgr, nil
}

func (m *vaultManager) profileRoot(profileID string) string {
	return filepath.Join(m.cfg.RootDir, profileID)
}

func (m *vaultManager) CreateProfileVault(ctx context.Context, profileID string) (ProfileVault, error) {
	if err := validators.ValidateProfileID(profileID); err != nil {
		return nil, err
	}

	release, err := m.locker.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer release()

	ms := store.NewFileMetadataStore(m.profileRoot(profileID), m.logger)
	if ms.VaultExists() {
		return nil, fmt.Errorf("%w: %s", ErrVaultExists, profileID)
	}
	if err = ms.Layout().Ensure(); err != nil {
		return nil, err
	}

	meta := models.NewVaultMetadata(profileID, time.Now().UTC())
	if meta.ObfuscationSalt, err = m.engine.GenerateSalt(); err != nil {
		return nil, err
	}
	if err = ms.SaveVaultMetadata(ctx, meta); err != nil {
		return nil, err
	}

	m.logger.Info().
		Str("func", "vaultManager.CreateProfileVault").
		Str("profile_id", profileID).
		Msg("profile vault created")
	return m.open(profileID, ms), nil
}

func (m *vaultManager) Profile(ctx context.Context, profileID string) (ProfileVault, error) {
	pv, err := m.profile(profileID)
	if err != nil {
		return nil, err
	}
	return pv, nil
}

func (m *vaultManager) profile(profileID string) (*profileVault, error) {
	if err := validators.ValidateProfileID(profileID); err != nil {
		return nil, err
	}

	m.mu.Lock()
	pv, ok := m.vaults[profileID]
	m.mu.Unlock()
	if ok {
		return pv, nil
	}

	ms := store.NewFileMetadataStore(m.profileRoot(profileID), m.logger)
	if !ms.VaultExists() {
		return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, profileID)
	}
	return m.open(profileID, ms), nil
}

// open returns the cached facade of profileID, building it on first use.
// The facade owns the session keyring, so it must survive between calls.
func (m *vaultManager) open(profileID string, ms store.MetadataStore) *profileVault {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pv, ok := m.vaults[profileID]; ok {
		return pv
	}

	vs := newVaultStore(profileID, m.cfg, ms, m.engine, m.namer, m.metrics)
	vs.progress = m.progress
	pv := &profileVault{
		profileID: profileID,
		vault:     vs,
		integrity: newIntegrityValidator(profileID, ms, vs.tracker, m.reporter, m.metrics),
		locker:    m.locker,
		validator: m.validator,
		reporter:  m.reporter,
		backup:    m.backup,
		metrics:   m.metrics,
		ids:       utils.NewUUIDGenerator(),
		logger:    m.logger,
	}
	m.vaults[profileID] = pv
	return pv
}

func (m *vaultManager) ListProfiles(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(m.cfg.RootDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	profiles := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || validators.ValidateProfileID(e.Name()) != nil {
			continue
		}
		if store.NewFileMetadataStore(m.profileRoot(e.Name()), m.logger).VaultExists() {
			profiles = append(profiles, e.Name())
		}
	}
	sort.Strings(profiles)
	return profiles, nil
}

func (m *vaultManager) DeleteProfileVault(ctx context.Context, profileID string, masterKey []byte) error {
	pv, err := m.profile(profileID)
	if err != nil {
		return err
	}
	err = pv.run(ctx, "delete", func(ctx context.Context) error {
		meta, err := pv.vault.loadVault(ctx)
		if err != nil {
			return err
		}
		if err = pv.vault.verifyMasterKey(meta, masterKey); err != nil {
			return err
		}
		if err = os.RemoveAll(pv.vault.layout.Root); err != nil {
			return err
		}
		pv.vault.keys.wipe()
		m.metrics.SetTemporarilyUnlocked(profileID, 0)
		return nil
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.vaults, profileID)
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "vaultManager.DeleteProfileVault").
		Str("profile_id", profileID).
		Msg("profile vault deleted")
	return nil
}

// forEachProfile runs fn for every profile in parallel, bounded by the
// configured worker count.
func (m *vaultManager) forEachProfile(ctx context.Context, fn func(ctx context.Context, pv *profileVault)) error {
	profiles, err := m.ListProfiles(ctx)
	if err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(m.cfg.Workers, 1))
	for _, id := range profiles {
		g.Go(func() error {
			pv, err := m.profile(id)
			if err != nil {
				m.logger.Err(err).
					Str("func", "vaultManager.forEachProfile").
					Str("profile_id", id).
					Msg("failed to open profile vault")
				return nil
			}
			fn(gctx, pv)
			return nil
		})
	}
	return g.Wait()
}

func (m *vaultManager) RelockAll(ctx context.Context) map[string]models.UnlockResult {
	var mu sync.Mutex
	results := map[string]models.UnlockResult{}
	err := m.forEachProfile(ctx, func(ctx context.Context, pv *profileVault) {
		res := pv.RelockTemporaryFolders(ctx)
		mu.Lock()
		results[pv.profileID] = res
		mu.Unlock()
	})
	if err != nil {
		m.logger.Err(err).Str("func", "vaultManager.RelockAll").Msg("failed to list profiles")
	}
	return results
}

func (m *vaultManager) ValidateAll(ctx context.Context) map[string]models.IntegrityReport {
	var mu sync.Mutex
	reports := map[string]models.IntegrityReport{}
	err := m.forEachProfile(ctx, func(ctx context.Context, pv *profileVault) {
		report := pv.ValidateIntegrity(ctx)
		mu.Lock()
		reports[pv.profileID] = report
		mu.Unlock()
	})
	if err != nil {
		m.logger.Err(err).Str("func", "vaultManager.ValidateAll").Msg("failed to list profiles")
	}
	return reports
}

// PerformMaintenance validates every vault. With auto repair enabled an
// invalid vault is repaired and validated again, and the second report is
// returned. Without it, unrecoverable issues are reported as they are.
func (m *vaultManager) PerformMaintenance(ctx context.Context) map[string]models.IntegrityReport {
	var mu sync.Mutex
	reports := map[string]models.IntegrityReport{}
	err := m.forEachProfile(ctx, func(ctx context.Context, pv *profileVault) {
		report := pv.ValidateIntegrity(ctx)
		if !report.Valid {
			if m.cfg.AutoRepair {
				res := pv.RepairStructure(ctx)
				m.logger.Info().
					Str("func", "vaultManager.PerformMaintenance").
					Str("profile_id", pv.profileID).
					Int("repaired", len(res.Repaired)).
					Int("corrupted", len(res.Corrupted)).
					Int("unresolved", len(res.Unresolved)).
					Msg("vault repaired")
				report = pv.ValidateIntegrity(ctx)
			} else {
				m.reportUnrecoverable(ctx, report)
			}
		}
		mu.Lock()
		reports[pv.profileID] = report
		mu.Unlock()
	})
	if err != nil {
		m.logger.Err(err).Str("func", "vaultManager.PerformMaintenance").Msg("failed to list profiles")
	}
	return reports
}

func (m *vaultManager) reportUnrecoverable(ctx context.Context, report models.IntegrityReport) {
	if m.reporter == nil {
		return
	}
	for _, issue := range report.Issues {
		if issue.Recoverable || issue.Kind == models.IssueCorruptedFolder {
			continue
		}
		event := models.RecoveryEvent{
			Kind:      models.EventIntegrityError,
			ProfileID: report.ProfileID,
			FolderID:  issue.FolderID,
			Issue:     issue.Kind,
			Detail:    issue.Detail,
		}
		if err := m.reporter.Report(ctx, event); err != nil {
			m.logger.Err(err).Str("func", "vaultManager.reportUnrecoverable").Msg("failed to report integrity issue")
		}
	}
}

func (m *vaultManager) TotalSize(ctx context.Context) (int64, error) {
	profiles, err := m.ListProfiles(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, id := range profiles {
		pv, err := m.profile(id)
		if err != nil {
			return 0, err
		}
		size, err := pv.VaultSize(ctx)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}
