// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/metrics"
	"github.com/MKhiriev/phantom-vault/internal/utils"
	"github.com/MKhiriev/phantom-vault/internal/validators"
	"github.com/MKhiriev/phantom-vault/models"
)

// profileVault composes the vault store, the temporary unlock tracker and
// the integrity validator of one profile behind the profile lock.
type profileVault struct {
	profileID string

	vault     *vaultStore
	integrity *integrityValidator
	locker    *profileLocker
	validator validators.Validator
	reporter  RecoveryReporter
	backup    BackupTarget
	metrics   *metrics.Metrics
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func (p *profileVault) ProfileID() string {
	return p.profileID
}

// run takes the profile lock and calls fn with a context carrying the
// operation logger. The outcome is logged and recorded in metrics.
func (p *profileVault) run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()
	opID := p.ids.Generate()

	l := p.logger.With().
		Str("profile_id", p.profileID).
		Str("operation", operation).
		Str("operation_id", opID).
		Logger()
	ctx = l.WithContext(ctx)
	ctx = utils.WithProfileID(ctx, p.profileID)
	ctx = utils.WithOperationID(ctx, opID)

	err := p.locked(ctx, fn)
	p.metrics.RecordOperation(operation, err == nil, time.Since(start))
	if err != nil {
		l.Err(err).
			Str("func", "profileVault.run").
			Str("error_kind", string(ClassifyError(err))).
			Msg("vault operation failed")
		return err
	}
	l.Debug().
		Str("func", "profileVault.run").
		Dur("duration", time.Since(start)).
		Msg("vault operation finished")
	return nil
}

func (p *profileVault) locked(ctx context.Context, fn func(ctx context.Context) error) error {
	release, err := p.locker.acquire(ctx, p.profileID)
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx)
}

// reportFailure hands integrity failures of a public operation to the
// recovery collaborator.
func (p *profileVault) reportFailure(ctx context.Context, folderID string, err error) {
	if p.reporter == nil || ClassifyError(err) != models.ErrorKindIntegrity {
		return
	}
	event := models.RecoveryEvent{
		Kind:      models.EventIntegrityError,
		ProfileID: p.profileID,
		FolderID:  folderID,
		Detail:    err.Error(),
	}
	if errors.Is(err, ErrOriginalPathMissing) {
		event.Issue = models.IssueMissingOriginal
	}
	if rerr := p.reporter.Report(ctx, event); rerr != nil {
		p.logger.Err(rerr).Str("func", "profileVault.reportFailure").Msg("failed to report integrity failure")
	}
}

func (p *profileVault) updateTemporaryGauge(ctx context.Context) {
	if ids, err := p.vault.tracker.List(ctx); err == nil {
		p.metrics.SetTemporarilyUnlocked(p.profileID, len(ids))
	}
}

func (p *profileVault) LockFolder(ctx context.Context, folderPath string, masterKey []byte) models.FolderOperationResult {
	var res models.FolderOperationResult
	err := p.run(ctx, "lock", func(ctx context.Context) error {
		request := models.LockRequest{ProfileID: p.profileID, FolderPath: folderPath}
		if err := p.validator.Validate(ctx, request); err != nil {
			return err
		}
		var err error
		res, err = p.vault.LockFolder(ctx, folderPath, masterKey)
		return err
	})
	if err != nil {
		p.reportFailure(ctx, res.FolderID, err)
		return models.FolderOperationResult{
			Success:   false,
			Error:     mapErrorMessage(err),
			ErrorKind: ClassifyError(err),
			FolderID:  res.FolderID,
		}
	}
	res.Success = true
	return res
}

func (p *profileVault) UnlockFolder(ctx context.Context, folder string, masterKey []byte, mode models.UnlockMode, trigger models.UnlockTrigger) models.UnlockResult {
	var res models.UnlockResult
	err := p.run(ctx, "unlock", func(ctx context.Context) error {
		request := models.UnlockRequest{ProfileID: p.profileID, FolderID: folder, Mode: mode, Trigger: trigger}
		if err := p.validator.Validate(ctx, request); err != nil {
			return err
		}
		var err error
		res, err = p.vault.UnlockFolder(ctx, folder, masterKey, mode, trigger)
		p.updateTemporaryGauge(ctx)
		return err
	})
	if err != nil {
		p.reportFailure(ctx, res.FolderID, err)
		res.Success = false
		res.Error = mapErrorMessage(err)
		res.ErrorKind = ClassifyError(err)
		res.RestoredPath = ""
		return res
	}
	res.Success = true
	return res
}

func (p *profileVault) RelockTemporaryFolders(ctx context.Context) models.UnlockResult {
	return p.relock(ctx, nil)
}

func (p *profileVault) RelockTemporaryFoldersWithKey(ctx context.Context, masterKey []byte) models.UnlockResult {
	if len(masterKey) == 0 {
		return models.UnlockResult{Error: mapErrorMessage(ErrEmptyMasterKey), ErrorKind: ClassifyError(ErrEmptyMasterKey)}
	}
	return p.relock(ctx, masterKey)
}

func (p *profileVault) relock(ctx context.Context, masterKey []byte) models.UnlockResult {
	var out relockOutcome
	err := p.run(ctx, "relock", func(ctx context.Context) error {
		var err error
		out, err = p.vault.RelockTemporaryFolders(ctx, masterKey)
		p.updateTemporaryGauge(ctx)
		return err
	})
	res := out.result
	if err != nil {
		p.reportFailure(ctx, "", err)
		res.Success = false
		res.Error = mapErrorMessage(err)
		res.ErrorKind = ClassifyError(err)
		return res
	}

	if len(res.FailedFolders) == 0 {
		res.Success = true
		return res
	}

	msgs := make([]string, 0, len(res.FailedFolders))
	for _, id := range res.FailedFolders {
		ferr := out.failures[id]
		if ferr == nil {
			continue
		}
		p.reportFailure(ctx, id, ferr)
		if res.ErrorKind == models.ErrorKindNone {
			res.ErrorKind = ClassifyError(ferr)
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", id, mapErrorMessage(ferr)))
	}
	res.Success = false
	res.Error = fmt.Sprintf("%d folder(s) left temporarily unlocked: %s", len(res.FailedFolders), strings.Join(msgs, "; "))
	return res
}

func (p *profileVault) ListFolders(ctx context.Context) ([]models.SecuredFolder, error) {
	var folders []models.SecuredFolder
	err := p.run(ctx, "list", func(ctx context.Context) error {
		meta, err := p.vault.loadVault(ctx)
		if err != nil {
			return err
		}
		folders = make([]models.SecuredFolder, 0, len(meta.LockedFolderIDs))
		for _, id := range meta.LockedFolderIDs {
			if f, ok := meta.Folders[id]; ok {
				folders = append(folders, f)
			}
		}
		return nil
	})
	return folders, err
}

func (p *profileVault) FolderInfo(ctx context.Context, folder string) (models.SecuredFolder, error) {
	var info models.SecuredFolder
	err := p.run(ctx, "info", func(ctx context.Context) error {
		meta, err := p.vault.loadVault(ctx)
		if err != nil {
			return err
		}
		info, err = resolveFolder(meta, folder)
		return err
	})
	return info, err
}

func (p *profileVault) TemporarilyUnlocked(ctx context.Context) ([]models.SecuredFolder, error) {
	var folders []models.SecuredFolder
	err := p.run(ctx, "list_temporary", func(ctx context.Context) error {
		meta, err := p.vault.loadVault(ctx)
		if err != nil {
			return err
		}
		ids, err := p.vault.tracker.List(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if f, ok := meta.Folders[id]; ok && f.State == models.StateTempUnlocked {
				folders = append(folders, f)
			}
		}
		return nil
	})
	return folders, err
}

// ValidateIntegrity returns an invalid report without issues when the
// profile lock could not be taken.
func (p *profileVault) ValidateIntegrity(ctx context.Context) models.IntegrityReport {
	report := models.IntegrityReport{ProfileID: p.profileID}
	_ = p.run(ctx, "validate", func(ctx context.Context) error {
		report = p.integrity.Validate(ctx)
		return nil
	})
	return report
}

func (p *profileVault) RepairStructure(ctx context.Context) models.RepairResult {
	var res models.RepairResult
	err := p.run(ctx, "repair", func(ctx context.Context) error {
		res = p.integrity.Repair(ctx)
		for _, id := range res.Corrupted {
			p.vault.keys.drop(id)
		}
		for _, issue := range res.Repaired {
			if issue.Kind == models.IssueMissingOriginal {
				p.vault.keys.drop(issue.FolderID)
			}
		}
		p.updateTemporaryGauge(ctx)
		if !res.Success {
			return fmt.Errorf("%w: %s", ErrIntegrity, res.Error)
		}
		return nil
	})
	if err != nil && res.Error == "" {
		res.Success = false
		res.Error = mapErrorMessage(err)
	}
	return res
}

func (p *profileVault) VaultSize(ctx context.Context) (int64, error) {
	var size int64
	err := p.run(ctx, "size", func(ctx context.Context) error {
		var err error
		size, err = p.vault.Size()
		return err
	})
	return size, err
}

func (p *profileVault) Backup(ctx context.Context) (models.BackupInfo, error) {
	var info models.BackupInfo
	if p.backup == nil {
		return info, ErrBackupNotConfigured
	}
	err := p.run(ctx, "backup", func(ctx context.Context) error {
		if _, err := p.vault.loadVault(ctx); err != nil {
			return err
		}
		var err error
		info, err = p.backup.Upload(ctx, p.profileID, p.vault.layout.Root)
		return err
	})
	return info, err
}

func (p *profileVault) RestoreBackup(ctx context.Context, objectKey string) error {
	if p.backup == nil {
		return ErrBackupNotConfigured
	}
	return p.run(ctx, "restore", func(ctx context.Context) error {
		meta, err := p.vault.loadVault(ctx)
		if err != nil && !errors.Is(err, ErrVaultNotFound) {
			return err
		}
		if meta != nil && len(meta.LockedFolderIDs) > 0 {
			return fmt.Errorf("%w: %d folders tracked", ErrVaultNotEmpty, len(meta.LockedFolderIDs))
		}
		if err = p.backup.Restore(ctx, p.profileID, objectKey, p.vault.layout.Root); err != nil {
			return err
		}
		p.vault.keys.wipe()

		if _, err = p.vault.loadVault(ctx); err != nil {
			return fmt.Errorf("restored archive: %w", err)
		}
		p.updateTemporaryGauge(ctx)
		return nil
	})
}
