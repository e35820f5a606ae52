package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/phantom-vault/internal/crypto"
	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/metrics"
	"github.com/MKhiriev/phantom-vault/internal/store"
	"github.com/MKhiriev/phantom-vault/models"
)

// integrityValidator cross-checks the vault index, the folder metadata
// documents, the ciphertext trees and the temporary unlock state of one
// profile.
type integrityValidator struct {
	profileID string
	store     store.MetadataStore
	layout    store.Layout
	tracker   *tempUnlockTracker
	reporter  RecoveryReporter
	metrics   *metrics.Metrics
	now       func() time.Time
}

func newIntegrityValidator(profileID string, s store.MetadataStore, tracker *tempUnlockTracker, reporter RecoveryReporter, m *metrics.Metrics) *integrityValidator {
	return &integrityValidator{
		profileID: profileID,
		store:     s,
		layout:    s.Layout(),
		tracker:   tracker,
		reporter:  reporter,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// scan is one validation pass together with the documents it loaded.
type scan struct {
	meta     *models.VaultMetadata
	issues   []models.IntegrityIssue
	metadata map[string]*models.FolderMetadata
}

func (s *scan) add(issue models.IntegrityIssue) {
	s.issues = append(s.issues, issue)
}

// Validate runs a read-only pass. The report is valid when no issue was
// found.
func (iv *integrityValidator) Validate(ctx context.Context) models.IntegrityReport {
	sc := iv.scan(ctx)
	for _, issue := range sc.issues {
		iv.metrics.RecordIntegrityIssue(string(issue.Kind), issue.Recoverable)
	}
	return models.IntegrityReport{
		ProfileID: iv.profileID,
		Valid:     len(sc.issues) == 0,
		Issues:    sc.issues,
	}
}

func (iv *integrityValidator) scan(ctx context.Context) *scan {
	sc := &scan{metadata: map[string]*models.FolderMetadata{}}

	meta, err := iv.store.LoadVaultMetadata(ctx)
	if err != nil {
		sc.add(models.IntegrityIssue{
			Kind:   models.IssueMissingVaultMetadata,
			Detail: err.Error(),
		})
		return sc
	}
	if meta.ProfileID != iv.profileID {
		sc.add(models.IntegrityIssue{
			Kind:   models.IssueMissingVaultMetadata,
			Detail: fmt.Sprintf("vault metadata belongs to profile %q", meta.ProfileID),
		})
		return sc
	}
	if meta.Folders == nil {
		meta.Folders = map[string]models.SecuredFolder{}
	}
	sc.meta = meta

	iv.checkIndex(sc)
	for _, rec := range sortedRecords(meta) {
		iv.checkFolder(ctx, sc, rec)
	}
	iv.checkTemporaryState(ctx, sc)
	iv.checkMetadataDir(ctx, sc)
	iv.checkFoldersDir(ctx, sc)
	return sc
}

func (iv *integrityValidator) checkIndex(sc *scan) {
	meta := sc.meta
	for _, id := range meta.LockedFolderIDs {
		if _, ok := meta.Folders[id]; !ok {
			sc.add(models.IntegrityIssue{
				FolderID:    id,
				Kind:        models.IssueCountMismatch,
				Detail:      "index lists a folder without a record",
				Recoverable: true,
			})
		}
	}
	for id := range meta.Folders {
		if !slices.Contains(meta.LockedFolderIDs, id) {
			sc.add(models.IntegrityIssue{
				FolderID:    id,
				Kind:        models.IssueCountMismatch,
				Detail:      "folder record is missing from the index order",
				Recoverable: true,
			})
		}
	}

	folders, files := meta.TotalFolders, meta.TotalFiles
	probe := *meta
	probe.Recount()
	if probe.TotalFolders != folders || probe.TotalFiles != files {
		sc.add(models.IntegrityIssue{
			Kind:        models.IssueCountMismatch,
			Detail:      fmt.Sprintf("counters %d/%d, records %d/%d", folders, files, probe.TotalFolders, probe.TotalFiles),
			Recoverable: true,
		})
	}
}

func (iv *integrityValidator) checkFolder(ctx context.Context, sc *scan, rec models.SecuredFolder) {
	issue := func(kind models.IntegrityIssueKind, recoverable bool, format string, args ...any) {
		sc.add(models.IntegrityIssue{
			FolderID:      rec.ID,
			VaultLocation: rec.VaultLocation,
			Kind:          kind,
			Detail:        fmt.Sprintf(format, args...),
			Recoverable:   recoverable,
		})
	}

	if rec.State == models.StateCorrupted {
		issue(models.IssueCorruptedFolder, false, "folder is marked corrupted")
		if fm, err := iv.store.LoadFolderMetadata(ctx, rec.VaultLocation); err == nil {
			sc.metadata[rec.VaultLocation] = fm
		}
		return
	}

	fm, err := iv.store.LoadFolderMetadata(ctx, rec.VaultLocation)
	if err != nil {
		issue(models.IssueMissingMetadata, false, "folder metadata: %v", err)
		return
	}
	sc.metadata[rec.VaultLocation] = fm
	if fm.FolderID != rec.ID {
		issue(models.IssueMissingMetadata, false, "folder metadata belongs to %s", fm.FolderID)
		return
	}

	dir, _ := iv.layout.FolderDir(rec.VaultLocation)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		issue(models.IssueMissingCiphertext, false, "ciphertext directory is missing")
		return
	}
	for _, e := range fm.Files() {
		blob, err := safeJoin(dir, e.Path)
		if err != nil {
			issue(models.IssueMissingMetadata, false, "%v", err)
			continue
		}
		f, err := os.Open(blob + store.CiphertextSuffix)
		if err != nil {
			issue(models.IssueMissingCiphertext, false, "%s: %v", e.Path, err)
			continue
		}
		sum, _, err := crypto.ChecksumReader(f)
		f.Close()
		if err == nil {
			err = crypto.Checksum(e.CipherChecksum).Verify(sum)
		}
		if err != nil {
			issue(models.IssueChecksumMismatch, false, "%s: %v", e.Path, err)
		}
	}

	if rec.State == models.StateTempUnlocked {
		if _, err := os.Lstat(rec.OriginalPath); errors.Is(err, fs.ErrNotExist) {
			issue(models.IssueMissingOriginal, true, "temporarily unlocked folder is missing from %s", rec.OriginalPath)
		}
	}
}

func (iv *integrityValidator) checkTemporaryState(ctx context.Context, sc *scan) {
	ids, err := iv.tracker.List(ctx)
	if err != nil {
		sc.add(models.IntegrityIssue{
			Kind:        models.IssueStaleTemporaryState,
			Detail:      err.Error(),
			Recoverable: true,
		})
		return
	}

	for _, id := range ids {
		if rec, ok := sc.meta.Folders[id]; !ok || rec.State != models.StateTempUnlocked {
			sc.add(models.IntegrityIssue{
				FolderID:    id,
				Kind:        models.IssueStaleTemporaryState,
				Detail:      "temporary unlock state lists a folder that is not temporarily unlocked",
				Recoverable: true,
			})
		}
	}
	for _, id := range sc.meta.LockedFolderIDs {
		if rec := sc.meta.Folders[id]; rec.State == models.StateTempUnlocked && !slices.Contains(ids, id) {
			sc.add(models.IntegrityIssue{
				FolderID:    id,
				Kind:        models.IssueStaleTemporaryState,
				Detail:      "temporarily unlocked folder is missing from the temporary unlock state",
				Recoverable: true,
			})
		}
	}
}

func (iv *integrityValidator) checkFoldersDir(ctx context.Context, sc *scan) {
	entries, err := os.ReadDir(iv.layout.FoldersDir())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			sc.add(models.IntegrityIssue{Kind: models.IssueMissingCiphertext, Detail: err.Error()})
		}
		return
	}

	known := map[string]bool{}
	for _, rec := range sc.meta.Folders {
		known[rec.VaultLocation] = true
	}
	for _, fm := range sc.metadata {
		for _, d := range fm.DecoyPaths {
			known[d] = true
		}
	}

	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, stagingPrefix) {
			sc.add(models.IntegrityIssue{
				VaultLocation: name,
				Kind:          models.IssueStaleStaging,
				Detail:        "staging directory left by an interrupted operation",
				Recoverable:   true,
			})
			continue
		}
		if known[name] {
			continue
		}

		issue := models.IntegrityIssue{VaultLocation: name, Kind: models.IssueOrphanedCiphertext}
		fm, err := iv.store.LoadFolderMetadata(ctx, name)
		switch {
		case err == nil && fm.ObfuscatedIdentifier == name:
			issue.FolderID = fm.FolderID
			if _, tracked := sc.meta.Folders[fm.FolderID]; tracked {
				issue.Detail = "stale copy of a tracked folder"
			} else {
				issue.Kind = models.IssueUnindexedFolder
				issue.Detail = "folder has metadata but no index record"
			}
			issue.Recoverable = true
		case e.IsDir() && isEmptyDir(filepath.Join(iv.layout.FoldersDir(), name)):
			issue.Detail = "empty directory without metadata"
			issue.Recoverable = true
		default:
			issue.Detail = "ciphertext without metadata at " + name
		}
		sc.add(issue)
	}
}

func (iv *integrityValidator) checkMetadataDir(ctx context.Context, sc *scan) {
	locations, err := iv.store.ListFolderMetadata(ctx)
	if err != nil {
		sc.add(models.IntegrityIssue{Kind: models.IssueMissingMetadata, Detail: err.Error()})
		return
	}
	for _, loc := range locations {
		if tracksLocation(sc.meta, loc) {
			continue
		}
		// decoys of untracked folders must not show up as orphans
		if fm, err := iv.store.LoadFolderMetadata(ctx, loc); err == nil {
			sc.metadata[loc] = fm
		}
		dir, err := iv.layout.FolderDir(loc)
		if err != nil || exists(dir) {
			// reported by checkFoldersDir
			continue
		}
		sc.add(models.IntegrityIssue{
			VaultLocation: loc,
			Kind:          models.IssueOrphanedMetadata,
			Detail:        "folder metadata without ciphertext",
			Recoverable:   true,
		})
	}
}

// sortedRecords returns the folder records in index order followed by the
// records missing from the index, sorted by id.
func sortedRecords(meta *models.VaultMetadata) []models.SecuredFolder {
	out := make([]models.SecuredFolder, 0, len(meta.Folders))
	seen := map[string]bool{}
	for _, id := range meta.LockedFolderIDs {
		if rec, ok := meta.Folders[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, rec)
		}
	}
	var rest []string
	for id := range meta.Folders {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	for _, id := range rest {
		out = append(out, meta.Folders[id])
	}
	return out
}

func tracksLocation(meta *models.VaultMetadata, location string) bool {
	for _, rec := range meta.Folders {
		if rec.VaultLocation == location {
			return true
		}
	}
	return false
}

func isEmptyDir(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) == 0
}

// Repair fixes every recoverable issue, marks folders with unrecoverable
// issues CORRUPTED and reports them. Missing original paths of temporarily
// unlocked folders are fixed by reverting the folder to LOCKED and are
// reported as well, since the user's changes are gone.
func (iv *integrityValidator) Repair(ctx context.Context) models.RepairResult {
	log := logger.FromContext(ctx)
	sc := iv.scan(ctx)
	res := models.RepairResult{Success: true}

	if sc.meta == nil {
		res.Success = false
		res.Unresolved = sc.issues
		if len(sc.issues) > 0 {
			res.Error = sc.issues[0].Detail
		}
		for _, issue := range sc.issues {
			iv.report(ctx, models.EventIntegrityError, issue)
		}
		return res
	}

	meta := sc.meta
	dirty := false
	corrupted := map[string]bool{}

	for _, issue := range sc.issues {
		if !issue.Recoverable {
			rec, tracked := meta.Folders[issue.FolderID]
			switch {
			case issue.Kind == models.IssueCorruptedFolder:
				res.Unresolved = append(res.Unresolved, issue)
			case tracked:
				if !corrupted[rec.ID] {
					corrupted[rec.ID] = true
					rec.State = models.StateCorrupted
					meta.Folders[rec.ID] = rec
					dirty = true
					res.Corrupted = append(res.Corrupted, rec.ID)
				}
				iv.report(ctx, models.EventCorruptionDetected, issue)
			default:
				res.Unresolved = append(res.Unresolved, issue)
				iv.report(ctx, models.EventIntegrityError, issue)
			}
			continue
		}

		if err := iv.fix(ctx, meta, issue); err != nil {
			log.Err(err).
				Str("func", "integrityValidator.Repair").
				Str("kind", string(issue.Kind)).
				Str("folder_id", issue.FolderID).
				Msg("repair step failed")
			res.Unresolved = append(res.Unresolved, issue)
			iv.report(ctx, models.EventIntegrityError, issue)
			continue
		}
		dirty = true
		res.Repaired = append(res.Repaired, issue)
		if issue.Kind == models.IssueMissingOriginal {
			iv.report(ctx, models.EventIntegrityError, issue)
		}
	}

	if dirty {
		normalizeIndex(meta)
		meta.ModifiedAt = iv.now()
		if err := iv.store.SaveVaultMetadata(ctx, meta); err != nil {
			res.Success = false
			res.Error = err.Error()
			return res
		}
		if err := iv.syncTemporaryState(ctx, meta); err != nil {
			res.Success = false
			res.Error = err.Error()
		}
	}
	return res
}

// fix applies the in-memory or on-disk correction for a recoverable issue.
// Index changes are persisted by the caller.
func (iv *integrityValidator) fix(ctx context.Context, meta *models.VaultMetadata, issue models.IntegrityIssue) error {
	switch issue.Kind {
	case models.IssueCountMismatch, models.IssueStaleTemporaryState:
		// normalizeIndex and syncTemporaryState
		return nil

	case models.IssueMissingOriginal:
		rec := meta.Folders[issue.FolderID]
		rec.State = models.StateLocked
		rec.Lifetime = ""
		meta.Folders[rec.ID] = rec
		return nil

	case models.IssueStaleStaging:
		if !strings.HasPrefix(issue.VaultLocation, stagingPrefix) || strings.ContainsAny(issue.VaultLocation, `/\`) {
			return fmt.Errorf("%w: %q", store.ErrInvalidLocation, issue.VaultLocation)
		}
		return os.RemoveAll(filepath.Join(iv.layout.FoldersDir(), issue.VaultLocation))

	case models.IssueUnindexedFolder:
		fm, err := iv.store.LoadFolderMetadata(ctx, issue.VaultLocation)
		if err != nil {
			return err
		}
		meta.Track(models.SecuredFolder{
			ID:            fm.FolderID,
			ProfileID:     iv.profileID,
			OriginalPath:  fm.OriginalPath,
			VaultLocation: fm.ObfuscatedIdentifier,
			State:         models.StateLocked,
			CreatedAt:     fm.LockedAt,
			LastAccess:    fm.LockedAt,
			OriginalSize:  fm.TotalSize,
			FileCount:     fm.FileCount,
		})
		return nil

	case models.IssueOrphanedCiphertext:
		dir, err := iv.layout.FolderDir(issue.VaultLocation)
		if err != nil {
			return err
		}
		if err = os.RemoveAll(dir); err != nil {
			return err
		}
		if issue.FolderID == "" {
			return nil
		}
		if err = iv.store.DeleteFolderMetadata(ctx, issue.VaultLocation); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return nil

	case models.IssueOrphanedMetadata:
		if fm, err := iv.store.LoadFolderMetadata(ctx, issue.VaultLocation); err == nil {
			for _, d := range fm.DecoyPaths {
				dir, err := iv.layout.FolderDir(d)
				if err != nil {
					return err
				}
				if err = os.RemoveAll(dir); err != nil {
					return err
				}
			}
		}
		err := iv.store.DeleteFolderMetadata(ctx, issue.VaultLocation)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return nil
	}
	return fmt.Errorf("no repair for %s", issue.Kind)
}

// normalizeIndex drops ids without records, appends records missing from
// the order and recomputes the counters.
func normalizeIndex(meta *models.VaultMetadata) {
	meta.LockedFolderIDs = slices.DeleteFunc(meta.LockedFolderIDs, func(id string) bool {
		_, ok := meta.Folders[id]
		return !ok
	})
	var missing []string
	for id := range meta.Folders {
		if !slices.Contains(meta.LockedFolderIDs, id) {
			missing = append(missing, id)
		}
	}
	slices.Sort(missing)
	meta.LockedFolderIDs = append(meta.LockedFolderIDs, missing...)
	meta.Recount()
}

// syncTemporaryState makes the temporary unlock state list exactly the
// TEMP_UNLOCKED folders of meta.
func (iv *integrityValidator) syncTemporaryState(ctx context.Context, meta *models.VaultMetadata) error {
	isTemp := func(id string) bool {
		rec, ok := meta.Folders[id]
		return ok && rec.State == models.StateTempUnlocked
	}
	if _, err := iv.tracker.Retain(ctx, isTemp); err != nil {
		return err
	}
	listed, err := iv.tracker.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range meta.LockedFolderIDs {
		if isTemp(id) && !slices.Contains(listed, id) {
			if err = iv.tracker.Add(ctx, id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (iv *integrityValidator) report(ctx context.Context, kind models.RecoveryEventKind, issue models.IntegrityIssue) {
	if iv.reporter == nil {
		return
	}
	event := models.RecoveryEvent{
		Kind:      kind,
		ProfileID: iv.profileID,
		FolderID:  issue.FolderID,
		Issue:     issue.Kind,
		Detail:    issue.Detail,
	}
	if err := iv.reporter.Report(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "integrityValidator.report").
			Str("folder_id", issue.FolderID).
			Msg("failed to report recovery event")
	}
}
