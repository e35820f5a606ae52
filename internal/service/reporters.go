package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/store"
	"github.com/MKhiriev/phantom-vault/models"
)

// LogReporter writes recovery events to the log.
type LogReporter struct {
	logger *logger.Logger
}

func NewLogReporter(logger *logger.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(ctx context.Context, event models.RecoveryEvent) error {
	r.logger.Warn().
		Str("func", "LogReporter.Report").
		Str("kind", string(event.Kind)).
		Str("profile_id", event.ProfileID).
		Str("folder_id", event.FolderID).
		Str("issue", string(event.Issue)).
		Str("detail", event.Detail).
		Msg("vault needs recovery")
	return nil
}

// JournalReporter appends recovery events to the recovery journal. An event
// that matches an unresolved entry of the same profile, folder, kind, issue
// and detail is not stored again, so periodic maintenance does not flood the
// journal.
type JournalReporter struct {
	journal store.RecoveryJournal
	now     func() time.Time
}

func NewJournalReporter(journal store.RecoveryJournal) *JournalReporter {
	return &JournalReporter{journal: journal, now: time.Now}
}

func (r *JournalReporter) Report(ctx context.Context, event models.RecoveryEvent) error {
	open, err := r.journal.List(ctx, store.JournalFilter{
		ProfileID:      event.ProfileID,
		FolderID:       event.FolderID,
		Kind:           event.Kind,
		UnresolvedOnly: true,
	})
	if err != nil {
		return err
	}
	for _, e := range open {
		if e.Issue == event.Issue && e.FolderID == event.FolderID && e.Detail == event.Detail {
			return nil
		}
	}

	if event.CreatedAt.IsZero() {
		event.CreatedAt = r.now().UTC()
	}
	_, err = r.journal.Save(ctx, event)
	return err
}

// MultiReporter fans an event out to every reporter and joins their errors.
type MultiReporter []RecoveryReporter

func (m MultiReporter) Report(ctx context.Context, event models.RecoveryEvent) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Report(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
