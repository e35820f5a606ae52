// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/models"
)

// recoveryJournal is the SQLite-backed implementation of [RecoveryJournal].
type recoveryJournal struct {
	*DB
	logger *logger.Logger
}

// NewRecoveryJournal constructs a [RecoveryJournal] on db. The schema must
// already be migrated.
func NewRecoveryJournal(db *DB, logger *logger.Logger) RecoveryJournal {
	return &recoveryJournal{
		DB:     db,
		logger: logger,
	}
}

func (r *recoveryJournal) Save(ctx context.Context, event models.RecoveryEvent) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecoveryEventQuery(event)
	if err != nil {
		log.Err(err).Str("func", "recoveryJournal.Save").Msg("failed to create query")
		return 0, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recoveryJournal.Save").
			Str("profile_id", event.ProfileID).
			Str("folder_id", event.FolderID).
			Msg("failed to insert recovery event")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return id, nil
}

func (r *recoveryJournal) List(ctx context.Context, filter JournalFilter) ([]models.RecoveryEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecoveryEventsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "recoveryJournal.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recoveryJournal.List").
			Str("profile_id", filter.ProfileID).
			Msg("failed to query recovery events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.RecoveryEvent, 0, 16)
	for rows.Next() {
		var (
			e        models.RecoveryEvent
			folderID sql.NullString
			issue    sql.NullString
		)
		if err = rows.Scan(&e.ID, &e.Kind, &e.ProfileID, &folderID, &issue, &e.Detail, &e.CreatedAt, &e.Resolved); err != nil {
			log.Err(err).Str("func", "recoveryJournal.List").Msg("failed to scan recovery event row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.FolderID = folderID.String
		e.Issue = models.IntegrityIssueKind(issue.String)
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

func (r *recoveryJournal) MarkResolved(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildResolveRecoveryEventQuery(id)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recoveryJournal.MarkResolved").
			Int64("event_id", id).
			Msg("failed to update recovery event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrEventNotFound, id)
	}
	return nil
}
