// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/phantom-vault/models"
)

const recoveryEventsTable = "recovery_events"

var recoveryEventColumns = []string{
	"id", "kind", "profile_id", "folder_id", "issue", "detail", "created_at", "resolved",
}

// sqlite uses ? placeholders
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertRecoveryEventQuery(event models.RecoveryEvent) (string, []any, error) {
	query, args, err := qb.Insert(recoveryEventsTable).
		Columns("kind", "profile_id", "folder_id", "issue", "detail", "created_at", "resolved").
		Values(event.Kind, event.ProfileID, event.FolderID, event.Issue, event.Detail, event.CreatedAt.UTC(), event.Resolved).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListRecoveryEventsQuery(filter JournalFilter) (string, []any, error) {
	q := qb.Select(recoveryEventColumns...).From(recoveryEventsTable)

	if filter.ProfileID != "" {
		q = q.Where(sq.Eq{"profile_id": filter.ProfileID})
	}
	if filter.FolderID != "" {
		q = q.Where(sq.Eq{"folder_id": filter.FolderID})
	}
	if filter.Kind != "" {
		q = q.Where(sq.Eq{"kind": filter.Kind})
	}
	if filter.UnresolvedOnly {
		q = q.Where(sq.Eq{"resolved": false})
	}
	q = q.OrderBy("id ASC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildResolveRecoveryEventQuery(id int64) (string, []any, error) {
	query, args, err := qb.Update(recoveryEventsTable).
		Set("resolved", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
