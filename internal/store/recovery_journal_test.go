package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/phantom-vault/internal/config"
	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestJournal(t *testing.T) (RecoveryJournal, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewRecoveryJournal(NewDB(db, logger.Nop()), logger.Nop()), mock
}

func TestRecoveryJournal_Save(t *testing.T) {
	journal, mock := newTestJournal(t)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recovery_events")).
		WithArgs("CorruptionDetected", "alice", "f-1", "checksum_mismatch", "bad blob", sqlmock.AnyArg(), false).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := journal.Save(testContext(), models.RecoveryEvent{
		Kind:      models.EventCorruptionDetected,
		ProfileID: "alice",
		FolderID:  "f-1",
		Issue:     models.IssueChecksumMismatch,
		Detail:    "bad blob",
		CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecoveryJournal_Save_ExecError(t *testing.T) {
	journal, mock := newTestJournal(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recovery_events")).
		WillReturnError(errors.New("disk full"))

	_, err := journal.Save(testContext(), models.RecoveryEvent{Kind: models.EventIntegrityError, ProfileID: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecoveryJournal_List(t *testing.T) {
	journal, mock := newTestJournal(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows(recoveryEventColumns).
		AddRow(int64(1), "IntegrityError", "alice", "f-1", "missing_ciphertext", "gone", created, false).
		AddRow(int64(2), "CorruptionDetected", "alice", nil, nil, "index lost", created, true)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, kind, profile_id, folder_id, issue, detail, created_at, resolved FROM recovery_events WHERE profile_id = ?")).
		WithArgs("alice").
		WillReturnRows(rows)

	events, err := journal.List(testContext(), JournalFilter{ProfileID: "alice"})
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, models.EventIntegrityError, events[0].Kind)
	assert.Equal(t, "f-1", events[0].FolderID)
	assert.Equal(t, models.IssueMissingCiphertext, events[0].Issue)
	assert.Equal(t, created, events[0].CreatedAt)
	assert.False(t, events[0].Resolved)

	assert.Equal(t, "", events[1].FolderID)
	assert.True(t, events[1].Resolved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecoveryJournal_List_QueryError(t *testing.T) {
	journal, mock := newTestJournal(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("locked"))

	_, err := journal.List(testContext(), JournalFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestRecoveryJournal_List_ScanError(t *testing.T) {
	journal, mock := newTestJournal(t)

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(1))
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := journal.List(testContext(), JournalFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestRecoveryJournal_MarkResolved(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		journal, mock := newTestJournal(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE recovery_events SET resolved = ? WHERE id = ?")).
			WithArgs(true, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, journal.MarkResolved(testContext(), 3))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		journal, mock := newTestJournal(t)
		mock.ExpectExec("UPDATE recovery_events").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, journal.MarkResolved(testContext(), 99), ErrEventNotFound)
	})
}

func TestStorages_SQLiteJournalRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "journal", "recovery.db")

	storages, err := NewStorages(testContext(), config.Storage{Journal: config.Journal{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	ctx := testContext()
	id, err := storages.Journal.Save(ctx, models.RecoveryEvent{
		Kind:      models.EventIntegrityError,
		ProfileID: "bob",
		FolderID:  "f-9",
		Issue:     models.IssueMissingMetadata,
		Detail:    "metadata missing",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	events, err := storages.Journal.List(ctx, JournalFilter{ProfileID: "bob", UnresolvedOnly: true})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "f-9", events[0].FolderID)

	require.NoError(t, storages.Journal.MarkResolved(ctx, id))

	events, err = storages.Journal.List(ctx, JournalFilter{ProfileID: "bob", UnresolvedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, events)
}
