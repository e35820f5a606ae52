package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/migrations"
)

// DB wraps the journal connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewDB wraps an open connection. Tests use it with sqlmock.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

// Migrate brings the journal schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().
			Str("func", "DB.Migrate").
			Ints64("versions", applied).
			Msg("journal migrations applied")
	}
	return nil
}
