package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/phantom-vault/internal/config"
	"github.com/MKhiriev/phantom-vault/internal/logger"
)

// Storages groups the storage components that live outside the profile
// vaults. Profile metadata stores are created per vault by the service
// layer through [NewFileMetadataStore].
type Storages struct {
	// Journal records recovery events.
	Journal RecoveryJournal

	db *DB
}

// NewStorages opens the journal database named in cfg.Journal.DSN,
// creating the file if needed, and runs pending migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Journal, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Journal: NewRecoveryJournal(db, logger),
		db:      db,
	}, nil
}

// Close releases the journal connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
