package store

import (
	"context"

	"github.com/MKhiriev/phantom-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MetadataStore persists the JSON documents of one profile vault. Every
// save is durable when it returns: the document is written to a temporary
// file, synced, renamed into place and the directory is synced.
type MetadataStore interface {
	// Layout returns the on-disk layout of the profile vault.
	Layout() Layout

	// VaultExists reports whether vault_metadata is present.
	VaultExists() bool

	SaveVaultMetadata(ctx context.Context, meta *models.VaultMetadata) error
	LoadVaultMetadata(ctx context.Context) (*models.VaultMetadata, error)

	SaveFolderMetadata(ctx context.Context, location string, meta *models.FolderMetadata) error
	LoadFolderMetadata(ctx context.Context, location string) (*models.FolderMetadata, error)
	DeleteFolderMetadata(ctx context.Context, location string) error
	// ListFolderMetadata returns the locations that have a metadata document.
	ListFolderMetadata(ctx context.Context) ([]string, error)

	SaveTemporaryUnlockState(ctx context.Context, state *models.TemporaryUnlockState) error
	LoadTemporaryUnlockState(ctx context.Context) (*models.TemporaryUnlockState, error)
	DeleteTemporaryUnlockState(ctx context.Context) error
}

// RecoveryJournal records integrity and corruption events that need user
// attention. It lives outside the profile vaults so it survives their
// damage.
type RecoveryJournal interface {
	// Save appends event and returns its id.
	Save(ctx context.Context, event models.RecoveryEvent) (int64, error)
	// List returns events matching filter, oldest first.
	List(ctx context.Context, filter JournalFilter) ([]models.RecoveryEvent, error)
	// MarkResolved flags the event as handled.
	MarkResolved(ctx context.Context, id int64) error
}

// JournalFilter narrows RecoveryJournal.List. Zero fields match everything.
type JournalFilter struct {
	ProfileID      string
	FolderID       string
	Kind           models.RecoveryEventKind
	UnresolvedOnly bool
	Limit          uint64
}
