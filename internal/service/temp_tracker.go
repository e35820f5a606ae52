package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/phantom-vault/internal/store"
	"github.com/MKhiriev/phantom-vault/models"
)

// ErrAlreadyRegistered is returned by tempUnlockTracker.Add for a folder
// that is already tracked as TEMP_UNLOCKED.
var ErrAlreadyRegistered = errors.New("folder is already registered as temporarily unlocked")

// tempUnlockTracker persists the set of TEMP_UNLOCKED folders of one
// profile. The document exists only while the set is non-empty.
type tempUnlockTracker struct {
	store store.MetadataStore
	now   func() time.Time
}

func newTempUnlockTracker(s store.MetadataStore, now func() time.Time) *tempUnlockTracker {
	if now == nil {
		now = time.Now
	}
	return &tempUnlockTracker{store: s, now: now}
}

// List returns the tracked folder ids in unlock order.
func (t *tempUnlockTracker) List(ctx context.Context) ([]string, error) {
	state, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(state.UnlockedFolderIDs), nil
}

// Add registers folderID and stamps the unlock batch time.
func (t *tempUnlockTracker) Add(ctx context.Context, folderID string) error {
	state, err := t.load(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(state.UnlockedFolderIDs, folderID) {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, folderID)
	}
	state.UnlockedFolderIDs = append(state.UnlockedFolderIDs, folderID)
	state.UnlockTimestamp = t.now().UTC()
	return t.store.SaveTemporaryUnlockState(ctx, state)
}

// Remove unregisters folderID. Removing an unknown id is a no-op.
func (t *tempUnlockTracker) Remove(ctx context.Context, folderID string) error {
	state, err := t.load(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(state.UnlockedFolderIDs, folderID) {
		return nil
	}
	state.UnlockedFolderIDs = slices.DeleteFunc(state.UnlockedFolderIDs, func(id string) bool { return id == folderID })
	return t.save(ctx, state)
}

// Retain keeps only the ids for which keep returns true and returns the
// dropped ones.
func (t *tempUnlockTracker) Retain(ctx context.Context, keep func(folderID string) bool) ([]string, error) {
	state, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	var dropped []string
	state.UnlockedFolderIDs = slices.DeleteFunc(state.UnlockedFolderIDs, func(id string) bool {
		if keep(id) {
			return false
		}
		dropped = append(dropped, id)
		return true
	})
	if len(dropped) == 0 {
		return nil, nil
	}
	return dropped, t.save(ctx, state)
}

func (t *tempUnlockTracker) load(ctx context.Context) (*models.TemporaryUnlockState, error) {
	state, err := t.store.LoadTemporaryUnlockState(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return &models.TemporaryUnlockState{UnlockedFolderIDs: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load temporary unlock state: %w", err)
	}
	if state.UnlockedFolderIDs == nil {
		state.UnlockedFolderIDs = []string{}
	}
	return state, nil
}

func (t *tempUnlockTracker) save(ctx context.Context, state *models.TemporaryUnlockState) error {
	if len(state.UnlockedFolderIDs) == 0 {
		err := t.store.DeleteTemporaryUnlockState(ctx)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return nil
	}
	return t.store.SaveTemporaryUnlockState(ctx, state)
}
