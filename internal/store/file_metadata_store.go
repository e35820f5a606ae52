// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/models"
)

// fileMetadataStore is the filesystem implementation of [MetadataStore].
// Documents are JSON files under the profile vault root.
type fileMetadataStore struct {
	layout Layout
	logger *logger.Logger
}

// NewFileMetadataStore returns a [MetadataStore] rooted at the profile vault
// directory root. The directory layout is created on first save.
func NewFileMetadataStore(root string, logger *logger.Logger) MetadataStore {
	return &fileMetadataStore{
		layout: Layout{Root: root},
		logger: logger,
	}
}

func (f *fileMetadataStore) Layout() Layout {
	return f.layout
}

func (f *fileMetadataStore) VaultExists() bool {
	info, err := os.Stat(f.layout.VaultMetadataPath())
	return err == nil && info.Mode().IsRegular()
}

func (f *fileMetadataStore) SaveVaultMetadata(ctx context.Context, meta *models.VaultMetadata) error {
	return f.save(ctx, f.layout.VaultMetadataPath(), meta)
}

func (f *fileMetadataStore) LoadVaultMetadata(ctx context.Context) (*models.VaultMetadata, error) {
	var meta models.VaultMetadata
	if err := f.load(ctx, f.layout.VaultMetadataPath(), &meta); err != nil {
		return nil, err
	}
	if meta.Folders == nil {
		meta.Folders = map[string]models.SecuredFolder{}
	}
	if meta.LockedFolderIDs == nil {
		meta.LockedFolderIDs = []string{}
	}
	return &meta, nil
}

func (f *fileMetadataStore) SaveFolderMetadata(ctx context.Context, location string, meta *models.FolderMetadata) error {
	path, err := f.layout.MetadataPath(location)
	if err != nil {
		return err
	}
	return f.save(ctx, path, meta)
}

func (f *fileMetadataStore) LoadFolderMetadata(ctx context.Context, location string) (*models.FolderMetadata, error) {
	path, err := f.layout.MetadataPath(location)
	if err != nil {
		return nil, err
	}
	var meta models.FolderMetadata
	if err = f.load(ctx, path, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (f *fileMetadataStore) DeleteFolderMetadata(ctx context.Context, location string) error {
	path, err := f.layout.MetadataPath(location)
	if err != nil {
		return err
	}
	return f.remove(ctx, path)
}

func (f *fileMetadataStore) ListFolderMetadata(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.layout.MetadataDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "fileMetadataStore.ListFolderMetadata").
			Msg("failed to read metadata directory")
		return nil, fmt.Errorf("list folder metadata: %w", err)
	}

	locations := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || ValidateLocation(e.Name()) != nil {
			continue
		}
		locations = append(locations, e.Name())
	}
	sort.Strings(locations)
	return locations, nil
}

func (f *fileMetadataStore) SaveTemporaryUnlockState(ctx context.Context, state *models.TemporaryUnlockState) error {
	return f.save(ctx, f.layout.TempUnlockPath(), state)
}

func (f *fileMetadataStore) LoadTemporaryUnlockState(ctx context.Context) (*models.TemporaryUnlockState, error) {
	var state models.TemporaryUnlockState
	if err := f.load(ctx, f.layout.TempUnlockPath(), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (f *fileMetadataStore) DeleteTemporaryUnlockState(ctx context.Context) error {
	return f.remove(ctx, f.layout.TempUnlockPath())
}

func (f *fileMetadataStore) save(ctx context.Context, path string, doc any) error {
	log := logger.FromContext(ctx)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err = f.layout.Ensure(); err != nil {
		log.Err(err).Str("func", "fileMetadataStore.save").Msg("failed to create vault layout")
		return err
	}
	if err = WriteFileAtomic(path, data, FilePerm); err != nil {
		log.Err(err).
			Str("func", "fileMetadataStore.save").
			Str("document", filepath.Base(path)).
			Msg("failed to write metadata document")
		return err
	}
	return nil
}

func (f *fileMetadataStore) load(ctx context.Context, path string, doc any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "fileMetadataStore.load").
			Str("document", filepath.Base(path)).
			Msg("failed to read metadata document")
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err = json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptedDocument, filepath.Base(path), err)
	}
	return nil
}

func (f *fileMetadataStore) remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "fileMetadataStore.remove").
			Str("document", filepath.Base(path)).
			Msg("failed to remove metadata document")
		return fmt.Errorf("remove %s: %w", filepath.Base(path), err)
	}
	return SyncDir(filepath.Dir(path))
}

// WriteFileAtomic writes data to a temporary sibling of path, syncs it and
// renames it over path, then syncs the parent directory. Readers see either
// the old or the new content, never a mix.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+strings.TrimPrefix(filepath.Base(path), ".")+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	committed = true
	return SyncDir(dir)
}

// SyncDir fsyncs a directory so that renames and removals inside it are
// durable.
func SyncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open dir for sync: %w", err)
	}
	defer d.Close()
	if err = d.Sync(); err != nil {
		return fmt.Errorf("sync dir: %w", err)
	}
	return nil
}
