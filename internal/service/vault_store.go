// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/phantom-vault/internal/config"
	"github.com/MKhiriev/phantom-vault/internal/crypto"
	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/metrics"
	"github.com/MKhiriev/phantom-vault/internal/obfuscation"
	"github.com/MKhiriev/phantom-vault/internal/store"
	"github.com/MKhiriev/phantom-vault/internal/utils"
	"github.com/MKhiriev/phantom-vault/internal/validators"
	"github.com/MKhiriev/phantom-vault/models"
)

const (
	verifierPurposePrefix = "phantom-vault/verifier/v1/"
	stagingPrefix         = ".staging-"

	// identifierAttempts bounds the retries for an identifier collision.
	identifierAttempts = 8
)

// vaultStore moves folders in and out of one profile vault. It does no
// locking of its own; the profile facade serializes every call.
type vaultStore struct {
	profileID string
	cfg       config.Vault

	store   store.MetadataStore
	layout  store.Layout
	engine  crypto.Engine
	sealer  crypto.Sealer
	namer   obfuscation.Namer
	tracker *tempUnlockTracker
	keys    *keyring
	metrics *metrics.Metrics
	ids     *utils.UUIDGenerator

	progress ProgressFunc
	now      func() time.Time
}

func newVaultStore(profileID string, cfg config.Vault, s store.MetadataStore, engine crypto.Engine, namer obfuscation.Namer, m *metrics.Metrics) *vaultStore {
	now := func() time.Time { return time.Now().UTC() }
	return &vaultStore{
		profileID: profileID,
		cfg:       cfg,
		store:     s,
		layout:    s.Layout(),
		engine:    engine,
		sealer:    crypto.NewSealer(engine),
		namer:     namer,
		tracker:   newTempUnlockTracker(s, now),
		keys:      newKeyring(),
		metrics:   m,
		ids:       utils.NewUUIDGenerator(),
		now:       now,
	}
}

// sealedFolder is a tree sealed into a fresh vault location whose original
// has been moved aside, waiting for the vault index commit.
type sealedFolder struct {
	identifier string
	meta       *models.FolderMetadata
	inflight   string
	warnings   []string
}

func (v *vaultStore) loadVault(ctx context.Context) (*models.VaultMetadata, error) {
	meta, err := v.store.LoadVaultMetadata(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, v.profileID)
	}
	if err != nil {
		return nil, err
	}
	if meta.ProfileID != v.profileID {
		return nil, fmt.Errorf("%w: vault metadata belongs to profile %q", ErrIntegrity, meta.ProfileID)
	}
	if meta.Folders == nil {
		meta.Folders = map[string]models.SecuredFolder{}
	}
	return meta, nil
}

func (v *vaultStore) verifierPurpose() string {
	return verifierPurposePrefix + v.profileID
}

// ensureVerifier checks masterKey against the vault verifier, creating the
// verifier on the first lock. The new verifier is persisted with the vault
// index commit.
func (v *vaultStore) ensureVerifier(meta *models.VaultMetadata, masterKey []byte) error {
	if len(masterKey) == 0 {
		return ErrEmptyMasterKey
	}
	if meta.Verifier != nil {
		return v.verifyMasterKey(meta, masterKey)
	}

	salt, err := v.engine.GenerateSalt()
	if err != nil {
		return err
	}
	key, err := v.engine.DeriveKeyWith(v.cfg.KDFAlgorithm, masterKey, salt, v.cfg.KDFIterations, crypto.KeySize)
	if err != nil {
		return err
	}
	defer crypto.SecureWipe(key)

	meta.Verifier = &models.KeyVerifier{
		Algorithm:  v.cfg.KDFAlgorithm,
		Iterations: v.cfg.KDFIterations,
		Salt:       salt,
		Token:      v.engine.VerificationToken(key, v.verifierPurpose()),
	}
	return nil
}

// verifyMasterKey fails with ErrInvalidMasterKey when masterKey does not
// match the verifier. A vault that never locked anything has no verifier and
// accepts any key.
func (v *vaultStore) verifyMasterKey(meta *models.VaultMetadata, masterKey []byte) error {
	if len(masterKey) == 0 {
		return ErrEmptyMasterKey
	}
	if meta.Verifier == nil {
		if len(meta.LockedFolderIDs) > 0 {
			return fmt.Errorf("%w: vault has folders but no key verifier", ErrIntegrity)
		}
		return nil
	}
	ver := meta.Verifier
	key, err := v.engine.DeriveKeyWith(ver.Algorithm, masterKey, ver.Salt, ver.Iterations, crypto.KeySize)
	if err != nil {
		return err
	}
	defer crypto.SecureWipe(key)

	if !v.engine.VerifyToken(key, v.verifierPurpose(), ver.Token) {
		return ErrInvalidMasterKey
	}
	return nil
}

func (v *vaultStore) folderKey(masterKey, salt []byte, iterations int) ([]byte, error) {
	return v.engine.DeriveKey(masterKey, salt, iterations, crypto.KeySize)
}

// resolveFolder accepts a folder id or its obfuscated identifier.
func resolveFolder(meta *models.VaultMetadata, ref string) (models.SecuredFolder, error) {
	if f, ok := meta.Folders[ref]; ok {
		return f, nil
	}
	if f, ok := meta.FindByLocation(ref); ok {
		return f, nil
	}
	return models.SecuredFolder{}, fmt.Errorf("%w: %s", ErrFolderNotFound, ref)
}

// checkOverlap rejects a path equal to, inside or containing a tracked
// folder.
func checkOverlap(meta *models.VaultMetadata, path string) error {
	for _, id := range meta.LockedFolderIDs {
		tracked := meta.Folders[id].OriginalPath
		if validators.IsWithin(tracked, path) || validators.IsWithin(path, tracked) {
			return fmt.Errorf("%w: %s overlaps %s", ErrAlreadyTracked, path, tracked)
		}
	}
	return nil
}

// LockFolder encrypts the folder at path into the vault. On failure the
// original is left in place and nothing is added to the vault.
func (v *vaultStore) LockFolder(ctx context.Context, path string, masterKey []byte) (models.FolderOperationResult, error) {
	log := logger.FromContext(ctx)
	path = filepath.Clean(path)

	meta, err := v.loadVault(ctx)
	if err != nil {
		return models.FolderOperationResult{}, err
	}
	if err = v.ensureVerifier(meta, masterKey); err != nil {
		return models.FolderOperationResult{}, err
	}
	if err = checkOverlap(meta, path); err != nil {
		return models.FolderOperationResult{}, err
	}
	if err = checkLockTarget(path); err != nil {
		return models.FolderOperationResult{}, err
	}
	if len(meta.ObfuscationSalt) == 0 {
		if meta.ObfuscationSalt, err = v.engine.GenerateSalt(); err != nil {
			return models.FolderOperationResult{}, err
		}
	}
	if err = v.layout.Ensure(); err != nil {
		return models.FolderOperationResult{}, err
	}

	keySalt, err := v.engine.GenerateSalt()
	if err != nil {
		return models.FolderOperationResult{}, err
	}
	key, err := v.folderKey(masterKey, keySalt, v.cfg.KDFIterations)
	if err != nil {
		return models.FolderOperationResult{}, err
	}
	defer crypto.SecureWipe(key)

	rb := &rollback{}
	defer func() { _ = rb.run(context.WithoutCancel(ctx)) }()

	folderID := v.ids.Generate()
	sealed, err := v.sealFolder(ctx, rb, meta, path, folderID, key, keySalt, v.cfg.KDFIterations)
	if err != nil {
		return models.FolderOperationResult{}, err
	}
	if err = ctx.Err(); err != nil {
		return models.FolderOperationResult{}, err
	}

	now := v.now()
	folder := models.SecuredFolder{
		ID:            folderID,
		ProfileID:     v.profileID,
		OriginalPath:  path,
		VaultLocation: sealed.identifier,
		State:         models.StateLocked,
		CreatedAt:     now,
		LastAccess:    now,
		OriginalSize:  sealed.meta.TotalSize,
		FileCount:     sealed.meta.FileCount,
	}
	meta.Track(folder)
	meta.ModifiedAt = now
	if err = v.store.SaveVaultMetadata(ctx, meta); err != nil {
		return models.FolderOperationResult{}, err
	}
	rb.commit()

	warnings := append(sealed.warnings, v.wipeOriginal(ctx, path, sealed.inflight)...)
	v.metrics.RecordFiles("lock", sealed.meta.FileCount, sealed.meta.TotalSize)

	log.Info().
		Str("func", "vaultStore.LockFolder").
		Str("folder_id", folderID).
		Int("files", sealed.meta.FileCount).
		Int64("bytes", sealed.meta.TotalSize).
		Msg("folder locked")

	return models.FolderOperationResult{
		FolderID:       folderID,
		Identifier:     sealed.identifier,
		ProcessedFiles: sealed.meta.FileCount,
		TotalFiles:     sealed.meta.FileCount,
		Warnings:       warnings,
	}, nil
}

func checkLockTarget(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	return nil
}

// sealFolder encrypts the tree at path into a new vault location, writes its
// folder metadata and moves the original aside. Every change is pushed to rb.
func (v *vaultStore) sealFolder(ctx context.Context, rb *rollback, meta *models.VaultMetadata, path, folderID string, key, keySalt []byte, iterations int) (*sealedFolder, error) {
	m, err := buildManifest(path)
	if err != nil {
		return nil, err
	}

	identifier, obfSalt, err := v.newIdentifier(meta, path)
	if err != nil {
		return nil, err
	}

	staging, err := os.MkdirTemp(v.layout.FoldersDir(), stagingPrefix)
	if err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}
	rb.push("remove staging", func() error { return os.RemoveAll(staging) })

	if err = v.sealTree(ctx, path, staging, m.entries, key); err != nil {
		return nil, err
	}

	final, err := v.layout.FolderDir(identifier)
	if err != nil {
		return nil, err
	}
	if err = os.Rename(staging, final); err != nil {
		return nil, fmt.Errorf("move staging into place: %w", err)
	}
	rb.push("remove ciphertext", func() error { return os.RemoveAll(final) })

	sealed := &sealedFolder{identifier: identifier}

	decoys, err := v.namer.CreateDecoyStructure(v.layout.FoldersDir(), identifier, v.cfg.DecoyCount)
	if err != nil {
		sealed.warnings = append(sealed.warnings, fmt.Sprintf("decoy structure incomplete: %v", err))
	}
	rb.push("remove decoys", func() error { return v.removeDecoys(decoys) })

	files, size := totals(m.entries)
	sealed.meta = &models.FolderMetadata{
		FolderID:             folderID,
		OriginalPath:         path,
		ObfuscatedIdentifier: identifier,
		ObfuscationSalt:      obfSalt,
		DecoyPaths:           decoys,
		Root:                 m.root,
		ExtendedAttributes:   m.root.Xattrs,
		KeySalt:              keySalt,
		KDFIterations:        iterations,
		Algorithm:            models.BlobAlgorithm,
		Entries:              m.entries,
		FileCount:            files,
		TotalSize:            size,
		LockedAt:             v.now(),
	}
	if err = v.store.SaveFolderMetadata(ctx, identifier, sealed.meta); err != nil {
		return nil, err
	}
	rb.push("delete folder metadata", func() error {
		return v.store.DeleteFolderMetadata(context.WithoutCancel(ctx), identifier)
	})

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	inflight, err := v.namer.ArtifactPath(path, obfuscation.ArtifactInflight)
	if err != nil {
		return nil, err
	}
	if err = os.Rename(path, inflight); err != nil {
		return nil, fmt.Errorf("move original aside: %w", err)
	}
	rb.push("restore original", func() error { return os.Rename(inflight, path) })
	sealed.inflight = inflight

	return sealed, nil
}

func (v *vaultStore) newIdentifier(meta *models.VaultMetadata, path string) (string, []byte, error) {
	for range identifierAttempts {
		id, salt, err := v.namer.GenerateIdentifier(path, meta.ObfuscationSalt)
		if err != nil {
			return "", nil, err
		}
		if _, taken := meta.FindByLocation(id); taken {
			continue
		}
		dir, err := v.layout.FolderDir(id)
		if err != nil {
			return "", nil, err
		}
		mpath, err := v.layout.MetadataPath(id)
		if err != nil {
			return "", nil, err
		}
		if exists(dir) || exists(mpath) {
			continue
		}
		return id, salt, nil
	}
	return "", nil, fmt.Errorf("%w: no unique identifier after %d attempts", ErrIntegrity, identifierAttempts)
}

// sealTree mirrors the directories of entries under dst and seals every
// regular file in parallel. Checksums and sizes are written back into
// entries.
func (v *vaultStore) sealTree(ctx context.Context, src, dst string, entries []models.ManifestEntry, key []byte) error {
	for _, e := range entries {
		if e.Kind != models.EntryDir {
			continue
		}
		dir, err := safeJoin(dst, e.Path)
		if err != nil {
			return err
		}
		if err = os.MkdirAll(dir, store.DirPerm); err != nil {
			return err
		}
	}

	files := entryIndexes(entries, models.EntryFile)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(v.cfg.Workers, 1))
	for _, i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			in, err := safeJoin(src, entries[i].Path)
			if err != nil {
				return err
			}
			out, err := safeJoin(dst, entries[i].Path)
			if err != nil {
				return err
			}
			res, err := v.sealFile(in, out+store.CiphertextSuffix, key)
			if err != nil {
				return fmt.Errorf("seal %s: %w", entries[i].Path, err)
			}
			entries[i].Size = res.PlainSize
			entries[i].Compression = compressionName(v.cfg.Compression)
			entries[i].PlainChecksum = res.PlainChecksum.String()
			entries[i].CipherChecksum = res.CipherChecksum.String()
			v.reportProgress(int(done.Add(1)), len(files))
			return nil
		})
	}
	return g.Wait()
}

func compressionName(c string) string {
	if c == "" {
		return crypto.CompressionNone
	}
	return c
}

func (v *vaultStore) sealFile(src, dst string, key []byte) (crypto.SealResult, error) {
	in, err := os.Open(src)
	if err != nil {
		return crypto.SealResult{}, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, store.FilePerm)
	if err != nil {
		return crypto.SealResult{}, err
	}
	res, err := v.sealer.Seal(out, in, key, v.profileID, compressionName(v.cfg.Compression))
	if err != nil {
		out.Close()
		return crypto.SealResult{}, err
	}
	if err = out.Sync(); err != nil {
		out.Close()
		return crypto.SealResult{}, err
	}
	return res, out.Close()
}

func (v *vaultStore) reportProgress(done, total int) {
	if v.progress != nil {
		v.progress(done, total)
	}
}

// wipeOriginal securely removes the moved-aside original and whatever else
// is left at path. Failures are returned as warnings; the lock is already
// committed.
func (v *vaultStore) wipeOriginal(ctx context.Context, path, inflight string) []string {
	var warnings []string
	if inflight != "" {
		if err := v.namer.SecureRemoveAll(inflight); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "vaultStore.wipeOriginal").Msg("secure removal of original failed")
			warnings = append(warnings, fmt.Sprintf("secure removal of original incomplete: %v", err))
		}
	}
	if err := v.namer.EliminatePathTraces(path); err != nil {
		warnings = append(warnings, fmt.Sprintf("path traces remain: %v", err))
	}
	return warnings
}

// UnlockFolder restores a folder. A failed unlock leaves the folder
// encrypted and tracked.
func (v *vaultStore) UnlockFolder(ctx context.Context, ref string, masterKey []byte, mode models.UnlockMode, trigger models.UnlockTrigger) (models.UnlockResult, error) {
	meta, err := v.loadVault(ctx)
	if err != nil {
		return models.UnlockResult{}, err
	}
	folder, err := resolveFolder(meta, ref)
	if err != nil {
		return models.UnlockResult{}, err
	}

	log := logger.FromContext(ctx).With().
		Str("folder_id", folder.ID).
		Str("mode", string(mode)).
		Str("trigger", string(trigger)).
		Logger()
	ctx = log.WithContext(ctx)

	switch folder.State {
	case models.StateLocked:
		return v.unlockLocked(ctx, meta, folder, masterKey, mode)
	case models.StateTempUnlocked:
		return v.unlockTemporary(ctx, meta, folder, masterKey, mode)
	case models.StateCorrupted:
		return models.UnlockResult{FolderID: folder.ID}, fmt.Errorf("%w: folder %s is marked corrupted", ErrIntegrity, folder.ID)
	default:
		return models.UnlockResult{FolderID: folder.ID}, fmt.Errorf("%w: %s", ErrInvalidState, folder.State)
	}
}

func (v *vaultStore) unlockLocked(ctx context.Context, meta *models.VaultMetadata, folder models.SecuredFolder, masterKey []byte, mode models.UnlockMode) (models.UnlockResult, error) {
	res := models.UnlockResult{FolderID: folder.ID}

	if err := v.verifyMasterKey(meta, masterKey); err != nil {
		return res, err
	}
	if _, err := os.Lstat(folder.OriginalPath); err == nil {
		return res, fmt.Errorf("%w: %s", ErrOriginalPathExists, folder.OriginalPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return res, err
	}

	fm, err := v.loadFolderMetadata(ctx, folder)
	if err != nil {
		return res, err
	}
	key, err := v.folderKey(masterKey, fm.KeySalt, fm.KDFIterations)
	if err != nil {
		return res, err
	}
	defer crypto.SecureWipe(key)

	if err = os.MkdirAll(filepath.Dir(folder.OriginalPath), 0o755); err != nil {
		return res, err
	}

	rb := &rollback{}
	defer func() { _ = rb.run(context.WithoutCancel(ctx)) }()

	restore, err := v.namer.ArtifactPath(folder.OriginalPath, obfuscation.ArtifactRestore)
	if err != nil {
		return res, err
	}
	if err = os.Mkdir(restore, store.DirPerm); err != nil {
		return res, err
	}
	rb.push("remove restore artifact", func() error { return v.namer.SecureRemoveAll(restore) })

	cipherDir, err := v.layout.FolderDir(folder.VaultLocation)
	if err != nil {
		return res, err
	}
	if err = v.openTree(ctx, cipherDir, restore, fm.Entries, key); err != nil {
		return res, err
	}
	res.Warnings = v.restoreAttributes(restore, fm)

	if err = ctx.Err(); err != nil {
		return res, err
	}
	if err = os.Rename(restore, folder.OriginalPath); err != nil {
		return res, fmt.Errorf("move restored folder into place: %w", err)
	}
	rb.push("move restored folder back", func() error { return os.Rename(folder.OriginalPath, restore) })

	now := v.now()
	folder.LastAccess = now
	meta.ModifiedAt = now

	switch mode {
	case models.UnlockTemporary:
		folder.State = models.StateTempUnlocked
		folder.Lifetime = models.UnlockTemporary
		if err = v.tracker.Add(ctx, folder.ID); err != nil {
			return res, err
		}
		rb.push("unregister temporary unlock", func() error {
			return v.tracker.Remove(context.WithoutCancel(ctx), folder.ID)
		})
		meta.Track(folder)
		if err = v.store.SaveVaultMetadata(ctx, meta); err != nil {
			return res, err
		}
		rb.commit()
		v.keys.put(folder.ID, key)

	case models.UnlockPermanent:
		meta.Untrack(folder.ID)
		if err = v.store.SaveVaultMetadata(ctx, meta); err != nil {
			return res, err
		}
		rb.commit()
		res.Warnings = append(res.Warnings, v.removeVaultCopy(ctx, folder.VaultLocation, fm.DecoyPaths)...)

	default:
		return res, fmt.Errorf("%w: unlock mode %q", ErrInvalidState, mode)
	}

	res.RestoredPath = folder.OriginalPath
	res.ProcessedFiles = fm.FileCount
	v.metrics.RecordFiles("unlock", fm.FileCount, fm.TotalSize)

	logger.FromContext(ctx).Info().
		Str("func", "vaultStore.UnlockFolder").
		Int("files", fm.FileCount).
		Msg("folder unlocked")
	return res, nil
}

// unlockTemporary handles an unlock request for a TEMP_UNLOCKED folder.
// PERMANENT finalizes the unlock by dropping the vault copy.
func (v *vaultStore) unlockTemporary(ctx context.Context, meta *models.VaultMetadata, folder models.SecuredFolder, masterKey []byte, mode models.UnlockMode) (models.UnlockResult, error) {
	res := models.UnlockResult{FolderID: folder.ID}
	if err := v.verifyMasterKey(meta, masterKey); err != nil {
		return res, err
	}
	res.RestoredPath = folder.OriginalPath

	info, err := os.Lstat(folder.OriginalPath)
	if errors.Is(err, fs.ErrNotExist) {
		return res, fmt.Errorf("%w: %s", ErrOriginalPathMissing, folder.OriginalPath)
	}
	if err != nil {
		return res, err
	}
	if !info.IsDir() {
		return res, fmt.Errorf("%w: %s", ErrNotADirectory, folder.OriginalPath)
	}

	if mode == models.UnlockTemporary {
		res.Warnings = []string{"folder is already temporarily unlocked"}
		return res, nil
	}
	if mode != models.UnlockPermanent {
		return res, fmt.Errorf("%w: unlock mode %q", ErrInvalidState, mode)
	}

	decoys := v.decoysOf(ctx, folder.VaultLocation)
	meta.Untrack(folder.ID)
	meta.ModifiedAt = v.now()
	if err = v.store.SaveVaultMetadata(ctx, meta); err != nil {
		return res, err
	}
	if err = v.tracker.Remove(ctx, folder.ID); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("temporary unlock state not updated: %v", err))
	}
	v.keys.drop(folder.ID)
	res.Warnings = append(res.Warnings, v.removeVaultCopy(ctx, folder.VaultLocation, decoys)...)
	res.ProcessedFiles = folder.FileCount
	return res, nil
}

func (v *vaultStore) loadFolderMetadata(ctx context.Context, folder models.SecuredFolder) (*models.FolderMetadata, error) {
	fm, err := v.store.LoadFolderMetadata(ctx, folder.VaultLocation)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: folder metadata of %s is missing", ErrIntegrity, folder.ID)
	}
	if err != nil {
		return nil, err
	}
	if fm.FolderID != folder.ID {
		return nil, fmt.Errorf("%w: folder metadata at %s belongs to %s", ErrIntegrity, folder.VaultLocation, fm.FolderID)
	}
	return fm, nil
}

func (v *vaultStore) decoysOf(ctx context.Context, location string) []string {
	fm, err := v.store.LoadFolderMetadata(ctx, location)
	if err != nil {
		return nil
	}
	return fm.DecoyPaths
}

// openTree recreates the tree of entries under dst from the ciphertext in
// src. Every blob is checked against its recorded checksum before it is
// decrypted.
func (v *vaultStore) openTree(ctx context.Context, src, dst string, entries []models.ManifestEntry, key []byte) error {
	for _, e := range entries {
		if e.Kind != models.EntryDir {
			continue
		}
		dir, err := safeJoin(dst, e.Path)
		if err != nil {
			return err
		}
		if err = os.MkdirAll(dir, store.DirPerm); err != nil {
			return err
		}
	}

	files := entryIndexes(entries, models.EntryFile)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(v.cfg.Workers, 1))
	for _, i := range files {
		e := entries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			in, err := safeJoin(src, e.Path)
			if err != nil {
				return err
			}
			out, err := safeJoin(dst, e.Path)
			if err != nil {
				return err
			}
			if err = v.openFile(in+store.CiphertextSuffix, out, e, key); err != nil {
				return fmt.Errorf("open %s: %w", e.Path, err)
			}
			v.reportProgress(int(done.Add(1)), len(files))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, i := range entryIndexes(entries, models.EntrySymlink) {
		link, err := safeJoin(dst, entries[i].Path)
		if err != nil {
			return err
		}
		if err = os.Symlink(entries[i].LinkTarget, link); err != nil {
			return err
		}
	}
	return nil
}

func (v *vaultStore) openFile(src, dst string, e models.ManifestEntry, key []byte) error {
	in, err := os.Open(src)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: ciphertext is missing", ErrIntegrity)
	}
	if err != nil {
		return err
	}
	defer in.Close()

	sum, _, err := crypto.ChecksumReader(in)
	if err != nil {
		return err
	}
	if err = crypto.Checksum(e.CipherChecksum).Verify(sum); err != nil {
		return fmt.Errorf("%w: ciphertext: %w", ErrIntegrity, err)
	}
	if _, err = in.Seek(0, io.SeekStart); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, store.FilePerm)
	if err != nil {
		return err
	}
	res, err := v.sealer.Open(out, in, key, v.profileID, e.Compression)
	if err != nil {
		out.Close()
		return err
	}
	if err = crypto.Checksum(e.PlainChecksum).Verify(res.PlainChecksum); err != nil {
		out.Close()
		return fmt.Errorf("%w: plaintext: %w", ErrIntegrity, err)
	}
	if err = out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// restoreAttributes applies the captured attributes bottom-up so that a
// read-only directory is chmodded only after its children are done.
func (v *vaultStore) restoreAttributes(root string, fm *models.FolderMetadata) []string {
	var warnings []string
	apply := func(path string, attrs models.FileAttributes, symlink bool) {
		if err := applyAttributes(path, attrs, symlink); err != nil {
			warnings = append(warnings, fmt.Sprintf("attributes not fully restored: %v", err))
		}
	}

	for _, e := range fm.Entries {
		if e.Kind == models.EntryDir {
			continue
		}
		path, err := safeJoin(root, e.Path)
		if err != nil {
			continue
		}
		apply(path, e.Attrs, e.Kind == models.EntrySymlink)
	}
	for _, e := range deepestFirst(fm.Entries) {
		path, err := safeJoin(root, e.Path)
		if err != nil {
			continue
		}
		apply(path, e.Attrs, false)
	}

	rootAttrs := fm.Root
	if rootAttrs.Xattrs == nil {
		rootAttrs.Xattrs = fm.ExtendedAttributes
	}
	apply(root, rootAttrs, false)
	return warnings
}

// removeVaultCopy deletes the ciphertext, metadata and decoys of location.
// It runs after the index no longer references location, so failures only
// leave orphans for the integrity pass.
func (v *vaultStore) removeVaultCopy(ctx context.Context, location string, decoys []string) []string {
	var warnings []string
	if dir, err := v.layout.FolderDir(location); err == nil {
		if err = os.RemoveAll(dir); err != nil {
			warnings = append(warnings, fmt.Sprintf("ciphertext not removed: %v", err))
		}
	}
	if err := v.store.DeleteFolderMetadata(ctx, location); err != nil && !errors.Is(err, store.ErrNotFound) {
		warnings = append(warnings, fmt.Sprintf("folder metadata not removed: %v", err))
	}
	if err := v.removeDecoys(decoys); err != nil {
		warnings = append(warnings, fmt.Sprintf("decoys not removed: %v", err))
	}
	return warnings
}

func (v *vaultStore) removeDecoys(decoys []string) error {
	var errs []error
	for _, name := range decoys {
		dir, err := v.layout.FolderDir(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err = os.RemoveAll(dir); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// relockOutcome carries the per-folder failures of a relock next to the
// aggregate result.
type relockOutcome struct {
	result   models.UnlockResult
	failures map[string]error
}

// RelockTemporaryFolders re-encrypts every TEMP_UNLOCKED folder. masterKey
// may be nil, in which case only folders with a session key are relocked.
// A folder that fails stays TEMP_UNLOCKED and is listed in FailedFolders.
func (v *vaultStore) RelockTemporaryFolders(ctx context.Context, masterKey []byte) (relockOutcome, error) {
	out := relockOutcome{result: models.UnlockResult{}, failures: map[string]error{}}

	meta, err := v.loadVault(ctx)
	if err != nil {
		return out, err
	}
	ids, err := v.tracker.List(ctx)
	if err != nil {
		return out, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	if masterKey != nil {
		if err = v.verifyMasterKey(meta, masterKey); err != nil {
			return out, err
		}
	}

	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			out.failures[id] = err
			out.result.FailedFolders = append(out.result.FailedFolders, id)
			continue
		}
		folder, ok := meta.Folders[id]
		if !ok || folder.State != models.StateTempUnlocked {
			out.result.Warnings = append(out.result.Warnings, fmt.Sprintf("stale temporary unlock entry %s", id))
			continue
		}
		warnings, err := v.relockOne(ctx, meta, folder, masterKey)
		out.result.Warnings = append(out.result.Warnings, warnings...)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "vaultStore.RelockTemporaryFolders").
				Str("folder_id", id).
				Msg("relock failed")
			out.failures[id] = err
			out.result.FailedFolders = append(out.result.FailedFolders, id)
			continue
		}
		out.result.RelockedFolders = append(out.result.RelockedFolders, id)
		out.result.ProcessedFiles += meta.Folders[id].FileCount
	}
	return out, nil
}

func (v *vaultStore) relockOne(ctx context.Context, meta *models.VaultMetadata, folder models.SecuredFolder, masterKey []byte) ([]string, error) {
	if err := checkLockTarget(folder.OriginalPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrOriginalPathMissing, folder.OriginalPath)
		}
		return nil, err
	}

	old, err := v.loadFolderMetadata(ctx, folder)
	if err != nil {
		return nil, err
	}

	key, ok := v.keys.get(folder.ID)
	if !ok {
		if masterKey == nil {
			return nil, fmt.Errorf("%w: %s", ErrSessionKeyUnavailable, folder.ID)
		}
		if key, err = v.folderKey(masterKey, old.KeySalt, old.KDFIterations); err != nil {
			return nil, err
		}
	}
	defer crypto.SecureWipe(key)

	rb := &rollback{}
	defer func() { _ = rb.run(context.WithoutCancel(ctx)) }()

	sealed, err := v.sealFolder(ctx, rb, meta, folder.OriginalPath, folder.ID, key, old.KeySalt, old.KDFIterations)
	if err != nil {
		return nil, err
	}

	prev := folder
	rb.push("restore index record", func() error {
		meta.Track(prev)
		return nil
	})

	now := v.now()
	folder.VaultLocation = sealed.identifier
	folder.State = models.StateLocked
	folder.Lifetime = ""
	folder.LastAccess = now
	folder.OriginalSize = sealed.meta.TotalSize
	folder.FileCount = sealed.meta.FileCount
	meta.Track(folder)
	meta.ModifiedAt = now
	if err = v.store.SaveVaultMetadata(ctx, meta); err != nil {
		return nil, err
	}
	rb.commit()

	warnings := sealed.warnings
	if err = v.tracker.Remove(ctx, folder.ID); err != nil {
		warnings = append(warnings, fmt.Sprintf("temporary unlock state not updated: %v", err))
	}
	v.keys.drop(folder.ID)
	warnings = append(warnings, v.removeVaultCopy(ctx, prev.VaultLocation, old.DecoyPaths)...)
	warnings = append(warnings, v.wipeOriginal(ctx, folder.OriginalPath, sealed.inflight)...)
	v.metrics.RecordFiles("relock", sealed.meta.FileCount, sealed.meta.TotalSize)
	return warnings, nil
}

// Size returns the bytes under the vault root.
func (v *vaultStore) Size() (int64, error) {
	var total int64
	err := filepath.WalkDir(v.layout.Root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += info.Size()
		}
		return nil
	})
	return total, err
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
