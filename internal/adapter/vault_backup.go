// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/MKhiriev/phantom-vault/internal/config"
	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/service"
	"github.com/MKhiriev/phantom-vault/internal/store"
	"github.com/MKhiriev/phantom-vault/internal/validators"
	"github.com/MKhiriev/phantom-vault/models"
)

const (
	archiveSuffix      = ".tar"
	archiveContentType = "application/x-tar"
	objectTimeLayout   = "20060102T150405.000000000Z"
	profileMetadataKey = "Profile-Id"
)

var _ service.BackupTarget = (*vaultBackup)(nil)

type vaultBackup struct {
	api    ObjectStorageAPI
	bucket string
	now    func() time.Time

	logger *logger.Logger
}

// NewVaultBackup returns a backup target that stores one tar archive per
// backup under <profile>/<timestamp>.tar in cfg.Bucket. The bucket is
// created when missing.
func NewVaultBackup(ctx context.Context, api ObjectStorageAPI, cfg config.Backup, logger *logger.Logger) (service.BackupTarget, error) {
	b := &vaultBackup{
		api:    api,
		bucket: cfg.Bucket,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
	if err := b.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}
	return b, nil
}

func (b *vaultBackup) ensureBucket(ctx context.Context, region string) error {
	exists, err := b.api.BucketExists(ctx, b.bucket)
	if err != nil {
		return mapStorageError(err)
	}
	if exists {
		return nil
	}
	if err = b.api.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return mapStorageError(err)
	}
	b.logger.Info().
		Str("func", "vaultBackup.ensureBucket").
		Str("bucket", b.bucket).
		Msg("backup bucket created")
	return nil
}

func objectKey(profileID string, at time.Time) string {
	return profileID + "/" + at.UTC().Format(objectTimeLayout) + archiveSuffix
}

// Upload streams the tree under root into a new archive object.
func (b *vaultBackup) Upload(ctx context.Context, profileID, root string) (models.BackupInfo, error) {
	createdAt := b.now()
	key := objectKey(profileID, createdAt)

	pr, pw := io.Pipe()
	archived := make(chan error, 1)
	go func() {
		err := writeArchive(pw, root)
		pw.CloseWithError(err)
		archived <- err
	}()

	info, err := b.api.PutObject(ctx, b.bucket, key, pr, -1, minio.PutObjectOptions{
		ContentType:  archiveContentType,
		UserMetadata: map[string]string{profileMetadataKey: profileID},
	})
	pr.CloseWithError(io.ErrClosedPipe)
	aerr := <-archived
	if err != nil {
		return models.BackupInfo{}, fmt.Errorf("upload backup: %w", mapStorageError(err))
	}
	if aerr != nil {
		return models.BackupInfo{}, fmt.Errorf("archive vault: %w", aerr)
	}

	logger.FromContext(ctx).Info().
		Str("func", "vaultBackup.Upload").
		Str("object_key", key).
		Int64("size", info.Size).
		Msg("vault backup uploaded")

	return models.BackupInfo{
		ProfileID: profileID,
		ObjectKey: key,
		Size:      info.Size,
		CreatedAt: createdAt,
	}, nil
}

// writeArchive writes the directories and regular files under root to w.
// Names are slash separated and relative to root.
func writeArchive(w io.Writer, root string) error {
	tw := tar.NewWriter(w)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if !d.IsDir() && !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if d.IsDir() {
			hdr.Name += "/"
		}
		hdr.Uid, hdr.Gid, hdr.Uname, hdr.Gname = 0, 0, "", ""
		if err = tw.WriteHeader(hdr); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return err
	}
	return tw.Close()
}

// Restore replaces root with the content of the archive at key. The archive
// is extracted next to root first, so a failed restore leaves root as it was.
func (b *vaultBackup) Restore(ctx context.Context, profileID, key, root string) error {
	if !strings.HasPrefix(key, profileID+"/") {
		return fmt.Errorf("%w: %s", ErrForeignArchive, key)
	}

	rc, err := b.api.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("download backup: %w", mapStorageError(err))
	}
	defer rc.Close()

	parent := filepath.Dir(root)
	if err = os.MkdirAll(parent, store.DirPerm); err != nil {
		return err
	}
	staging, err := os.MkdirTemp(parent, "."+filepath.Base(root)+".restore-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(staging)

	if err = extractArchive(ctx, rc, staging); err != nil {
		return err
	}
	if _, err = os.Stat(filepath.Join(staging, store.VaultMetadataFile)); err != nil {
		return fmt.Errorf("%w: no %s in archive", ErrInvalidArchive, store.VaultMetadataFile)
	}

	if err = swapDir(root, staging); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "vaultBackup.Restore").
		Str("object_key", key).
		Msg("vault backup restored")
	return nil
}

func extractArchive(ctx context.Context, r io.Reader, dst string) error {
	tr := tar.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArchive, mapStorageError(err))
		}

		target := filepath.Join(dst, filepath.FromSlash(hdr.Name))
		if target == dst || !validators.IsWithin(dst, target) {
			return fmt.Errorf("%w: entry %q escapes the vault root", ErrInvalidArchive, hdr.Name)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err = os.MkdirAll(target, store.DirPerm); err != nil {
				return err
			}
		case tar.TypeReg:
			if err = os.MkdirAll(filepath.Dir(target), store.DirPerm); err != nil {
				return err
			}
			if err = extractFile(tr, target, hdr.Size); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: entry %q has unsupported type %c", ErrInvalidArchive, hdr.Name, hdr.Typeflag)
		}
	}
}

func extractFile(r io.Reader, path string, size int64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, store.FilePerm)
	if err != nil {
		return err
	}
	if _, err = io.CopyN(f, r, size); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrInvalidArchive, mapStorageError(err))
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// swapDir moves staging to root. An existing root is moved aside first and
// put back when the swap fails.
func swapDir(root, staging string) error {
	old := ""
	if _, err := os.Lstat(root); err == nil {
		old = staging + ".old"
		if err = os.Rename(root, old); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.Rename(staging, root); err != nil {
		if old != "" {
			err = errors.Join(err, os.Rename(old, root))
		}
		return err
	}
	if old != "" {
		return os.RemoveAll(old)
	}
	return nil
}

// List returns the archives of profileID, newest first.
func (b *vaultBackup) List(ctx context.Context, profileID string) ([]models.BackupInfo, error) {
	var backups []models.BackupInfo
	objects := b.api.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{
		Prefix:    profileID + "/",
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("list backups: %w", mapStorageError(obj.Err))
		}
		if !strings.HasSuffix(obj.Key, archiveSuffix) {
			continue
		}
		backups = append(backups, models.BackupInfo{
			ProfileID: profileID,
			ObjectKey: obj.Key,
			Size:      obj.Size,
			CreatedAt: obj.LastModified,
		})
	}
	slices.SortFunc(backups, func(a, b models.BackupInfo) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return backups, nil
}
