// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the vault engine to storage outside the machine.
//
// The package ships one adapter, [VaultBackup], which archives a profile
// vault directory into an S3-compatible bucket and restores it. The vault
// content is already encrypted, so archives are plain tar streams.
//
// Object storage failures are mapped to the sentinel values in errors.go by
// mapStorageError so that callers can use [errors.Is] without knowing the
// S3 error codes.
package adapter

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ObjectStorageAPI is the subset of the MinIO client used by the backup
// adapter. GetObject returns a plain reader so that tests can serve archives
// without a server.
type ObjectStorageAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}
