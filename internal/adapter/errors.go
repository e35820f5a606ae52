package adapter

import "errors"

var (
	ErrBackupNotFound  = errors.New("backup archive not found")
	ErrBucketNotFound  = errors.New("backup bucket not found")
	ErrAccessDenied    = errors.New("backup storage access denied")
	ErrInvalidArchive  = errors.New("backup archive is malformed")
	ErrForeignArchive  = errors.New("backup archive belongs to another profile")
	ErrInvalidEndpoint = errors.New("backup endpoint is not configured")
)
