package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidProfileID   = errors.New("invalid profile ID")
	ErrInvalidFolderID    = errors.New("invalid folder ID")
	ErrRelativePath       = errors.New("folder path must be absolute")
	ErrFilesystemRoot     = errors.New("filesystem root cannot be locked")
	ErrPathOutsideRoots   = errors.New("folder path is outside the allowed roots")
	ErrPathInsideVault    = errors.New("folder path overlaps the vault root")
	ErrInvalidUnlockMode  = errors.New("invalid unlock mode")
	ErrInvalidTrigger     = errors.New("invalid unlock trigger")
	ErrInvalidPathControl = errors.New("folder path contains control characters")
)
