package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/phantom-vault/internal/app"
	"github.com/MKhiriev/phantom-vault/internal/crypto"
	"github.com/MKhiriev/phantom-vault/internal/store"
	"github.com/MKhiriev/phantom-vault/internal/validators"
	"github.com/MKhiriev/phantom-vault/models"
)

var errorKindMap = map[error]models.ErrorKind{
	ErrInvalidMasterKey: models.ErrorKindAuth,
	ErrEmptyMasterKey:   models.ErrorKindAuth,

	ErrLockTimeout:           models.ErrorKindConcurrency,
	context.Canceled:         models.ErrorKindConcurrency,
	context.DeadlineExceeded: models.ErrorKindConcurrency,

	ErrIntegrity:               models.ErrorKindIntegrity,
	ErrOriginalPathMissing:     models.ErrorKindIntegrity,
	crypto.ErrChecksumMismatch: models.ErrorKindIntegrity,
	crypto.ErrInvalidChecksum:  models.ErrorKindIntegrity,
	store.ErrCorruptedDocument: models.ErrorKindIntegrity,

	ErrVaultNotFound:         models.ErrorKindValidation,
	ErrVaultExists:           models.ErrorKindValidation,
	ErrVaultNotEmpty:         models.ErrorKindValidation,
	ErrFolderNotFound:        models.ErrorKindValidation,
	ErrAlreadyTracked:        models.ErrorKindValidation,
	ErrInvalidState:          models.ErrorKindValidation,
	ErrNotADirectory:         models.ErrorKindValidation,
	ErrUnsupportedFile:       models.ErrorKindValidation,
	ErrOriginalPathExists:    models.ErrorKindValidation,
	ErrSessionKeyUnavailable: models.ErrorKindAuth,
	ErrBackupNotConfigured:   models.ErrorKindValidation,

	validators.ErrUnsupportedType:    models.ErrorKindValidation,
	validators.ErrUnknownField:       models.ErrorKindValidation,
	validators.ErrInvalidProfileID:   models.ErrorKindValidation,
	validators.ErrInvalidFolderID:    models.ErrorKindValidation,
	validators.ErrRelativePath:       models.ErrorKindValidation,
	validators.ErrFilesystemRoot:     models.ErrorKindValidation,
	validators.ErrPathOutsideRoots:   models.ErrorKindValidation,
	validators.ErrPathInsideVault:    models.ErrorKindValidation,
	validators.ErrInvalidUnlockMode:  models.ErrorKindValidation,
	validators.ErrInvalidTrigger:     models.ErrorKindValidation,
	validators.ErrInvalidPathControl: models.ErrorKindValidation,
}

// errorMessageMap holds the user-facing wording per sentinel. Errors that
// match nothing keep their own text.
var errorMessageMap = map[error]string{
	ErrInvalidMasterKey:      app.MsgInvalidMasterKey,
	ErrEmptyMasterKey:        app.MsgEmptyMasterKey,
	ErrLockTimeout:           app.MsgLockTimeout,
	ErrVaultNotFound:         app.MsgVaultNotFound,
	ErrVaultExists:           app.MsgVaultExists,
	ErrVaultNotEmpty:         app.MsgVaultNotEmpty,
	ErrFolderNotFound:        app.MsgFolderNotFound,
	ErrAlreadyTracked:        app.MsgFolderAlreadyTracked,
	ErrNotADirectory:         app.MsgNotADirectory,
	ErrUnsupportedFile:       app.MsgUnsupportedFile,
	ErrOriginalPathExists:    app.MsgOriginalPathExists,
	ErrOriginalPathMissing:   app.MsgOriginalPathMissing,
	ErrInvalidState:          app.MsgInvalidState,
	ErrSessionKeyUnavailable: app.MsgSessionKeyUnavailable,
	ErrBackupNotConfigured:   app.MsgBackupNotConfigured,
	ErrVersionIsNotSpecified: app.MsgVersionIsNotSpecified,
	context.Canceled:         app.MsgOperationCancelled,
	context.DeadlineExceeded: app.MsgOperationCancelled,
}

// ClassifyError maps err onto the error taxonomy of operation results.
func ClassifyError(err error) models.ErrorKind {
	if err == nil {
		return models.ErrorKindNone
	}
	for target, kind := range errorKindMap {
		if errors.Is(err, target) && kind == models.ErrorKindIntegrity {
			return kind
		}
	}
	for target, kind := range errorKindMap {
		if errors.Is(err, target) {
			return kind
		}
	}
	var ce *crypto.CryptoError
	if errors.As(err, &ce) {
		return models.ErrorKindCrypto
	}
	return models.ErrorKindIO
}

// mapErrorMessage returns the text stored in a result. The user-facing
// wording leads and the cause follows, so logs and results stay greppable.
func mapErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			if err.Error() == target.Error() {
				return msg
			}
			return fmt.Sprintf("%s: %v", msg, err)
		}
	}
	switch ClassifyError(err) {
	case models.ErrorKindIntegrity:
		return fmt.Sprintf("%s: %v", app.MsgIntegrityViolation, err)
	case models.ErrorKindCrypto:
		return fmt.Sprintf("%s: %v", app.MsgCryptoFailure, err)
	case models.ErrorKindValidation:
		return fmt.Sprintf("%s: %v", app.MsgInvalidDataProvided, err)
	case models.ErrorKindIO:
		return fmt.Sprintf("%s: %v", app.MsgIOError, err)
	}
	return err.Error()
}
