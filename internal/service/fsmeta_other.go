//go:build !linux

package service

import (
	"errors"
	"io/fs"
	"os"

	"github.com/MKhiriev/phantom-vault/models"
)

// captureAttributes records mode and modification time. Ownership, birth
// time and extended attributes are captured on linux only.
func captureAttributes(path string, info fs.FileInfo) (models.FileAttributes, error) {
	return baseAttributes(info), nil
}

func applyAttributes(path string, attrs models.FileAttributes, symlink bool) error {
	if symlink {
		return nil
	}
	var errs []error
	if err := os.Chmod(path, restorableMode(attrs.Mode)); err != nil {
		errs = append(errs, err)
	}
	if err := os.Chtimes(path, attrs.AccessedAt, attrs.ModifiedAt); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
