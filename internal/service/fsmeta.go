package service

import (
	"io/fs"

	"github.com/MKhiriev/phantom-vault/models"
)

// restorableMode keeps the permission and special bits that chmod can
// re-apply.
func restorableMode(mode uint32) fs.FileMode {
	return fs.FileMode(mode) & (fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky)
}

// baseAttributes fills the portable part of FileAttributes from info.
func baseAttributes(info fs.FileInfo) models.FileAttributes {
	mtime := info.ModTime()
	return models.FileAttributes{
		Mode:       uint32(info.Mode()),
		CreatedAt:  mtime,
		ModifiedAt: mtime,
		AccessedAt: mtime,
	}
}
