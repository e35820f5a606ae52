package validators

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/phantom-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldProfileID targets the profile identifier. Profile ids name a
	// directory under the vault root, so they are restricted to a portable
	// character set.
	FieldProfileID = "profile_id"

	// FieldFolderPath targets the absolute path of the folder to lock.
	FieldFolderPath = "folder_path"

	// FieldFolderID targets the vault folder handle of an unlock request.
	FieldFolderID = "folder_id"

	// FieldMode targets the unlock lifetime.
	FieldMode = "mode"

	// FieldTrigger targets the unlock trigger. An empty trigger is allowed.
	FieldTrigger = "trigger"
)

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// VaultRequestValidator implements Validator for LockRequest and
// UnlockRequest. Lock paths are checked lexically: they must be absolute,
// must not overlap the vault root in either direction and, when allowed
// roots are configured, must live strictly inside one of them.
type VaultRequestValidator struct {
	vaultRoot    string
	allowedRoots []string
}

// NewVaultRequestValidator constructs a validator for the given vault root
// and allowed lock roots.
func NewVaultRequestValidator(vaultRoot string, allowedRoots []string) Validator {
	roots := make([]string, 0, len(allowedRoots))
	for _, r := range allowedRoots {
		roots = append(roots, filepath.Clean(r))
	}
	return &VaultRequestValidator{
		vaultRoot:    filepath.Clean(vaultRoot),
		allowedRoots: roots,
	}
}

func (v *VaultRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LockRequest:
		return v.validateLockRequest(value, fields...)
	case *models.LockRequest:
		return v.validateLockRequest(*value, fields...)

	case models.UnlockRequest:
		return v.validateUnlockRequest(value, fields...)
	case *models.UnlockRequest:
		return v.validateUnlockRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultRequestValidator) validateLockRequest(request models.LockRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileID, FieldFolderPath}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileID:
			if err := ValidateProfileID(request.ProfileID); err != nil {
				return err
			}
		case FieldFolderPath:
			if err := v.validateFolderPath(request.FolderPath); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultRequestValidator) validateUnlockRequest(request models.UnlockRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileID, FieldFolderID, FieldMode, FieldTrigger}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileID:
			if err := ValidateProfileID(request.ProfileID); err != nil {
				return err
			}
		case FieldFolderID:
			if strings.TrimSpace(request.FolderID) == "" || strings.ContainsAny(request.FolderID, "/\\\x00") {
				return ErrInvalidFolderID
			}
		case FieldMode:
			if !request.Mode.Valid() {
				return ErrInvalidUnlockMode
			}
		case FieldTrigger:
			if request.Trigger != "" && !request.Trigger.Valid() {
				return ErrInvalidTrigger
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultRequestValidator) validateFolderPath(path string) error {
	if strings.ContainsAny(path, "\x00\n\r") {
		return ErrInvalidPathControl
	}
	if !filepath.IsAbs(path) {
		return ErrRelativePath
	}
	clean := filepath.Clean(path)
	if clean == string(filepath.Separator) {
		return ErrFilesystemRoot
	}
	if v.vaultRoot != "" && (IsWithin(v.vaultRoot, clean) || IsWithin(clean, v.vaultRoot)) {
		return ErrPathInsideVault
	}
	if len(v.allowedRoots) == 0 {
		return nil
	}
	for _, root := range v.allowedRoots {
		if clean != root && IsWithin(root, clean) {
			return nil
		}
	}
	return ErrPathOutsideRoots
}

// ValidateProfileID reports ErrInvalidProfileID unless id is 1 to 64
// characters of [A-Za-z0-9_-].
func ValidateProfileID(id string) error {
	if !profileIDPattern.MatchString(id) {
		return ErrInvalidProfileID
	}
	return nil
}

// IsWithin reports whether path equals root or lies below it. Both are
// expected to be clean absolute paths.
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
