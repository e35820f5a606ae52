package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid process-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidVaultConfigs indicates invalid engine settings (for example,
	// an empty root directory or too few KDF iterations).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidStorageConfigs indicates invalid journal settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBackupConfigs indicates an enabled backup without endpoint
	// or bucket.
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero maintenance interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidEnv is returned when an environment variable cannot be
	// converted to its field type.
	ErrInvalidEnv = errors.New("invalid environment configuration")
	// ErrInvalidFlags is returned when command-line arguments cannot be
	// parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrUnsupportedConfigFile is returned for a config file extension other
	// than .json, .yaml or .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file type")
)
