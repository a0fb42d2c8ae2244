package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token verification key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
