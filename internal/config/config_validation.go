// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jack Lucas

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
