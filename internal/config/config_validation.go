// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Happy Deal Transit

package config

// validateServer checks that the final merged [StructuredConfig] satisfies
// the invariants the backend needs before it starts serving.
//
// The token sign key is the only setting without a fallback default: it is a
// secret and must always come from the environment, a flag, or the JSON file.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.APIBaseURL == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
