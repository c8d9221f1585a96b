// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Karpekin

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error wrapping
// one of the sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.Mongo.URI == "" {
		return fmt.Errorf("%w: mongo URI is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Mongo.Database == "" {
		return fmt.Errorf("%w: mongo database name is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.AuthRateLimit < 0 {
		return fmt.Errorf("%w: auth rate limit must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Server.AuthRateLimit > 0 && cfg.Server.AuthRateWindow <= 0 {
		return fmt.Errorf("%w: auth rate window must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.PurgeInterval <= 0 {
		return fmt.Errorf("%w: purge interval must be positive", ErrInvalidWorkerConfigs)
	}

	if cfg.Workers.PurgeRetention <= 0 {
		return fmt.Errorf("%w: purge retention must be positive", ErrInvalidWorkerConfigs)
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		return fmt.Errorf("%w: tracing endpoint is required when tracing is enabled", ErrInvalidTracingConfigs)
	}

	return nil
}
