// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.App.PasswordSalt == "":
		return fmt.Errorf("%w: empty password salt", ErrInvalidAppConfigs)
	case cfg.App.PasswordHashAlgorithm != "md5" && cfg.App.PasswordHashAlgorithm != "hmac-sha256":
		return fmt.Errorf("%w: unknown password hash algorithm %q", ErrInvalidAppConfigs, cfg.App.PasswordHashAlgorithm)
	case cfg.App.TokenSignKey == "":
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	case cfg.App.TokenIssuer == "":
		return fmt.Errorf("%w: empty token issuer", ErrInvalidAppConfigs)
	case cfg.App.TokenDuration <= 0 || cfg.App.SessionTTL <= 0:
		return fmt.Errorf("%w: token duration and session ttl must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database dsn", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Cache.Address == "" {
		return fmt.Errorf("%w: empty cache address", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: http address and request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}
