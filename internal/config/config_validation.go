// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// minGeneratorLength mirrors the generator's own lower bound: one character
// of each class.
const minGeneratorLength = 4

// validate checks that the merged server configuration can start the
// service.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return ErrUnsupportedDBDriver
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.RateLimit.AuthRequests <= 0 || cfg.RateLimit.APIRequests <= 0 || cfg.RateLimit.Window <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Crypto.ArgonTime == 0 || cfg.Crypto.ArgonMemory == 0 || cfg.Crypto.ArgonThreads == 0 {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Vault.GeneratorLength < minGeneratorLength || cfg.Vault.ClipboardTTL < 0 {
		return ErrInvalidVaultConfigs
	}

	return nil
}
