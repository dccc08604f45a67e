// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_VERSION":        "2.0.0",
		"APP_LOG_LEVEL":      "warn",

		"SERVER_ADDRESS":         "localhost:3001",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_ALLOWED_ORIGINS": "http://a.test,http://b.test",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:vault.db",

		"RATE_LIMIT_AUTH_REQUESTS": "5",
		"RATE_LIMIT_API_REQUESTS":  "100",
		"RATE_LIMIT_WINDOW":        "15m",

		"ADAPTER_ADDRESS":         "http://localhost:3001",
		"ADAPTER_REQUEST_TIMEOUT": "10s",

		"CRYPTO_ARGON_TIME":    "2",
		"CRYPTO_ARGON_MEMORY":  "32768",
		"CRYPTO_ARGON_THREADS": "2",

		"CLIENT_SESSION_DIR":      "/run/user/1000/vault",
		"CLIENT_CLIPBOARD_TTL":    "45s",
		"CLIENT_GENERATOR_LENGTH": "24",
		"CLIENT_LOG_FILE":         "/tmp/vault.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)

	assert.Equal(t, "localhost:3001", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:vault.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 5, cfg.RateLimit.AuthRequests)
	assert.Equal(t, 100, cfg.RateLimit.APIRequests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)

	assert.Equal(t, "http://localhost:3001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, uint32(2), cfg.Crypto.ArgonTime)
	assert.Equal(t, uint32(32768), cfg.Crypto.ArgonMemory)
	assert.Equal(t, uint8(2), cfg.Crypto.ArgonThreads)

	assert.Equal(t, "/run/user/1000/vault", cfg.Client.SessionDir)
	assert.Equal(t, 45*time.Second, cfg.Client.ClipboardTTL)
	assert.Equal(t, 24, cfg.Client.GeneratorLength)
	assert.Equal(t, "/tmp/vault.log", cfg.Client.LogFile)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:3001",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:3001", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "forever"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_ISSUER=from-file\nAPP_VERSION=9.9.9\n"), 0o600))

	t.Setenv("APP_TOKEN_ISSUER", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("APP_VERSION") })

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "from-env", os.Getenv("APP_TOKEN_ISSUER"))
	assert.Equal(t, "9.9.9", os.Getenv("APP_VERSION"))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER", "APP_TOKEN_DURATION", "APP_VERSION", "APP_LOG_LEVEL",
		"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_ALLOWED_ORIGINS",
		"STORAGE_DB_DRIVER", "STORAGE_DB_DATABASE_URI",
		"RATE_LIMIT_AUTH_REQUESTS", "RATE_LIMIT_API_REQUESTS", "RATE_LIMIT_WINDOW",
		"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
		"CRYPTO_ARGON_TIME", "CRYPTO_ARGON_MEMORY", "CRYPTO_ARGON_THREADS",
		"CLIENT_SESSION_DIR", "CLIENT_CLIPBOARD_TTL", "CLIENT_GENERATOR_LENGTH", "CLIENT_LOG_FILE",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
			require.NoError(t, os.Unsetenv(k))
		}
	}
}
