// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault server and client. It aggregates all sub-configurations and
// is populated by merging values from environment variables (with an
// optional .env file), command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the database driver and connection string.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit holds per-IP request budgets.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Adapter holds the client's view of the server address.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Crypto holds the Argon2id cost parameters of the cipher engine.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Client holds client-only settings (session directory, clipboard, UI).
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT remains valid (e.g. "168h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via GET / and GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name passed to sql.Open.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS allow-list (comma separated in env).
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// RateLimit holds per-IP request budgets. Each budget refills evenly over
// Window.
type RateLimit struct {
	// AuthRequests is the budget for register and login.
	// Env: RATE_LIMIT_AUTH_REQUESTS
	AuthRequests int `env:"AUTH_REQUESTS"`

	// APIRequests is the budget for every /api route.
	// Env: RATE_LIMIT_API_REQUESTS
	APIRequests int `env:"API_REQUESTS"`

	// Window is the refill period of both budgets.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`
}

// Adapter holds the address of the vault server as seen by the client.
type Adapter struct {
	// HTTPAddress is the server base address ("host:port" or URL).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Crypto holds the Argon2id cost parameters used when a master secret is
// stretched into an encryption key.
type Crypto struct {
	// Env: CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`
	// ArgonMemory is expressed in KiB.
	// Env: CRYPTO_ARGON_MEMORY
	ArgonMemory uint32 `env:"ARGON_MEMORY"`
	// Env: CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
}

// Client holds settings used only by the vault client.
type Client struct {
	// SessionDir is where the session-scoped slots live. Empty means a
	// per-login-session directory under the user runtime dir.
	// Env: CLIENT_SESSION_DIR
	SessionDir string `env:"SESSION_DIR"`

	// ClipboardTTL is how long a copied password stays in the clipboard.
	// Env: CLIENT_CLIPBOARD_TTL
	ClipboardTTL time.Duration `env:"CLIPBOARD_TTL"`

	// GeneratorLength is the default generated password length.
	// Env: CLIENT_GENERATOR_LENGTH
	GeneratorLength int `env:"GENERATOR_LENGTH"`

	// LogFile is the client log destination.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the environment (after loading .env), command-line flags, an optional
// JSON file and the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return cfg, nil
}
