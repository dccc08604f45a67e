package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogLevel is the zerolog level name for the client log file.
	LogLevel string
	// LogFile is the client log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSession holds the location of the session-scoped slots.
type ClientSession struct {
	// Dir is the directory holding the master key and token slots.
	Dir string
}

// ClientVault holds settings of the vault record flow.
type ClientVault struct {
	// ClipboardTTL is how long a copied password stays in the clipboard.
	ClipboardTTL time.Duration
	// GeneratorLength is the default generated password length.
	GeneratorLength int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Crypto  Crypto
	Session ClientSession
	Vault   ClientVault
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line flags are owned by the client CLI, so only .env, the
// environment, the JSON file named by CONFIG and the defaults are consulted.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientConfig()

	return clientCfg, clientCfg.validate()
}

// ClientConfig maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.Client.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Crypto: cfg.Crypto,
		Session: ClientSession{
			Dir: cfg.Client.SessionDir,
		},
		Vault: ClientVault{
			ClipboardTTL:    cfg.Client.ClipboardTTL,
			GeneratorLength: cfg.Client.GeneratorLength,
		},
	}
}
