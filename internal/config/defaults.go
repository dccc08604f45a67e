package config

import "time"

// Default values applied to every field left empty by all other sources.
const (
	DefaultTokenIssuer      = "go-pass-vault"
	DefaultTokenDuration    = 7 * 24 * time.Hour
	DefaultVersion          = "1.0.0"
	DefaultLogLevel         = "debug"
	DefaultDBDriver         = "pgx"
	DefaultHTTPAddress      = "localhost:3001"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultAuthRequests     = 5
	DefaultAPIRequests      = 100
	DefaultRateLimitWindow  = 15 * time.Minute
	DefaultAdapterTimeout   = 15 * time.Second
	DefaultArgonTime        = 1
	DefaultArgonMemory      = 64 * 1024
	DefaultArgonThreads     = 4
	DefaultClipboardTTL     = 30 * time.Second
	DefaultGeneratorLength  = 16
	defaultAllowedOriginAll = "*"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDBDriver},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{defaultAllowedOriginAll},
		},
		RateLimit: RateLimit{
			AuthRequests: DefaultAuthRequests,
			APIRequests:  DefaultAPIRequests,
			Window:       DefaultRateLimitWindow,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Crypto: Crypto{
			ArgonTime:    DefaultArgonTime,
			ArgonMemory:  DefaultArgonMemory,
			ArgonThreads: DefaultArgonThreads,
		},
		Client: Client{
			ClipboardTTL:    DefaultClipboardTTL,
			GeneratorLength: DefaultGeneratorLength,
		},
	}
}
