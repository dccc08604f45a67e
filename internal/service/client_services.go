package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/keyholder"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

// ClientServices is the service layer of the vault client.
type ClientServices struct {
	AuthService  ClientAuthService
	VaultService VaultService
	KeyHolder    keyholder.KeyHolder
	Adapter      adapter.VaultAdapter
	Workers      *workers.Workers
}

// NewClientServices wires the client service layer from cfg. The session
// store lives under cfg.Session.Dir, or a per-session default when empty.
func NewClientServices(cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	sessionDir := cfg.Session.Dir
	if sessionDir == "" {
		sessionDir = keyholder.DefaultSessionDir()
	}
	sessions, err := keyholder.NewFileSessionStore(sessionDir)
	if err != nil {
		return nil, fmt.Errorf("error creating session store: %w", err)
	}

	vaultAdapter, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating vault adapter: %w", err)
	}

	clipboard := workers.NewClipboardCleaner(workers.SystemClipboard{}, cfg.Vault.ClipboardTTL, logger)

	return newClientServices(sessions, vaultAdapter, crypto.NewCipher(crypto.ParamsFromConfig(cfg.Crypto)),
		generator.NewGenerator(cfg.Vault.GeneratorLength), clipboard, logger), nil
}

func newClientServices(
	sessions keyholder.SessionStore,
	vaultAdapter adapter.VaultAdapter,
	cipher crypto.Cipher,
	gen generator.Generator,
	clipboard *workers.ClipboardCleaner,
	logger *logger.Logger,
) *ClientServices {
	validator := validators.NewRequestValidator()
	keyHolder := keyholder.NewHolder(sessions, logger)
	authService := NewClientAuthService(vaultAdapter, sessions, keyHolder, validator, logger)

	vaultService := NewVaultService(VaultDeps{
		Adapter:   vaultAdapter,
		Cipher:    cipher,
		KeyHolder: keyHolder,
		Generator: gen,
		Validator: validator,
		Clipboard: clipboard,
		Auth:      authService,
	}, logger)

	return &ClientServices{
		AuthService:  authService,
		VaultService: vaultService,
		KeyHolder:    keyHolder,
		Adapter:      vaultAdapter,
		Workers:      workers.NewWorkers(clipboard),
	}
}
