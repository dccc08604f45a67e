package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	credentialService := NewCredentialValidationService(validator).
		Wrap(NewCredentialService(storages.CredentialRepository, logger))

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			crypto.NewPasswordHasher(crypto.ParamsFromConfig(cfg.Crypto)),
			validator,
			cfg.App,
			logger,
		),
		CredentialService: credentialService,
		AppInfoService:    appInfoService,
	}, nil
}
