package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CredentialServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// AuthService registers and authenticates users and issues the JWTs that
// guard the credential API.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialService stores opaque credential records per user. It never
// interprets EncryptedPassword.
type CredentialService interface {
	ListCredentials(ctx context.Context, userID int64) ([]models.Credential, error)
	GetCredential(ctx context.Context, id, userID int64) (models.Credential, error)
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	DeleteCredential(ctx context.Context, id, userID int64) error
}

// CredentialServiceWrapper defines middleware composition for CredentialService.
// Implementations wrap an existing CredentialService to add behavior such as
// logging or validating.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService // returns a decorated CredentialService applying additional behavior
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
