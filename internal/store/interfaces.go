package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A taken username or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] when nothing matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CredentialRepository persists vault records. Every method is scoped to the
// owning user; a record of another user behaves as if it did not exist.
type CredentialRepository interface {
	ListCredentials(ctx context.Context, userID int64) ([]models.Credential, error)
	GetCredential(ctx context.Context, id, userID int64) (models.Credential, error)
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	DeleteCredential(ctx context.Context, id, userID int64) error
}

// ErrorClassificator inspects driver errors of a concrete database backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
