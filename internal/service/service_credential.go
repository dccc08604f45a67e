package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// credentialService stores credential records through the repository. The
// owner is always the caller's user id; it comes from the JWT, not from the
// request body.
type credentialService struct {
	repository store.CredentialRepository

	logger *logger.Logger
}

func NewCredentialService(repository store.CredentialRepository, logger *logger.Logger) CredentialService {
	return &credentialService{
		repository: repository,
		logger:     logger,
	}
}

func (s *credentialService) ListCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	credentials, err := s.repository.ListCredentials(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing credentials failed")
		return nil, fmt.Errorf("list credentials: %w", err)
	}

	return credentials, nil
}

func (s *credentialService) GetCredential(ctx context.Context, id, userID int64) (models.Credential, error) {
	credential, err := s.repository.GetCredential(ctx, id, userID)
	if err != nil {
		return models.Credential{}, s.mapStoreError(ctx, err, id, "get")
	}

	return credential, nil
}

func (s *credentialService) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	created, err := s.repository.CreateCredential(ctx, credential)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", credential.UserID).Str("site_name", credential.SiteName).Msg("creating credential failed")
		return models.Credential{}, fmt.Errorf("create credential: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Str("site_name", created.SiteName).Msg("credential created")
	return created, nil
}

func (s *credentialService) UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	updated, err := s.repository.UpdateCredential(ctx, credential)
	if err != nil {
		return models.Credential{}, s.mapStoreError(ctx, err, credential.ID, "update")
	}

	logger.FromContext(ctx).Info().Int64("id", updated.ID).Str("site_name", updated.SiteName).Msg("credential updated")
	return updated, nil
}

func (s *credentialService) DeleteCredential(ctx context.Context, id, userID int64) error {
	if err := s.repository.DeleteCredential(ctx, id, userID); err != nil {
		return s.mapStoreError(ctx, err, id, "delete")
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("credential deleted")
	return nil
}

func (s *credentialService) mapStoreError(ctx context.Context, err error, id int64, op string) error {
	if errors.Is(err, store.ErrCredentialNotFound) {
		return ErrCredentialNotFound
	}

	logger.FromContext(ctx).Err(err).Int64("id", id).Str("op", op).Msg("credential storage failed")
	return fmt.Errorf("%s credential: %w", op, err)
}
