package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// CredentialValidationService rejects malformed records before they reach
// the wrapped CredentialService.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService(validator validators.Validator) CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validator,
	}
}

func (v *CredentialValidationService) ListCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	if userID <= 0 {
		return nil, validators.ErrInvalidUserID
	}

	return v.inner.ListCredentials(ctx, userID)
}

func (v *CredentialValidationService) GetCredential(ctx context.Context, id, userID int64) (models.Credential, error) {
	if userID <= 0 {
		return models.Credential{}, validators.ErrInvalidUserID
	}
	if id <= 0 {
		return models.Credential{}, ErrCredentialNotFound
	}

	return v.inner.GetCredential(ctx, id, userID)
}

func (v *CredentialValidationService) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if err := v.validator.Validate(ctx, credential); err != nil {
		return models.Credential{}, fmt.Errorf("credential validation before saving: %w", err)
	}

	return v.inner.CreateCredential(ctx, credential)
}

func (v *CredentialValidationService) UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if err := v.validator.Validate(ctx, credential); err != nil {
		return models.Credential{}, fmt.Errorf("credential validation before updating: %w", err)
	}
	if credential.ID <= 0 {
		return models.Credential{}, ErrCredentialNotFound
	}

	return v.inner.UpdateCredential(ctx, credential)
}

func (v *CredentialValidationService) DeleteCredential(ctx context.Context, id, userID int64) error {
	if userID <= 0 {
		return validators.ErrInvalidUserID
	}
	if id <= 0 {
		return ErrCredentialNotFound
	}

	return v.inner.DeleteCredential(ctx, id, userID)
}

func (v *CredentialValidationService) Wrap(wrapper CredentialService) CredentialService {
	v.inner = wrapper
	return v
}
