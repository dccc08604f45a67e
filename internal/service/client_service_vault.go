// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/keyholder"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultDeps groups the collaborators of the vault record flow.
type VaultDeps struct {
	Adapter   adapter.VaultAdapter
	Cipher    crypto.Cipher
	KeyHolder keyholder.KeyHolder
	Generator generator.Generator
	Validator validators.Validator
	Clipboard ClipboardCopier
	Auth      ClientAuthService
}

type vaultService struct {
	adapter   adapter.VaultAdapter
	cipher    crypto.Cipher
	keyHolder keyholder.KeyHolder
	generator generator.Generator
	validator validators.Validator
	clipboard ClipboardCopier
	auth      ClientAuthService

	prompterMu sync.RWMutex
	prompter   keyholder.Prompter

	// records is the last loaded list, revealed the transient reveal state.
	// Neither survives List or Logout.
	mu       sync.Mutex
	records  map[int64]models.Credential
	revealed map[int64]models.Plaintext

	logger *logger.Logger
}

func NewVaultService(deps VaultDeps, logger *logger.Logger) VaultService {
	return &vaultService{
		adapter:   deps.Adapter,
		cipher:    deps.Cipher,
		keyHolder: deps.KeyHolder,
		generator: deps.Generator,
		validator: deps.Validator,
		clipboard: deps.Clipboard,
		auth:      deps.Auth,
		records:   make(map[int64]models.Credential),
		revealed:  make(map[int64]models.Plaintext),
		logger:    logger,
	}
}

func (v *vaultService) SetPrompter(prompter keyholder.Prompter) {
	v.prompterMu.Lock()
	defer v.prompterMu.Unlock()
	v.prompter = prompter
}

// List implements VaultService.
func (v *vaultService) List(ctx context.Context) ([]models.Credential, error) {
	credentials, err := v.adapter.ListCredentials(ctx)
	if err != nil {
		return nil, v.adapterError(ctx, "List", err)
	}

	v.mu.Lock()
	clear(v.revealed)
	clear(v.records)
	for _, c := range credentials {
		v.records[c.ID] = c
	}
	v.mu.Unlock()

	return credentials, nil
}

// Save implements VaultService. Validation runs before the key is requested,
// and nothing is sent when encryption fails.
func (v *vaultService) Save(ctx context.Context, draft models.CredentialDraft) (models.Credential, error) {
	if err := v.validateDraft(ctx, draft); err != nil {
		return models.Credential{}, err
	}
	if draft.Password == "" {
		return models.Credential{}, ErrPasswordEmpty
	}

	encrypted, err := v.encrypt(ctx, draft.Password)
	if err != nil {
		return models.Credential{}, err
	}

	created, err := v.adapter.CreateCredential(ctx, draftRequest(draft, encrypted))
	if err != nil {
		return models.Credential{}, v.adapterError(ctx, "Save", err)
	}

	v.mu.Lock()
	v.records[created.ID] = created
	v.mu.Unlock()

	v.logger.Info().Str("func", "*vaultService.Save").Int64("id", created.ID).Str("site_name", created.SiteName).Msg("credential saved")
	return created, nil
}

// Edit implements VaultService.
func (v *vaultService) Edit(ctx context.Context, existing models.Credential, draft models.CredentialDraft) (models.Credential, error) {
	if err := v.validateDraft(ctx, draft); err != nil {
		return models.Credential{}, err
	}

	encrypted := existing.EncryptedPassword
	if draft.Password != "" {
		var err error
		if encrypted, err = v.encrypt(ctx, draft.Password); err != nil {
			return models.Credential{}, err
		}
	}

	updated, err := v.adapter.UpdateCredential(ctx, existing.ID, draftRequest(draft, encrypted))
	if err != nil {
		return models.Credential{}, v.adapterError(ctx, "Edit", err)
	}

	v.mu.Lock()
	v.records[updated.ID] = updated
	if draft.Password != "" {
		delete(v.revealed, updated.ID)
	}
	v.mu.Unlock()

	v.logger.Info().Str("func", "*vaultService.Edit").Int64("id", updated.ID).Bool("password_changed", draft.Password != "").Msg("credential updated")
	return updated, nil
}

// Reveal implements VaultService. The key is obtained before the record is
// looked up, so a cancelled prompt never reaches the network or the cipher.
func (v *vaultService) Reveal(ctx context.Context, id int64) (models.Plaintext, error) {
	plain, err := v.decrypt(ctx, "*vaultService.Reveal", id)
	if err != nil {
		return "", err
	}

	v.mu.Lock()
	v.revealed[id] = plain
	v.mu.Unlock()

	return plain, nil
}

// decrypt returns the plaintext of record id without touching the revealed
// set.
func (v *vaultService) decrypt(ctx context.Context, caller string, id int64) (models.Plaintext, error) {
	key, err := v.requireKey(ctx)
	if err != nil {
		return "", err
	}

	record, err := v.record(ctx, id)
	if err != nil {
		return "", err
	}

	plain, err := v.cipher.Decrypt(record.EncryptedPassword, key)
	if err != nil {
		v.logger.Warn().Str("func", caller).Int64("id", id).Err(err).Msg("decryption failed")
		return "", err
	}
	return plain, nil
}

func (v *vaultService) Hide(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.revealed, id)
}

func (v *vaultService) Revealed(id int64) (models.Plaintext, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	plain, ok := v.revealed[id]
	return plain, ok
}

func (v *vaultService) Dismiss() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.revealed)
}

// Delete implements VaultService.
func (v *vaultService) Delete(ctx context.Context, id int64) error {
	if err := v.adapter.DeleteCredential(ctx, id); err != nil {
		return v.adapterError(ctx, "Delete", err)
	}

	v.mu.Lock()
	delete(v.revealed, id)
	delete(v.records, id)
	v.mu.Unlock()

	v.logger.Info().Str("func", "*vaultService.Delete").Int64("id", id).Msg("credential deleted")
	return nil
}

// Copy implements VaultService. An already revealed password is copied
// without decrypting again. A hidden one is decrypted and stays hidden.
func (v *vaultService) Copy(ctx context.Context, id int64) error {
	plain, ok := v.Revealed(id)
	if !ok {
		var err error
		if plain, err = v.decrypt(ctx, "*vaultService.Copy", id); err != nil {
			return err
		}
	}

	if err := v.clipboard.Copy(string(plain)); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardFailed, err)
	}

	v.logger.Debug().Str("func", "*vaultService.Copy").Int64("id", id).Msg("password copied to clipboard")
	return nil
}

func (v *vaultService) Generate(length int) (models.Plaintext, error) {
	if length == 0 {
		return v.generator.GenerateDefault()
	}
	return v.generator.Generate(length)
}

func (v *vaultService) Evaluate(candidate string) strength.Result {
	return strength.Evaluate(candidate)
}

// Logout implements VaultService.
func (v *vaultService) Logout(ctx context.Context) error {
	v.mu.Lock()
	clear(v.revealed)
	clear(v.records)
	v.mu.Unlock()

	return v.auth.Logout(ctx)
}

func (v *vaultService) validateDraft(ctx context.Context, draft models.CredentialDraft) error {
	if err := v.validator.Validate(ctx, draft); err != nil {
		if errors.Is(err, validators.ErrSiteNameEmpty) {
			return ErrSiteNameEmpty
		}
		return err
	}
	return nil
}

func (v *vaultService) encrypt(ctx context.Context, plain models.Plaintext) (models.CipherText, error) {
	key, err := v.requireKey(ctx)
	if err != nil {
		return "", err
	}

	encrypted, err := v.cipher.Encrypt(plain, key)
	if err != nil {
		v.logger.Err(err).Str("func", "*vaultService.encrypt").Msg("encryption failed, nothing is sent")
		if !errors.Is(err, crypto.ErrEncryptionFailed) {
			err = fmt.Errorf("%w: %w", crypto.ErrEncryptionFailed, err)
		}
		return "", err
	}

	return encrypted, nil
}

// requireKey returns the master secret, asking the prompter once when the
// holder is Unset.
func (v *vaultService) requireKey(ctx context.Context) (models.MasterSecret, error) {
	if key, ok := v.keyHolder.GetKey(); ok {
		return key, nil
	}

	v.prompterMu.RLock()
	prompter := v.prompter
	v.prompterMu.RUnlock()
	if prompter == nil {
		return "", fmt.Errorf("%w: %w", ErrMasterKeyRequired, ErrNoPrompter)
	}

	secret, err := prompter.PromptKey(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMasterKeyRequired, err)
	}
	if err = v.keyHolder.SetKey(secret); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMasterKeyRequired, err)
	}

	key, ok := v.keyHolder.GetKey()
	if !ok {
		return "", ErrMasterKeyRequired
	}
	return key, nil
}

func (v *vaultService) record(ctx context.Context, id int64) (models.Credential, error) {
	v.mu.Lock()
	record, ok := v.records[id]
	v.mu.Unlock()
	if ok {
		return record, nil
	}

	record, err := v.adapter.GetCredential(ctx, id)
	if err != nil {
		return models.Credential{}, v.adapterError(ctx, "Reveal", err)
	}

	v.mu.Lock()
	v.records[id] = record
	v.mu.Unlock()

	return record, nil
}

// adapterError maps err and drops a token the server no longer accepts.
func (v *vaultService) adapterError(ctx context.Context, op string, err error) error {
	mapped := mapAdapterError(err)
	v.logger.Err(err).Str("func", "*vaultService."+op).Msg("server request failed")

	if errors.Is(mapped, ErrSessionExpired) {
		if forgetErr := v.auth.ForgetToken(ctx); forgetErr != nil {
			v.logger.Err(forgetErr).Str("func", "*vaultService."+op).Msg("error dropping rejected token")
		}
	}

	return mapped
}

func draftRequest(draft models.CredentialDraft, encrypted models.CipherText) models.CredentialRequest {
	return models.CredentialRequest{
		SiteName:          draft.SiteName,
		SiteURL:           models.StringPtr(draft.SiteURL),
		Username:          models.StringPtr(draft.Username),
		EncryptedPassword: encrypted,
	}
}
