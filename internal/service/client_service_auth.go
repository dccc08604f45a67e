package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/keyholder"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientAuthService struct {
	adapter   adapter.VaultAdapter
	sessions  keyholder.SessionStore
	keyHolder keyholder.KeyHolder
	validator validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

// NewClientAuthService wires the account session of the client. sessions
// holds the token slot; keyHolder is cleared on logout.
func NewClientAuthService(
	vaultAdapter adapter.VaultAdapter,
	sessions keyholder.SessionStore,
	keyHolder keyholder.KeyHolder,
	validator validators.Validator,
	logger *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		adapter:   vaultAdapter,
		sessions:  sessions,
		keyHolder: keyHolder,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

// Register implements ClientAuthService. The form is validated locally first
// so obviously incomplete input never reaches the rate-limited endpoint.
func (s *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	resp, err := s.adapter.Register(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Register").Msg("registration failed")
		return models.User{}, mapAuthError(err)
	}

	return s.keepSession(resp)
}

// Login implements ClientAuthService.
func (s *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	resp, err := s.adapter.Login(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("login failed")
		return models.User{}, mapAuthError(err)
	}

	return s.keepSession(resp)
}

func (s *clientAuthService) keepSession(resp models.AuthResponse) (models.User, error) {
	if err := s.sessions.Put(keyholder.SlotToken, resp.Token); err != nil {
		// the adapter still holds the token, only a restart will ask again
		s.logger.Err(err).Str("func", "*clientAuthService.keepSession").Msg("error saving token to session store")
	}

	s.logger.Info().Str("func", "*clientAuthService.keepSession").Int64("user_id", resp.User.UserID).Msg("logged in")
	return resp.User, nil
}

// RestoreSession implements ClientAuthService. Expired tokens are deleted.
func (s *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	token, err := s.sessions.Get(keyholder.SlotToken)
	if errors.Is(err, keyholder.ErrSlotNotFound) {
		return models.User{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.User{}, fmt.Errorf("read token slot: %w", err)
	}

	claims, err := utils.ParseUnverifiedClaims(token)
	if err != nil || claims.ExpiresAt == nil || !claims.ExpiresAt.After(s.now()) {
		s.logger.Info().Str("func", "*clientAuthService.RestoreSession").Msg("saved token is unusable, dropping it")
		_ = s.sessions.Delete(keyholder.SlotToken)
		return models.User{}, ErrNotLoggedIn
	}

	s.adapter.SetToken(token)

	return models.User{UserID: claims.UserID, Username: claims.Username}, nil
}

// ForgetToken implements ClientAuthService.
func (s *clientAuthService) ForgetToken(ctx context.Context) error {
	s.adapter.SetToken("")
	if err := s.sessions.Delete(keyholder.SlotToken); err != nil {
		return fmt.Errorf("delete token slot: %w", err)
	}
	return nil
}

// Logout implements ClientAuthService. Both slots are cleared even if one of
// them fails.
func (s *clientAuthService) Logout(ctx context.Context) error {
	tokenErr := s.ForgetToken(ctx)
	keyErr := s.keyHolder.ClearKey()

	if err := errors.Join(tokenErr, keyErr); err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Logout").Msg("logout left session data behind")
		return err
	}

	s.logger.Info().Str("func", "*clientAuthService.Logout").Msg("logged out")
	return nil
}
