package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-pass-vault",
	TokenDuration: time.Hour,
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(repo, hasher, validators.NewRequestValidator(), testAppConfig, logger.Nop())
	return svc, repo, hasher
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash("pw-12345").Return("$argon2id$hash", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username, "username is trimmed")
			assert.Equal(t, "$argon2id$hash", u.PasswordHash)
			assert.Empty(t, u.Password)
			u.UserID = 1
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "  alice ", Email: "alice@example.com", Password: "pw-12345"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Empty(t, user.PasswordHash, "hash never leaves the service")
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Username: "alice", Email: "alice@example.com"})
	require.ErrorIs(t, err, validators.ErrRegisterFieldsRequired)
}

func TestAuthService_RegisterUser_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Username: "alice", Email: "alice", Password: "pw"})
	require.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_HashFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("rng"))

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.ErrorIs(t, err, ErrPasswordHashingFailed)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	stored := models.User{UserID: 3, Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}

	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)
	hasher.EXPECT().Verify("pw", "hash").Return(true, nil)

	user, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	_, errUnknown := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "pw"})

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{UserID: 1, PasswordHash: "hash"}, nil)
	hasher.EXPECT().Verify("bad", "hash").Return(false, nil)
	_, errWrong := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "bad"})

	require.ErrorIs(t, errUnknown, ErrWrongCredentials)
	require.ErrorIs(t, errWrong, ErrWrongCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com"})
	require.ErrorIs(t, err, validators.ErrLoginFieldsRequired)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 11, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(11), parsed.UserID)
	assert.Equal(t, "alice", parsed.Username)
}

func TestAuthService_ParseToken_ForeignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	other := NewAuthService(repo, hasher, validators.NewRequestValidator(),
		config.App{TokenSignKey: "other-key", TokenIssuer: "go-pass-vault", TokenDuration: time.Hour}, logger.Nop())

	token, err := other.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	expired := NewAuthService(repo, hasher, validators.NewRequestValidator(),
		config.App{TokenSignKey: "test-sign-key", TokenIssuer: "go-pass-vault", TokenDuration: -time.Minute}, logger.Nop())

	token, err := expired.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_NoSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mock.NewMockUserRepository(ctrl), mock.NewMockPasswordHasher(ctrl),
		validators.NewRequestValidator(), config.App{TokenIssuer: "x", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}
