package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl, nil)

	req := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw-12345"}
	user := models.User{UserID: 1, Username: "alice", Email: "alice@example.com"}

	gomock.InOrder(
		m.auth.EXPECT().RegisterUser(gomock.Any(), req).Return(user, nil),
		m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "jwt"}, nil),
	)

	rr := doRequest(t, h.Init(), http.MethodPost, pathRegister, req, nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer jwt", rr.Header().Get("Authorization"))

	resp := decodeBody[models.AuthResponse](t, rr)
	assert.Equal(t, app.MsgRegistrationSucceeded, resp.Message)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, user.UserID, resp.User.UserID)
	assert.NotContains(t, rr.Body.String(), "password_hash")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing fields", validators.ErrRegisterFieldsRequired, http.StatusBadRequest, app.MsgRegisterFieldsRequired},
		{"invalid email", validators.ErrInvalidEmail, http.StatusBadRequest, app.MsgInvalidEmail},
		{"duplicate", service.ErrUserAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},
		{"storage down", errors.New("db is gone"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h, m := newTestHandler(t, ctrl, nil)

			m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rr := doRequest(t, h.Init(), http.MethodPost, pathRegister, models.RegisterRequest{Username: "alice"}, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rr))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl, nil)

	rr := doRequest(t, h.Init(), http.MethodPost, pathRegister, "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidJSON, errorMessage(t, rr))
}

func TestRegister_TokenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl, nil)

	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rr := doRequest(t, h.Init(), http.MethodPost, pathRegister, models.RegisterRequest{}, nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError, errorMessage(t, rr))
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl, nil)

	req := models.LoginRequest{Email: "alice@example.com", Password: "pw-12345"}
	user := models.User{UserID: 1, Username: "alice"}

	m.auth.EXPECT().Login(gomock.Any(), req).Return(user, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "jwt"}, nil)

	rr := doRequest(t, h.Init(), http.MethodPost, pathLogin, req, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[models.AuthResponse](t, rr)
	assert.Equal(t, app.MsgLoginSucceeded, resp.Message)
	assert.Equal(t, "jwt", resp.Token)
}

func TestLogin_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl, nil)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongCredentials)

	rr := doRequest(t, h.Init(), http.MethodPost, pathLogin, models.LoginRequest{Email: "a@b.c", Password: "x"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgInvalidEmailOrPassword, errorMessage(t, rr))
}

func TestLogin_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl, nil)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, validators.ErrLoginFieldsRequired)

	rr := doRequest(t, h.Init(), http.MethodPost, pathLogin, models.LoginRequest{}, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgLoginFieldsRequired, errorMessage(t, rr))
}
