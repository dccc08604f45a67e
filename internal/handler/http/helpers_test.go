package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "good-token"

type handlerMocks struct {
	auth        *mock.MockAuthService
	credentials *mock.MockCredentialService
	appInfo     *mock.MockAppInfoService
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Server: config.Server{
			HTTPAddress:    ":0",
			RequestTimeout: 5 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		RateLimit: config.RateLimit{
			AuthRequests: 1000,
			APIRequests:  1000,
			Window:       time.Minute,
		},
	}
}

// newTestHandler builds a Handler over mocked services with generous rate
// limits.
func newTestHandler(t *testing.T, ctrl *gomock.Controller, cfg *config.StructuredConfig) (*Handler, handlerMocks) {
	t.Helper()

	m := handlerMocks{
		auth:        mock.NewMockAuthService(ctrl),
		credentials: mock.NewMockCredentialService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()

	if cfg == nil {
		cfg = testConfig()
	}

	h := NewHandler(&service.Services{
		AuthService:       m.auth,
		CredentialService: m.credentials,
		AppInfoService:    m.appInfo,
	}, cfg, logger.Nop())

	return h, m
}

// expectValidToken makes testToken authenticate as user 1.
func (m handlerMocks) expectValidToken() {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: 1, Username: "alice"}, nil).AnyTimes()
}

func doRequest(t *testing.T, handler http.Handler, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rr).Error
}
