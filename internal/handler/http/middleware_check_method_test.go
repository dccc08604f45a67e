package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"registered method", http.MethodGet, "/items", http.StatusOK},
		{"unregistered method on static route", http.MethodPatch, "/items", http.StatusNotFound},
		{"unregistered method on param route", http.MethodPost, "/items/5", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Get("/items", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
			router.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
			router.NotFound(notFound)
			router.MethodNotAllowed(CheckHTTPMethod(router))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRouter_NotFoundInsteadOf405(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl, nil)
	router := h.Init()

	for _, tc := range []struct{ method, target string }{
		{http.MethodPatch, "/api/passwords"},
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/version"},
		{http.MethodGet, "/api/unknown"},
	} {
		rr := doRequest(t, router, tc.method, tc.target, nil, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.target)
		assert.Equal(t, app.MsgNotFound, errorMessage(t, rr))
	}
}
