package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	pathRoot        = "/"
	pathVersion     = "/api/version"
	pathRegister    = "/api/auth/register"
	pathLogin       = "/api/auth/login"
	pathCredentials = "/api/passwords"
	pathCredential  = "/api/passwords/{id}"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withSecurityHeaders)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(withBodyLimit)
	router.Use(withGZip)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Get(pathRoot, h.root)

	apiLimiter := newIPRateLimiter(h.rateLimit.APIRequests, h.rateLimit.Window)
	authLimiter := newIPRateLimiter(h.rateLimit.AuthRequests, h.rateLimit.Window)

	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(apiLimiter, app.MsgTooManyRequests))

		r.Get(pathVersion, h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit(authLimiter, app.MsgTooManyAuthRequests))
			r.Post(pathRegister, h.register)
			r.Post(pathLogin, h.login)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get(pathCredentials, h.listCredentials)
			r.Post(pathCredentials, h.createCredential)
			r.Get(pathCredential, h.getCredential)
			r.Put(pathCredential, h.updateCredential)
			r.Delete(pathCredential, h.deleteCredential)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
