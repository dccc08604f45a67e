package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// securityHeaders are sent with every response.
var securityHeaders = map[string]string{
	"X-Content-Type-Options":            "nosniff",
	"X-Frame-Options":                   "SAMEORIGIN",
	"X-DNS-Prefetch-Control":            "off",
	"X-Download-Options":                "noopen",
	"X-Permitted-Cross-Domain-Policies": "none",
	"X-XSS-Protection":                  "0",
	"Referrer-Policy":                   "no-referrer",
	"Strict-Transport-Security":         "max-age=15552000; includeSubDomains",
	"Content-Security-Policy":           "default-src 'self'; frame-ancestors 'self'; object-src 'none'",
	"Cross-Origin-Opener-Policy":        "same-origin",
	"Cross-Origin-Resource-Policy":      "same-origin",
	"Cache-Control":                     "no-store",
}

func withSecurityHeaders(next http.Handler) http.Handler {
	for name, value := range securityHeaders {
		next = middleware.SetHeader(name, value)(next)
	}
	return next
}
