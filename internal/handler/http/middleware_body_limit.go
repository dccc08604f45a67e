package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// maxBodyBytes caps request bodies both on the wire and after gzip
// decompression.
const maxBodyBytes int64 = 100 << 10

// withBodyLimit caps the raw request body. Must run before withGZip.
func withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.ContentLength > maxBodyBytes {
			utils.WriteError(w, app.MsgRequestTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		if req.Body != nil {
			req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, req)
	})
}

// decodeJSON reads the request body into dst. It writes 413 for an oversized
// body and 400 for anything else that fails to decode, and reports whether
// the handler may go on.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	log := logger.FromRequest(r)

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Warn().Int64("limit", tooLarge.Limit).Msg("request body too large")
		utils.WriteError(w, app.MsgRequestTooLarge, http.StatusRequestEntityTooLarge)
		return false
	}

	log.Debug().Err(err).Msg("Invalid JSON was passed")
	utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
	return false
}
