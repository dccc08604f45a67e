package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is consulted in order; the first matching error wins.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{validators.ErrRegisterFieldsRequired, errorResponse{http.StatusBadRequest, app.MsgRegisterFieldsRequired}},
	{validators.ErrLoginFieldsRequired, errorResponse{http.StatusBadRequest, app.MsgLoginFieldsRequired}},
	{validators.ErrInvalidEmail, errorResponse{http.StatusBadRequest, app.MsgInvalidEmail}},
	{validators.ErrCredentialFieldsRequired, errorResponse{http.StatusBadRequest, app.MsgCredentialFieldsRequired}},
	{validators.ErrFieldTooLong, errorResponse{http.StatusBadRequest, app.MsgFieldTooLong}},
	{validators.ErrInvalidUserID, errorResponse{http.StatusUnauthorized, app.MsgLoginRequired}},

	{service.ErrUserAlreadyExists, errorResponse{http.StatusBadRequest, app.MsgUserAlreadyExists}},
	{service.ErrWrongCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidEmailOrPassword}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusForbidden, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrCredentialNotFound, errorResponse{http.StatusNotFound, app.MsgCredentialNotFound}},
	{ErrInvalidCredentialID, errorResponse{http.StatusNotFound, app.MsgCredentialNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeServiceError answers r with the status and message mapped from err.
// Unmapped errors are logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg(msg)
	}

	utils.WriteError(w, resp.message, resp.status)
}
