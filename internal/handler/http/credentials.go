package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	credentials, err := h.services.CredentialService.ListCredentials(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "error listing credentials")
		return
	}

	_, _ = utils.WriteJSON(w, models.CredentialListResponse{
		Count:     len(credentials),
		Passwords: credentials,
	}, http.StatusOK)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := credentialID(r)
	if err != nil {
		writeServiceError(w, r, err, "bad credential id")
		return
	}

	credential, err := h.services.CredentialService.GetCredential(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, r, err, "error getting credential")
		return
	}

	_, _ = utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	req, ok := decodeCredentialRequest(w, r)
	if !ok {
		return
	}

	created, err := h.services.CredentialService.CreateCredential(r.Context(), req.ToCredential(0, userID))
	if err != nil {
		writeServiceError(w, r, err, "error creating credential")
		return
	}

	_, _ = utils.WriteJSON(w, models.CredentialResponse{
		Message:  app.MsgCredentialCreated,
		Password: created,
	}, http.StatusCreated)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := credentialID(r)
	if err != nil {
		writeServiceError(w, r, err, "bad credential id")
		return
	}

	req, ok := decodeCredentialRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.services.CredentialService.UpdateCredential(r.Context(), req.ToCredential(id, userID))
	if err != nil {
		writeServiceError(w, r, err, "error updating credential")
		return
	}

	_, _ = utils.WriteJSON(w, models.CredentialResponse{
		Message:  app.MsgCredentialUpdated,
		Password: updated,
	}, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := credentialID(r)
	if err != nil {
		writeServiceError(w, r, err, "bad credential id")
		return
	}

	if err = h.services.CredentialService.DeleteCredential(r.Context(), id, userID); err != nil {
		writeServiceError(w, r, err, "error deleting credential")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgCredentialDeleted}, http.StatusOK)
}

func credentialID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidCredentialID
	}
	return id, nil
}

func decodeCredentialRequest(w http.ResponseWriter, r *http.Request) (models.CredentialRequest, bool) {
	var req models.CredentialRequest
	if !decodeJSON(w, r, &req) {
		return models.CredentialRequest{}, false
	}
	return req, true
}
