// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The server's own message, when present, is kept in the text so the
// UI can show it.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.ServerMessage(err)

	switch {
	case errors.Is(err, adapter.ErrNotAuthenticated):
		return ErrNotLoggedIn

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return withMessage(ErrSessionExpired, msg)

	case errors.Is(err, adapter.ErrNotFound):
		return withMessage(ErrCredentialNotFound, msg)

	case errors.Is(err, adapter.ErrTooManyRequests):
		return withMessage(ErrRateLimited, msg)

	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		return withMessage(ErrServerRejected, msg)
	}

	return err
}

// mapAuthError is mapAdapterError for register and login, where 401 means
// wrong credentials rather than an expired session.
func mapAuthError(err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return withMessage(ErrWrongCredentials, adapter.ServerMessage(err))
	}
	return mapAdapterError(err)
}

func withMessage(sentinel error, msg string) error {
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// UserMessage is the text the UI shows for err: the server's own message
// when there is one, the error text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := adapter.ServerMessage(err); msg != "" {
		return msg
	}
	return err.Error()
}
