// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

var (
	// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
	ErrUserQuit = errors.New("user quit")

	errNoProgram = errors.New("terminal UI is not running")
)

// humanizeError turns an operation error into the line shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return service.UserMessage(err)
}

// needsLogin reports whether err means the user has to log in again.
func needsLogin(err error) bool {
	return errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrNotLoggedIn)
}
