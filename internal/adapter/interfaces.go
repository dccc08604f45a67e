// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the vault client and
// the go-pass-vault server.
//
// The primary abstraction is [VaultAdapter], which decouples the client
// services from the REST protocol. Only ciphertext ever crosses this
// boundary: credential requests carry the encrypted password as an opaque
// string produced by the client cipher engine.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// VaultAdapter defines communication with the go-pass-vault server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type VaultAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token logs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ListCredentials returns every record of the authenticated user, newest
	// first.
	ListCredentials(ctx context.Context) ([]models.Credential, error)

	// GetCredential returns one record or [ErrNotFound].
	GetCredential(ctx context.Context, id int64) (models.Credential, error)

	// CreateCredential stores a new record and returns it as persisted.
	CreateCredential(ctx context.Context, req models.CredentialRequest) (models.Credential, error)

	// UpdateCredential replaces the record id and returns it as persisted.
	UpdateCredential(ctx context.Context, id int64, req models.CredentialRequest) (models.Credential, error)

	// DeleteCredential removes the record id.
	DeleteCredential(ctx context.Context, id int64) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
