package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// server side
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrUserAlreadyExists       = errors.New("user already exists")
	ErrWrongCredentials        = errors.New("invalid email or password")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrCredentialNotFound      = errors.New("credential not found")
)

// client side
var (
	ErrSiteNameEmpty = validators.ErrSiteNameEmpty
	ErrPasswordEmpty = errors.New("Password cannot be empty")

	ErrMasterKeyRequired = errors.New("master key is required")
	ErrPromptCancelled   = errors.New("master key prompt cancelled")
	ErrNoPrompter        = errors.New("no master key prompt available")

	ErrNotLoggedIn     = errors.New("not logged in")
	ErrSessionExpired  = errors.New("session expired, please log in again")
	ErrRateLimited     = errors.New("too many requests, try again later")
	ErrServerRejected  = errors.New("server rejected the request")
	ErrClipboardFailed = errors.New("clipboard is not available")
)
