package crypto

import "errors"

var (
	// ErrEncryptionFailed is returned when a value could not be encrypted.
	// The caller must not persist anything.
	ErrEncryptionFailed = errors.New("encryption failed")
	// ErrDecryptionFailed is returned when a blob does not authenticate
	// under the given key.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrMalformedCipherText is returned when a blob cannot be parsed.
	ErrMalformedCipherText = errors.New("malformed cipher text")
	// ErrEmptyKey is returned when an empty master secret is supplied.
	ErrEmptyKey = errors.New("empty master secret")

	// ErrInvalidHash is returned when an encoded password hash cannot be parsed.
	ErrInvalidHash = errors.New("invalid password hash")
	// ErrIncompatibleHashVersion is returned for hashes made by another argon2 version.
	ErrIncompatibleHashVersion = errors.New("incompatible argon2 version")
)
