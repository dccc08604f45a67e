package keyholder

import "errors"

var (
	// ErrEmptyMasterKey is returned by SetKey for an empty secret.
	ErrEmptyMasterKey = errors.New("master key cannot be empty")
	// ErrMasterKeyTooShort is returned by SetKey for a secret shorter than
	// [MinKeyLength] characters.
	ErrMasterKeyTooShort = errors.New("Master key must be at least 8 characters long")

	// ErrSlotNotFound is returned by a SessionStore for a slot that holds no value.
	ErrSlotNotFound = errors.New("session slot not found")
	// ErrInvalidSlotName is returned for slot names that are empty or contain path elements.
	ErrInvalidSlotName = errors.New("invalid session slot name")
)
