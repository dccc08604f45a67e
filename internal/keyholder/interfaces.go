package keyholder

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keyholder_mock.go -package=mock

// KeyHolder owns the master secret for the current session.
//
// State machine: Unset → Set (SetKey or Restore) → Unset (ClearKey).
// The holder does not gate anything itself: callers that encrypt or decrypt
// check State and ask the user for the key first.
type KeyHolder interface {
	// SetKey validates and stores secret in memory and in the session slot.
	// A rejected secret leaves the state unchanged.
	SetKey(secret string) error
	// GetKey returns the secret and true when the state is Set.
	GetKey() (models.MasterSecret, bool)
	// ClearKey wipes the session slot and the in-memory copy.
	ClearKey() error
	// State reports the current key state.
	State() State
	// Restore reads the session slot once at startup.
	Restore() error
}

// SessionStore is a key-value store whose contents live only as long as
// the user's session.
type SessionStore interface {
	// Get returns [ErrSlotNotFound] when the slot is empty.
	Get(slot string) (string, error)
	Put(slot, value string) error
	// Delete is a no-op for an empty slot.
	Delete(slot string) error
}

// Prompter asks the user for the master secret. It is called only when the
// holder is Unset and an operation needs the key. An error aborts that
// operation.
type Prompter interface {
	PromptKey(ctx context.Context) (string, error)
}
