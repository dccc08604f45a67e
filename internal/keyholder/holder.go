// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyholder

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Fixed slot names in the session store.
const (
	SlotMasterKey = "masterKey"
	SlotToken     = "token"
)

// MinKeyLength is the minimum number of characters in a master secret.
const MinKeyLength = 8

// State is the key state of a [Holder].
type State int

const (
	Unset State = iota
	Set
)

func (s State) String() string {
	if s == Set {
		return "set"
	}
	return "unset"
}

// Holder is the default [KeyHolder]. It is safe for concurrent use.
type Holder struct {
	mu     sync.RWMutex
	store  SessionStore
	secret models.MasterSecret
	state  State

	logger *logger.Logger
}

// NewHolder returns an Unset holder backed by store.
func NewHolder(store SessionStore, log *logger.Logger) *Holder {
	return &Holder{
		store:  store,
		state:  Unset,
		logger: log,
	}
}

// SetKey implements [KeyHolder].
func (h *Holder) SetKey(secret string) error {
	if err := ValidateKey(secret); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Put(SlotMasterKey, secret); err != nil {
		h.logger.Err(err).Str("func", "*Holder.SetKey").Msg("failed to write master key slot")
		return fmt.Errorf("store master key: %w", err)
	}

	h.secret = models.MasterSecret(secret)
	h.state = Set
	h.logger.Debug().Str("func", "*Holder.SetKey").Msg("master key set")

	return nil
}

// GetKey implements [KeyHolder].
func (h *Holder) GetKey() (models.MasterSecret, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.state != Set {
		return "", false
	}
	return h.secret, true
}

// ClearKey implements [KeyHolder]. The in-memory copy is dropped even when
// the slot cannot be deleted.
func (h *Holder) ClearKey() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.secret = ""
	h.state = Unset

	if err := h.store.Delete(SlotMasterKey); err != nil {
		h.logger.Err(err).Str("func", "*Holder.ClearKey").Msg("failed to delete master key slot")
		return fmt.Errorf("delete master key: %w", err)
	}

	h.logger.Debug().Str("func", "*Holder.ClearKey").Msg("master key cleared")
	return nil
}

// State implements [KeyHolder].
func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}

// Restore implements [KeyHolder]. An empty slot leaves the holder Unset.
// A slot holding an invalid secret is wiped.
func (h *Holder) Restore() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	secret, err := h.store.Get(SlotMasterKey)
	if errors.Is(err, ErrSlotNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read master key: %w", err)
	}

	if err = ValidateKey(secret); err != nil {
		h.logger.Warn().Str("func", "*Holder.Restore").Msg("discarding invalid master key slot")
		return h.store.Delete(SlotMasterKey)
	}

	h.secret = models.MasterSecret(secret)
	h.state = Set
	h.logger.Debug().Str("func", "*Holder.Restore").Msg("master key restored from session")

	return nil
}

// ValidateKey checks a candidate master secret without storing it.
func ValidateKey(secret string) error {
	if secret == "" {
		return ErrEmptyMasterKey
	}
	if utf8.RuneCountInString(secret) < MinKeyLength {
		return ErrMasterKeyTooShort
	}
	return nil
}
