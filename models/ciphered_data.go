// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

const redacted = "******"

type (
	// CipherText is the encrypted form of a stored password. It is the only
	// password-bearing value that is ever transmitted to the server or
	// written to storage. Its structure is opaque to everything except the
	// cipher engine.
	CipherText string

	// Plaintext is a password in clear form. It exists only in memory
	// between user entry (or generation) and encryption, or between
	// decryption and display.
	Plaintext string

	// MasterSecret is the user-chosen passphrase that keys every encryption
	// of the vault. It never leaves the client.
	MasterSecret string
)

// IsEmpty reports whether c holds no ciphertext.
func (c CipherText) IsEmpty() bool {
	return c == ""
}

// String redacts the value so a Plaintext passed to a logger or a
// formatting verb does not leak. Use string(p) to read the real value.
func (p Plaintext) String() string {
	if p == "" {
		return ""
	}
	return redacted
}

// MarshalJSON redacts the value. Plaintext must never be serialised.
func (p Plaintext) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// String redacts the value.
func (s MasterSecret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// MarshalJSON redacts the value.
func (s MasterSecret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
