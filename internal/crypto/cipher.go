// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
	"golang.org/x/crypto/argon2"
)

const (
	blobVersion = 1
	headerSize  = 1 + 4 + 4 + 1
	nonceSize   = 12
	tagSize     = 16
	minBlobSize = headerSize + saltSize + nonceSize + tagSize
)

// aesGCMCipher is the private implementation of [Cipher].
type aesGCMCipher struct {
	params Params
	// rand is the entropy source for salts and nonces.
	rand io.Reader
}

// NewCipher constructs a [Cipher] that stretches master secrets with
// Argon2id using params.
func NewCipher(params Params) Cipher {
	return &aesGCMCipher{
		params: params,
		rand:   rand.Reader,
	}
}

// Encrypt implements [Cipher].
func (c *aesGCMCipher) Encrypt(p models.Plaintext, key models.MasterSecret) (models.CipherText, error) {
	if key == "" {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, ErrEmptyKey)
	}
	if !c.params.valid() {
		return "", fmt.Errorf("%w: invalid argon2 parameters", ErrEncryptionFailed)
	}

	header := make([]byte, headerSize)
	header[0] = blobVersion
	binary.BigEndian.PutUint32(header[1:5], c.params.Time)
	binary.BigEndian.PutUint32(header[5:9], c.params.Memory)
	header[9] = c.params.Threads

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return "", fmt.Errorf("%w: read salt: %w", ErrEncryptionFailed, err)
	}

	derived := deriveKey(key, salt, c.params)
	defer clear(derived)

	gcm, err := newGCM(derived)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	nonce := make([]byte, nonceSize)
	if _, err = io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("%w: read nonce: %w", ErrEncryptionFailed, err)
	}

	blob := make([]byte, 0, minBlobSize+len(p))
	blob = append(blob, header...)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	// the header is authenticated so the parameters cannot be swapped
	blob = gcm.Seal(blob, nonce, []byte(p), header)

	return models.CipherText(base64.StdEncoding.EncodeToString(blob)), nil
}

// Decrypt implements [Cipher].
func (c *aesGCMCipher) Decrypt(ct models.CipherText, key models.MasterSecret) (models.Plaintext, error) {
	if key == "" {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrEmptyKey)
	}

	blob, err := base64.StdEncoding.DecodeString(string(ct))
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrDecryptionFailed, ErrMalformedCipherText, err)
	}
	if len(blob) < minBlobSize {
		return "", fmt.Errorf("%w: %w: blob too short", ErrDecryptionFailed, ErrMalformedCipherText)
	}

	header := blob[:headerSize]
	if header[0] != blobVersion {
		return "", fmt.Errorf("%w: %w: unknown version %d", ErrDecryptionFailed, ErrMalformedCipherText, header[0])
	}
	params := Params{
		Time:    binary.BigEndian.Uint32(header[1:5]),
		Memory:  binary.BigEndian.Uint32(header[5:9]),
		Threads: header[9],
	}
	if !params.valid() {
		return "", fmt.Errorf("%w: %w: invalid argon2 parameters", ErrDecryptionFailed, ErrMalformedCipherText)
	}

	rest := blob[headerSize:]
	salt, nonce, sealed := rest[:saltSize], rest[saltSize:saltSize+nonceSize], rest[saltSize+nonceSize:]

	derived := deriveKey(key, salt, params)
	defer clear(derived)

	gcm, err := newGCM(derived)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	// an error here almost always means a wrong master secret
	plain, err := gcm.Open(nil, nonce, sealed, header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return models.Plaintext(plain), nil
}

func deriveKey(secret models.MasterSecret, salt []byte, p Params) []byte {
	pass := []byte(secret)
	defer clear(pass)

	return argon2.IDKey(pass, salt, p.Time, p.Memory, p.Threads, keySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
