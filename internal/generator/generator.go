// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=generator.go -destination=../mock/generator_mock.go -package=mock

// Character classes. Every generated password holds at least one of each.
const (
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

const (
	DefaultLength = 16
	MinLength     = 4
	MaxLength     = 128
)

var (
	ErrLengthTooShort = fmt.Errorf("password length must be at least %d", MinLength)
	ErrLengthTooLong  = fmt.Errorf("password length must be at most %d", MaxLength)
)

var classes = []string{Upper, Lower, Digits, Symbols}

const all = Upper + Lower + Digits + Symbols

// Generator produces random passwords.
type Generator interface {
	// Generate returns a password of exactly length characters.
	Generate(length int) (models.Plaintext, error)
	// GenerateDefault returns a password of the configured default length.
	GenerateDefault() (models.Plaintext, error)
}

type passwordGenerator struct {
	rand          io.Reader
	defaultLength int
}

// NewGenerator returns a Generator drawing from crypto/rand. A
// defaultLength of zero selects [DefaultLength].
func NewGenerator(defaultLength int) Generator {
	if defaultLength == 0 {
		defaultLength = DefaultLength
	}
	return &passwordGenerator{
		rand:          rand.Reader,
		defaultLength: defaultLength,
	}
}

func (g *passwordGenerator) GenerateDefault() (models.Plaintext, error) {
	return g.Generate(g.defaultLength)
}

// Generate picks one character of every class, fills the rest uniformly
// from the union of the classes and shuffles the result.
func (g *passwordGenerator) Generate(length int) (models.Plaintext, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}
	if length > MaxLength {
		return "", ErrLengthTooLong
	}

	password := make([]byte, 0, length)
	for _, set := range classes {
		ch, err := g.pickRandomChar(set)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	for len(password) < length {
		ch, err := g.pickRandomChar(all)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}

	return models.Plaintext(password), nil
}

func (g *passwordGenerator) pickRandomChar(set string) (byte, error) {
	idx, err := g.randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

// shuffle is a Fisher-Yates shuffle.
func (g *passwordGenerator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.randInt(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

func (g *passwordGenerator) randInt(max int) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be > 0")
	}
	n, err := rand.Int(g.rand, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random index: %w", err)
	}
	return int(n.Int64()), nil
}
