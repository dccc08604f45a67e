// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-pass-vault/internal/config"

const (
	saltSize = 16
	keySize  = 32 // AES-256

	// upper bounds accepted from a blob header or an encoded hash
	maxArgonTime   = 64
	maxArgonMemory = 1 << 20 // 1 GiB in KiB
)

// Params holds the Argon2id cost parameters.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultParams returns the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultParams() Params {
	return Params{
		Time:    config.DefaultArgonTime,
		Memory:  config.DefaultArgonMemory,
		Threads: config.DefaultArgonThreads,
	}
}

// ParamsFromConfig maps the crypto config group, falling back to the
// defaults for zero values.
func ParamsFromConfig(cfg config.Crypto) Params {
	p := DefaultParams()
	if cfg.ArgonTime != 0 {
		p.Time = cfg.ArgonTime
	}
	if cfg.ArgonMemory != 0 {
		p.Memory = cfg.ArgonMemory
	}
	if cfg.ArgonThreads != 0 {
		p.Threads = cfg.ArgonThreads
	}
	return p
}

func (p Params) valid() bool {
	return p.Time > 0 && p.Time <= maxArgonTime &&
		p.Memory > 0 && p.Memory <= maxArgonMemory &&
		p.Threads > 0
}
