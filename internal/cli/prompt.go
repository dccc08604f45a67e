// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/keyholder"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"golang.org/x/term"
)

const keyPromptAttempts = 3

// SecretPrompter reads secrets without echo. It doubles as the master key
// prompt of the vault service.
type SecretPrompter interface {
	keyholder.Prompter
	ReadSecret(prompt string) (string, error)
}

// TerminalPrompter reads from the controlling terminal with echo disabled.
type TerminalPrompter struct {
	fd  int
	out io.Writer

	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

// NewTerminalPrompter reads from in and writes prompts to out, normally
// os.Stdin and os.Stderr.
func NewTerminalPrompter(in *os.File, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		fd:           int(in.Fd()),
		out:          out,
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
	}
}

func (p *TerminalPrompter) ReadSecret(prompt string) (string, error) {
	if !p.isTerminal(p.fd) {
		return "", errNotTerminal
	}

	_, _ = fmt.Fprint(p.out, prompt)
	secret, err := p.readPassword(p.fd)
	_, _ = fmt.Fprintln(p.out) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return string(secret), nil
}

// PromptKey asks for the master key until a valid one is entered. An empty
// answer cancels.
func (p *TerminalPrompter) PromptKey(ctx context.Context) (string, error) {
	for attempt := 0; attempt < keyPromptAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		secret, err := p.ReadSecret("Master key: ")
		if err != nil {
			return "", err
		}
		if secret == "" {
			return "", service.ErrPromptCancelled
		}
		if err = keyholder.ValidateKey(secret); err != nil {
			printWarning(p.out, "%s", err)
			continue
		}
		return secret, nil
	}

	return "", errTooManyAttempts
}
