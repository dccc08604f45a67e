package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScriptedPrompter(answers ...string) (*TerminalPrompter, *bytes.Buffer) {
	var out bytes.Buffer
	return &TerminalPrompter{
		out:        &out,
		isTerminal: func(int) bool { return true },
		readPassword: func(int) ([]byte, error) {
			if len(answers) == 0 {
				return nil, errors.New("eof")
			}
			a := answers[0]
			answers = answers[1:]
			return []byte(a), nil
		},
	}, &out
}

func TestTerminalPrompter_NotATerminal(t *testing.T) {
	p, _ := newScriptedPrompter()
	p.isTerminal = func(int) bool { return false }

	_, err := p.ReadSecret("x: ")

	assert.ErrorIs(t, err, errNotTerminal)
}

func TestTerminalPrompter_ReadSecret(t *testing.T) {
	p, out := newScriptedPrompter("hidden")

	got, err := p.ReadSecret("Password: ")

	require.NoError(t, err)
	assert.Equal(t, "hidden", got)
	assert.Equal(t, "Password: \n", out.String())
}

func TestTerminalPrompter_PromptKeyRetriesShortKey(t *testing.T) {
	p, out := newScriptedPrompter("short", "long-enough")

	got, err := p.PromptKey(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "long-enough", got)
	assert.Contains(t, out.String(), "Master key must be at least 8 characters long")
}

func TestTerminalPrompter_PromptKeyEmptyCancels(t *testing.T) {
	p, _ := newScriptedPrompter("")

	_, err := p.PromptKey(context.Background())

	assert.ErrorIs(t, err, service.ErrPromptCancelled)
}

func TestTerminalPrompter_PromptKeyGivesUp(t *testing.T) {
	p, _ := newScriptedPrompter("a", "b", "c", "never-read")

	_, err := p.PromptKey(context.Background())

	assert.ErrorIs(t, err, errTooManyAttempts)
}

func TestTerminalPrompter_PromptKeyCancelledContext(t *testing.T) {
	p, _ := newScriptedPrompter("long-enough")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.PromptKey(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
