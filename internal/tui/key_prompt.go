// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/keyholder"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errPromptBusy = errors.New("master key prompt is already open")

// keyPromptModel asks for the master key while a vault operation waits on
// reply. The key is checked before it is handed over, so a short key never
// leaves the screen.
type keyPromptModel struct {
	input  textinput.Model
	reply  chan<- keyPromptReply
	errMsg string
}

func newKeyPromptModel(reply chan<- keyPromptReply) *keyPromptModel {
	input := textinput.New()
	input.Placeholder = "master key"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &keyPromptModel{input: input, reply: reply}
}

func (m *keyPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update returns true once the prompt has answered and should be closed.
func (m *keyPromptModel) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.cancel()
		return true, nil
	case key.Matches(msg, keys.enter):
		secret := m.input.Value()
		if err := keyholder.ValidateKey(secret); err != nil {
			m.errMsg = err.Error()
			return false, nil
		}
		m.answer(keyPromptReply{key: secret})
		return true, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return false, cmd
}

func (m *keyPromptModel) View() string {
	var b strings.Builder
	b.WriteString("Enter the master key to encrypt and decrypt your passwords.\n")
	b.WriteString("It never leaves this computer.\n\n")
	b.WriteString("Master key │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	renderStatus(&b, "", m.errMsg)

	return renderPage("MASTER KEY", strings.TrimRight(b.String(), "\n"), "enter: confirm │ esc: cancel")
}

func (m *keyPromptModel) cancel() {
	m.answer(keyPromptReply{err: service.ErrPromptCancelled})
}

func (m *keyPromptModel) answer(r keyPromptReply) {
	if m.reply == nil {
		return
	}
	m.reply <- r
	m.reply = nil
}
