// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldSite = iota
	fieldURL
	fieldUsername
	fieldPassword
)

var formLabels = []string{"Site", "URL", "Username", "Password"}

// FormModel creates a record or edits the one it was opened with. The
// password is typed in clear only into the input; the vault service
// encrypts it before anything is sent.
type FormModel struct {
	ctx   context.Context
	vault service.VaultService

	inputs     []textinput.Model
	focus      int
	existing   *models.Credential
	submitting bool
	errMsg     string
}

func NewFormModel(ctx context.Context, vault service.VaultService) *FormModel {
	m := &FormModel{ctx: ctx, vault: vault}
	m.open(nil)
	return m
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openFormMsg:
		m.open(msg.existing)
		return m, m.Init()

	case savedMsg:
		m.submitting = false
		if msg.err != nil {
			if needsLogin(msg.err) {
				return m, navigateWithNotice(pageLogin, humanizeError(msg.err))
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		text := "Password added successfully"
		if msg.edited {
			text = "Password updated successfully"
		}
		m.open(nil)
		return m, navigateWithNotice(pageVault, text)

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			m.open(nil)
			return m, func() tea.Msg { return NavigateTo{Page: pageVault} }
		case key.Matches(msg, keys.generate):
			return m, m.generate()
		case key.Matches(msg, keys.showPass):
			m.togglePasswordEcho()
			return m, nil
		case key.Matches(msg, keys.save):
			return m, m.submit()
		case key.Matches(msg, keys.enter):
			if m.focus == fieldPassword {
				return m, m.submit()
			}
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) View() string {
	title := "NEW PASSWORD"
	if m.existing != nil {
		title = "EDIT: " + m.existing.SiteName
	}

	var b strings.Builder
	for i, label := range formLabels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 9-len(label)))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if pass := m.inputs[fieldPassword].Value(); pass != "" {
		b.WriteString("Strength │ ")
		b.WriteString(m.vault.Evaluate(pass).Render())
		b.WriteString("\n")
	} else if m.existing != nil {
		b.WriteString(helpStyle.Render("Leave the password blank to keep the current one."))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+g: generate │ ctrl+t: show/hide │ ctrl+s: save │ esc: cancel")
}

// open resets the form for a new record, or fills it from existing. The
// password input always starts empty.
func (m *FormModel) open(existing *models.Credential) {
	inputs := make([]textinput.Model, len(formLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldSite].Placeholder = "example.com"
	inputs[fieldSite].CharLimit = 255
	inputs[fieldURL].Placeholder = "https://example.com/login (optional)"
	inputs[fieldURL].CharLimit = 2048
	inputs[fieldUsername].Placeholder = "optional"
	inputs[fieldUsername].CharLimit = 255
	inputs[fieldPassword].CharLimit = 256
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldPassword].Placeholder = "password"

	if existing != nil {
		inputs[fieldSite].SetValue(existing.SiteName)
		inputs[fieldURL].SetValue(models.StringValue(existing.SiteURL))
		inputs[fieldUsername].SetValue(models.StringValue(existing.Username))
		inputs[fieldPassword].Placeholder = "leave blank to keep"
	}
	inputs[fieldSite].Focus()

	m.inputs = inputs
	m.focus = fieldSite
	m.existing = existing
	m.submitting = false
	m.errMsg = ""
}

func (m *FormModel) draft() models.CredentialDraft {
	return models.CredentialDraft{
		SiteName: strings.TrimSpace(m.inputs[fieldSite].Value()),
		SiteURL:  strings.TrimSpace(m.inputs[fieldURL].Value()),
		Username: strings.TrimSpace(m.inputs[fieldUsername].Value()),
		Password: models.Plaintext(m.inputs[fieldPassword].Value()),
	}
}

func (m *FormModel) submit() tea.Cmd {
	m.errMsg = ""
	m.submitting = true

	ctx, vault := m.ctx, m.vault
	draft := m.draft()

	if m.existing == nil {
		return func() tea.Msg {
			c, err := vault.Save(ctx, draft)
			return savedMsg{credential: c, err: err}
		}
	}

	existing := *m.existing
	return func() tea.Msg {
		c, err := vault.Edit(ctx, existing, draft)
		return savedMsg{credential: c, edited: true, err: err}
	}
}

func (m *FormModel) generate() tea.Cmd {
	p, err := m.vault.Generate(0)
	if err != nil {
		m.errMsg = humanizeError(err)
		return nil
	}
	m.inputs[fieldPassword].SetValue(string(p))
	m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
	m.setFocus(fieldPassword)
	return nil
}

func (m *FormModel) togglePasswordEcho() {
	if m.inputs[fieldPassword].EchoMode == textinput.EchoPassword {
		m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
		return
	}
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
}

func (m *FormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
