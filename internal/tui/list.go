package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	siteColWidth     = 24
	usernameColWidth = 20
	passwordColWidth = 24
	hiddenPassword   = "••••••••"
)

// VaultModel lists the records of the logged-in user. Passwords are hidden
// until revealed with r; reloading or leaving the page hides them again.
type VaultModel struct {
	ctx   context.Context
	vault service.VaultService

	items   []models.Credential
	idx     int
	loading bool
	busy    bool

	confirm *confirmModel
	overlay *errorOverlayModel
	status  string
}

func NewVaultModel(ctx context.Context, vault service.VaultService) *VaultModel {
	return &VaultModel{ctx: ctx, vault: vault}
}

func (m *VaultModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *VaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NoticeMsg:
		m.status = msg.Text
		return m, m.Init()

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.items = msg.items
		m.clampIndex()
		return m, nil

	case revealDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m, nil

	case copyDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = fmt.Sprintf("Password for %s copied to the clipboard", msg.site)
		return m, nil

	case deleteDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = "Password deleted successfully"
		return m, m.Init()

	case logoutDoneMsg:
		m.busy = false
		m.items = nil
		m.idx = 0
		m.status = ""
		text := "Logged out"
		if msg.err != nil {
			text = "Logged out locally: " + humanizeError(msg.err)
		}
		return m, navigateWithNotice(pageMenu, text)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *VaultModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			item, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.busy = true
			return m, m.cmdDelete(item)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.reload):
		m.status = ""
		return m, m.Init()
	case key.Matches(msg, keys.newItem):
		m.status = ""
		return m, m.leave(NavigateTo{Page: pageForm, Payload: openFormMsg{}})
	case key.Matches(msg, keys.logout):
		m.busy = true
		return m, m.cmdLogout()
	}

	item, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.reveal):
		if _, revealed := m.vault.Revealed(item.ID); revealed {
			m.vault.Hide(item.ID)
			return m, nil
		}
		m.busy = true
		return m, m.cmdReveal(item.ID)
	case key.Matches(msg, keys.copy):
		m.busy = true
		return m, m.cmdCopy(item)
	case key.Matches(msg, keys.edit):
		m.status = ""
		existing := item
		return m, m.leave(NavigateTo{Page: pageForm, Payload: openFormMsg{existing: &existing}})
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{message: item.SiteName}
	}

	return m, nil
}

func (m *VaultModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No saved passwords yet. Press n to add one.\n")
	default:
		b.WriteString(fmt.Sprintf("  %-*s │ %-*s │ %-*s\n", siteColWidth, "Site", usernameColWidth, "Username", passwordColWidth, "Password"))
		b.WriteString(strings.Repeat("─", siteColWidth+2))
		b.WriteString("─┼─")
		b.WriteString(strings.Repeat("─", usernameColWidth))
		b.WriteString("─┼─")
		b.WriteString(strings.Repeat("─", passwordColWidth))
		b.WriteString("\n")

		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			row := fmt.Sprintf("%s%-*s │ %-*s │ %-*s",
				cursor,
				siteColWidth, fitText(item.SiteName, siteColWidth),
				usernameColWidth, fitText(valueOrDash(item.Username), usernameColWidth),
				passwordColWidth, fitText(m.passwordCell(item.ID), passwordColWidth),
			)
			if i == m.idx {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}

		if item, ok := m.selected(); ok && item.SiteURL != nil {
			b.WriteString("\nURL: ")
			b.WriteString(*item.SiteURL)
			b.WriteString("\n")
		}
	}

	if m.busy {
		b.WriteString("\nWorking...\n")
	}
	renderStatus(&b, m.status, "")

	title := fmt.Sprintf("MY PASSWORDS (%d)", len(m.items))
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"r: reveal │ c: copy │ e: edit │ d: delete │ n: new │ s: reload │ l: logout │ q: quit")
}

func (m *VaultModel) passwordCell(id int64) string {
	if p, ok := m.vault.Revealed(id); ok {
		return string(p)
	}
	return hiddenPassword
}

func (m *VaultModel) selected() (models.Credential, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Credential{}, false
	}
	return m.items[m.idx], true
}

func (m *VaultModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// fail shows err, or sends the user to log in again when the session is gone.
func (m *VaultModel) fail(err error) (tea.Model, tea.Cmd) {
	if needsLogin(err) {
		m.items = nil
		return m, m.leave(NavigateTo{Page: pageLogin, Payload: NoticeMsg{Text: humanizeError(err)}})
	}
	if errors.Is(err, service.ErrMasterKeyRequired) && errors.Is(err, service.ErrPromptCancelled) {
		m.status = "Master key is required for this action"
		return m, nil
	}
	m.overlay = &errorOverlayModel{message: humanizeError(err)}
	return m, nil
}

func (m *VaultModel) cmdLoad() tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		items, err := vault.List(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m *VaultModel) cmdReveal(id int64) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		_, err := vault.Reveal(ctx, id)
		return revealDoneMsg{id: id, err: err}
	}
}

func (m *VaultModel) cmdCopy(item models.Credential) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		return copyDoneMsg{site: item.SiteName, err: vault.Copy(ctx, item.ID)}
	}
}

func (m *VaultModel) cmdDelete(item models.Credential) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		return deleteDoneMsg{site: item.SiteName, err: vault.Delete(ctx, item.ID)}
	}
}

func (m *VaultModel) cmdLogout() tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		return logoutDoneMsg{err: vault.Logout(ctx)}
	}
}

// leave hides every revealed password before the list goes off screen.
func (m *VaultModel) leave(to NavigateTo) tea.Cmd {
	m.vault.Dismiss()
	return func() tea.Msg { return to }
}

func navigateWithNotice(page, text string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Payload: NoticeMsg{Text: text}}
	}
}
