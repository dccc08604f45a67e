package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the full-screen client. It also serves as the master key prompt of
// the vault service while it runs.
type TUI struct {
	auth      service.ClientAuthService
	vault     service.VaultService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(auth service.ClientAuthService, vault service.VaultService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	t := &TUI{
		auth:      auth,
		vault:     vault,
		buildInfo: buildInfo,
		logger:    logger,
	}
	vault.SetPrompter(t)
	return t
}

// Run blocks until the user quits. loggedIn selects the vault list as the
// first page instead of the login menu.
func (t *TUI) Run(ctx context.Context, loggedIn bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := pageMenu
	if loggedIn {
		start = pageVault
	}

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.auth),
		pageRegister: NewRegisterModel(ctx, t.auth),
		pageVault:    NewVaultModel(ctx, t.vault),
		pageForm:     NewFormModel(ctx, t.vault),
	}

	program := tea.NewProgram(NewRootModel(pages, start, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))
	t.setProgram(program)
	defer t.setProgram(nil)

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal UI stopped with error")
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// PromptKey shows the master key screen and waits for the answer. It is
// called from command goroutines, never from Update.
func (t *TUI) PromptKey(ctx context.Context) (string, error) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return "", errNoProgram
	}

	reply := make(chan keyPromptReply, 1)
	program.Send(keyPromptMsg{reply: reply})

	select {
	case r := <-reply:
		return r.key, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (t *TUI) setProgram(p *tea.Program) {
	t.mu.Lock()
	t.program = p
	t.mu.Unlock()
}
