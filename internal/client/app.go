package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/cli"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

type App struct {
	services  *service.ClientServices
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	prompter  cli.SecretPrompter
	logger    *logger.Logger

	startWorkers sync.Once
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || cfg == nil {
		return nil, errNilDependencies
	}

	return &App{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		prompter:  cli.NewTerminalPrompter(os.Stdin, os.Stderr),
		logger:    logger,
	}, nil
}

// Run executes the command line with os.Args and blocks until it is done.
// Background workers are stopped on return, which also wipes a pending
// clipboard value.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer a.services.Workers.Stop()

	root := cli.NewRootCommand(cli.Deps{
		Session:      a,
		Auth:         a.services.AuthService,
		Vault:        a.services.VaultService,
		Keys:         a.services.KeyHolder,
		Secrets:      a.prompter,
		ClipboardTTL: a.cfg.Vault.ClipboardTTL,
		BuildInfo:    a.buildInfo,
		Logger:       a.logger,
	})

	return cli.Execute(ctx, root)
}

// Restore loads the master key and the token saved earlier in this terminal
// session and starts the background workers.
func (a *App) Restore(ctx context.Context) (bool, error) {
	a.startWorkers.Do(func() {
		a.services.Workers.Start(ctx)
	})

	if err := a.services.KeyHolder.Restore(); err != nil {
		// an unreadable slot only means the key is asked again
		a.logger.Warn().Err(err).Str("func", "*App.Restore").Msg("master key not restored")
	}

	user, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotLoggedIn) {
			return false, nil
		}
		return false, fmt.Errorf("restore session: %w", err)
	}

	a.logger.Debug().Int64("user_id", user.UserID).Msg("session restored")
	return true, nil
}

// RunTUI opens the terminal UI. Leaving it with ctrl+c is not an error.
func (a *App) RunTUI(ctx context.Context, loggedIn bool) error {
	ui := tui.New(a.services.AuthService, a.services.VaultService, a.buildInfo, a.logger)

	err := ui.Run(ctx, loggedIn)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
