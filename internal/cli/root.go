package cli

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/keyholder"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/spf13/cobra"
)

// Session is what the commands need from the client application around
// them.
type Session interface {
	// Restore loads the saved master key and token. loggedIn is false when
	// there is no usable token.
	Restore(ctx context.Context) (loggedIn bool, err error)
	// RunTUI blocks while the terminal UI is open.
	RunTUI(ctx context.Context, loggedIn bool) error
}

// Deps are the collaborators of the command tree.
type Deps struct {
	Session      Session
	Auth         service.ClientAuthService
	Vault        service.VaultService
	Keys         keyholder.KeyHolder
	Secrets      SecretPrompter
	ClipboardTTL time.Duration
	BuildInfo    models.AppBuildInfo
	Logger       *logger.Logger
}

type commands struct {
	deps     Deps
	loggedIn bool
}

// NewRootCommand builds the gopass command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	c := &commands{deps: deps}

	root := &cobra.Command{
		Use:               "gopass",
		Short:             "Password vault with client-side encryption",
		Long:              `Stores site passwords on a server that only ever sees ciphertext. Passwords are encrypted and decrypted on this machine with a master key that never leaves it.`,
		Version:           deps.BuildInfo.BuildVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadSession,
		RunE:              c.runTUI,
	}

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.keyCmd(),
		c.listCmd(),
		c.addCmd(),
		c.editCmd(),
		c.revealCmd(),
		c.copyCmd(),
		c.deleteCmd(),
		c.generateCmd(),
		c.strengthCmd(),
		c.tuiCmd(),
	)

	return root
}

// Execute runs root and prints a failure to its error stream.
func Execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func (c *commands) loadSession(cmd *cobra.Command, _ []string) error {
	loggedIn, err := c.deps.Session.Restore(cmd.Context())
	if err != nil {
		return err
	}
	c.loggedIn = loggedIn
	c.deps.Vault.SetPrompter(c.deps.Secrets)
	return nil
}

func (c *commands) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE:  c.runTUI,
	}
}

func (c *commands) runTUI(cmd *cobra.Command, _ []string) error {
	return c.deps.Session.RunTUI(cmd.Context(), c.loggedIn)
}

func (c *commands) requireLogin() error {
	if !c.loggedIn {
		return errLoginFirst
	}
	return nil
}

// ensureKey asks for the master key up front so the prompt never races a
// spinner.
func (c *commands) ensureKey(ctx context.Context) error {
	if c.deps.Keys.State() == keyholder.Set {
		return nil
	}

	secret, err := c.deps.Secrets.PromptKey(ctx)
	if err != nil {
		return errors.Join(service.ErrMasterKeyRequired, err)
	}
	return c.deps.Keys.SetKey(secret)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
