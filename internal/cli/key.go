package cli

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/keyholder"
	"github.com/spf13/cobra"
)

func (c *commands) keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the master key of this session",
		Long:  `The master key encrypts and decrypts every stored password. It is kept for the current terminal session only and is never sent to the server.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set",
			Short: "Enter the master key for this session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if c.deps.Keys.State() == keyholder.Set {
					printWarning(cmd.ErrOrStderr(), "Replacing the master key of this session")
				}
				secret, err := c.deps.Secrets.PromptKey(cmd.Context())
				if err != nil {
					return err
				}
				if err = c.deps.Keys.SetKey(secret); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Master key set for this session")
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget the master key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := c.deps.Keys.ClearKey(); err != nil {
					return err
				}
				c.deps.Vault.Dismiss()
				printSuccess(cmd.OutOrStdout(), "Master key cleared")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether the master key is set",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				state := c.deps.Keys.State()
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprint(out, "Master key: ")
				if state == keyholder.Set {
					_, _ = successText.Fprintln(out, state)
					return
				}
				_, _ = warnText.Fprintln(out, state)
			},
		},
	)

	return cmd
}
