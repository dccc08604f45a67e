package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *commands) generateCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.deps.Vault.Generate(length)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(p))
			printStrength(cmd.ErrOrStderr(), c.deps.Vault.Evaluate(string(p)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "password length (0 = default)")

	return cmd
}

func (c *commands) strengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password]",
		Short: "Rate a password; it is read without echo when not given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var candidate string
			if len(args) == 1 {
				candidate = args[0]
			} else {
				var err error
				if candidate, err = c.deps.Secrets.ReadSecret("Password: "); err != nil {
					return err
				}
			}

			printStrength(cmd.OutOrStdout(), c.deps.Vault.Evaluate(candidate))
			return nil
		},
	}
}
