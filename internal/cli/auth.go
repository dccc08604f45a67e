package cli

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/spf13/cobra"
)

func (c *commands) registerCmd() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := c.readNewSecret("Account password: ")
			if err != nil {
				return err
			}
			req.Password = password

			var user models.User
			err = withSpinner(cmd.ErrOrStderr(), "Registering...", func() error {
				user, err = c.deps.Auth.Register(cmd.Context(), req)
				return err
			})
			if err != nil {
				return err
			}

			c.loggedIn = true
			printSuccess(cmd.OutOrStdout(), "Registration successful! Logged in as %s", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email address")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (c *commands) loginCmd() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the vault server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := c.deps.Secrets.ReadSecret("Account password: ")
			if err != nil {
				return err
			}
			req.Password = password

			var user models.User
			err = withSpinner(cmd.ErrOrStderr(), "Logging in...", func() error {
				user, err = c.deps.Auth.Login(cmd.Context(), req)
				return err
			})
			if err != nil {
				return err
			}

			c.loggedIn = true
			printSuccess(cmd.OutOrStdout(), "Login successful! Logged in as %s", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email address")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (c *commands) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the server token and the master key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.deps.Vault.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			c.loggedIn = false
			printSuccess(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// readNewSecret reads a secret twice and checks both entries match.
func (c *commands) readNewSecret(prompt string) (string, error) {
	first, err := c.deps.Secrets.ReadSecret(prompt)
	if err != nil {
		return "", err
	}
	second, err := c.deps.Secrets.ReadSecret("Repeat " + prompt)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordsDiffer
	}
	return first, nil
}
