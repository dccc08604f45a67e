package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *commands) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored passwords (passwords stay hidden)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireLogin(); err != nil {
				return err
			}

			var items []models.Credential
			err := withSpinner(cmd.ErrOrStderr(), "Loading...", func() error {
				var err error
				items, err = c.deps.Vault.List(cmd.Context())
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				_, _ = mutedText.Fprintln(out, "No saved passwords yet. Add one with 'gopass add'.")
				return nil
			}

			_, _ = fmt.Fprintln(out, credentialTable(items))
			_, _ = infoText.Fprintf(out, "%d password(s)\n", len(items))
			return nil
		},
	}
}

func credentialTable(items []models.Credential) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "SITE", "USERNAME", "URL", "UPDATED")

	for _, item := range items {
		t.Row(
			strconv.FormatInt(item.ID, 10),
			item.SiteName,
			orDash(models.StringValue(item.Username)),
			orDash(models.StringValue(item.SiteURL)),
			formatTime(item.UpdatedAt),
		)
	}

	return t.Render()
}

type draftFlags struct {
	site     string
	url      string
	username string
	password bool
	generate bool
	length   int
}

func (f *draftFlags) register(cmd *cobra.Command, passwordUsage string) {
	cmd.Flags().StringVarP(&f.site, "site", "s", "", "site name")
	cmd.Flags().StringVar(&f.url, "url", "", "site address")
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "account name on the site")
	cmd.Flags().BoolVarP(&f.password, "password", "p", false, passwordUsage)
	cmd.Flags().BoolVarP(&f.generate, "generate", "g", false, "generate a random password")
	cmd.Flags().IntVarP(&f.length, "length", "l", 0, "generated password length (0 = default)")
	cmd.MarkFlagsMutuallyExclusive("password", "generate")
}

// newPassword reads or generates the password of a draft.
func (c *commands) newPassword(out io.Writer, f *draftFlags) (models.Plaintext, error) {
	if f.generate {
		p, err := c.deps.Vault.Generate(f.length)
		if err != nil {
			return "", err
		}
		_, _ = mutedText.Fprintf(out, "Generated a %d character password\n", len([]rune(string(p))))
		printStrength(out, c.deps.Vault.Evaluate(string(p)))
		return p, nil
	}

	p, err := c.readNewSecret("Password: ")
	if err != nil {
		return "", err
	}
	if p != "" {
		printStrength(out, c.deps.Vault.Evaluate(p))
	}
	return models.Plaintext(p), nil
}

func (c *commands) addCmd() *cobra.Command {
	var f draftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireLogin(); err != nil {
				return err
			}

			draft := models.CredentialDraft{
				SiteName: strings.TrimSpace(f.site),
				SiteURL:  strings.TrimSpace(f.url),
				Username: strings.TrimSpace(f.username),
			}
			if draft.SiteName == "" {
				return service.ErrSiteNameEmpty
			}

			password, err := c.newPassword(cmd.ErrOrStderr(), &f)
			if err != nil {
				return err
			}
			draft.Password = password
			if draft.Password == "" {
				return service.ErrPasswordEmpty
			}

			if err = c.ensureKey(cmd.Context()); err != nil {
				return err
			}

			var saved models.Credential
			err = withSpinner(cmd.ErrOrStderr(), "Saving...", func() error {
				saved, err = c.deps.Vault.Save(cmd.Context(), draft)
				return err
			})
			if err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), "Password added successfully (id %d)", saved.ID)
			return nil
		},
	}

	f.register(cmd, "prompt for the password (default unless --generate)")

	return cmd
}

func (c *commands) editCmd() *cobra.Command {
	var f draftFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a stored record; the password is kept unless --password or --generate is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireLogin(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("site") && !flags.Changed("url") && !flags.Changed("username") && !f.password && !f.generate {
				return errNothingToUpdate
			}

			existing, err := c.find(cmd.Context(), id)
			if err != nil {
				return err
			}

			draft := models.CredentialDraft{
				SiteName: existing.SiteName,
				SiteURL:  models.StringValue(existing.SiteURL),
				Username: models.StringValue(existing.Username),
			}
			if flags.Changed("site") {
				draft.SiteName = strings.TrimSpace(f.site)
			}
			if flags.Changed("url") {
				draft.SiteURL = strings.TrimSpace(f.url)
			}
			if flags.Changed("username") {
				draft.Username = strings.TrimSpace(f.username)
			}

			if f.password || f.generate {
				if draft.Password, err = c.newPassword(cmd.ErrOrStderr(), &f); err != nil {
					return err
				}
			}
			if draft.Password != "" {
				if err = c.ensureKey(cmd.Context()); err != nil {
					return err
				}
			}

			err = withSpinner(cmd.ErrOrStderr(), "Saving...", func() error {
				_, err = c.deps.Vault.Edit(cmd.Context(), existing, draft)
				return err
			})
			if err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), "Password updated successfully")
			return nil
		},
	}

	f.register(cmd, "prompt for a new password")

	return cmd
}

func (c *commands) revealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <id>",
		Short: "Decrypt and print a stored password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.recordCommand(cmd, args)
			if err != nil {
				return err
			}

			var p models.Plaintext
			err = withSpinner(cmd.ErrOrStderr(), "Decrypting...", func() error {
				p, err = c.deps.Vault.Reveal(cmd.Context(), id)
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(p))
			return err
		},
	}
}

func (c *commands) copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a stored password to the clipboard for a limited time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.recordCommand(cmd, args)
			if err != nil {
				return err
			}

			err = withSpinner(cmd.ErrOrStderr(), "Decrypting...", func() error {
				return c.deps.Vault.Copy(cmd.Context(), id)
			})
			if err != nil {
				return err
			}

			ttl := c.deps.ClipboardTTL
			printSuccess(cmd.OutOrStdout(), "Copied to the clipboard, it will be cleared in %s", ttl)
			_, _ = mutedText.Fprintln(cmd.ErrOrStderr(), "Press Ctrl+C to clear it now.")

			// the clipboard worker wipes on timeout or on shutdown
			select {
			case <-time.After(ttl):
			case <-cmd.Context().Done():
			}
			return nil
		},
	}
}

func (c *commands) deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored password",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireLogin(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !yes && !confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Delete record %d? [y/N]: ", id)) {
				return errDeleteNotApproved
			}

			err = withSpinner(cmd.ErrOrStderr(), "Deleting...", func() error {
				return c.deps.Vault.Delete(cmd.Context(), id)
			})
			if err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), "Password deleted successfully")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

// recordCommand checks login, parses the id and makes sure the key is set.
func (c *commands) recordCommand(cmd *cobra.Command, args []string) (int64, error) {
	if err := c.requireLogin(); err != nil {
		return 0, err
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, err
	}
	if err = c.ensureKey(cmd.Context()); err != nil {
		return 0, err
	}
	return id, nil
}

func (c *commands) find(ctx context.Context, id int64) (models.Credential, error) {
	items, err := c.deps.Vault.List(ctx)
	if err != nil {
		return models.Credential{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Credential{}, service.ErrCredentialNotFound
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprint(out, question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
