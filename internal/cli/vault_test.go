package cli

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/keyholder"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func storedRecords() []models.Credential {
	return []models.Credential{
		{
			ID:                3,
			SiteName:          "github.com",
			Username:          models.StringPtr("alice"),
			EncryptedPassword: "ct-3",
			UpdatedAt:         time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		},
		{ID: 4, SiteName: "mail.example", SiteURL: models.StringPtr("https://mail.example"), EncryptedPassword: "ct-4"},
	}
}

// ── list ─────────────────────────────────────────────────────────────────────

func TestList_RequiresLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, false)

	_, _, err := m.run("list")

	assert.ErrorIs(t, err, service.ErrNotLoggedIn)
}

func TestList_PrintsTableWithoutPasswords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.vault.EXPECT().List(gomock.Any()).Return(storedRecords(), nil)

	out, _, err := m.run("list")

	require.NoError(t, err)
	assert.Contains(t, out, "github.com")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "https://mail.example")
	assert.Contains(t, out, "2 password(s)")
	assert.NotContains(t, out, "ct-3")
}

func TestList_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.vault.EXPECT().List(gomock.Any()).Return(nil, nil)

	out, _, err := m.run("ls")

	require.NoError(t, err)
	assert.Contains(t, out, "No saved passwords yet")
}

// ── add ──────────────────────────────────────────────────────────────────────

func TestAdd_PromptsPasswordThenKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.secrets.answers = []string{"Hunter2!pass", "Hunter2!pass"}
	m.secrets.keys = []string{"master-key-1"}

	gomock.InOrder(
		m.keys.EXPECT().State().Return(keyholder.Unset),
		m.keys.EXPECT().SetKey("master-key-1").Return(nil),
		m.vault.EXPECT().Save(gomock.Any(), models.CredentialDraft{
			SiteName: "github.com",
			Username: "alice",
			Password: "Hunter2!pass",
		}).Return(models.Credential{ID: 7}, nil),
	)

	out, errOut, err := m.run("add", "--site", " github.com ", "-u", "alice")

	require.NoError(t, err)
	assert.Contains(t, out, "Password added successfully (id 7)")
	assert.Contains(t, errOut, "Strong (5/5)")
	assert.Equal(t, []string{"Password: ", "Repeat Password: "}, m.secrets.asked)
}

func TestAdd_EmptySiteBeforeAnyPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)

	_, _, err := m.run("add", "--site", "  ")

	assert.ErrorIs(t, err, service.ErrSiteNameEmpty)
	assert.Empty(t, m.secrets.asked)
}

func TestAdd_PasswordsDiffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.secrets.answers = []string{"one-password", "another-one"}

	_, _, err := m.run("add", "--site", "github.com")

	assert.ErrorIs(t, err, errPasswordsDiffer)
}

func TestAdd_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.secrets.answers = []string{"", ""}

	_, _, err := m.run("add", "--site", "github.com")

	assert.ErrorIs(t, err, service.ErrPasswordEmpty)
}

func TestAdd_Generated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.keys.EXPECT().State().Return(keyholder.Set)
	m.vault.EXPECT().Generate(24).Return(models.Plaintext("Zx9!Zx9!Zx9!Zx9!Zx9!Zx9!"), nil)
	m.vault.EXPECT().Save(gomock.Any(), models.CredentialDraft{
		SiteName: "github.com",
		Password: "Zx9!Zx9!Zx9!Zx9!Zx9!Zx9!",
	}).Return(models.Credential{ID: 8}, nil)

	out, errOut, err := m.run("add", "-s", "github.com", "--generate", "--length", "24")

	require.NoError(t, err)
	assert.Contains(t, out, "id 8")
	assert.Contains(t, errOut, "Generated a 24 character password")
	assert.NotContains(t, out+errOut, "Zx9!")
	assert.Empty(t, m.secrets.asked)
}

func TestAdd_PasswordAndGenerateExclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)

	_, _, err := m.run("add", "-s", "x", "--password", "--generate")

	assert.Error(t, err)
}

// ── edit ─────────────────────────────────────────────────────────────────────

func TestEdit_NothingToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)

	_, _, err := m.run("edit", "3")

	assert.ErrorIs(t, err, errNothingToUpdate)
}

func TestEdit_KeepsPasswordWithoutKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	records := storedRecords()
	m.vault.EXPECT().List(gomock.Any()).Return(records, nil)
	m.vault.EXPECT().Edit(gomock.Any(), records[0], models.CredentialDraft{
		SiteName: "github.com",
		SiteURL:  "https://github.com/login",
		Username: "alice",
	}).Return(records[0], nil)

	out, _, err := m.run("edit", "3", "--url", "https://github.com/login")

	require.NoError(t, err)
	assert.Contains(t, out, "Password updated successfully")
}

func TestEdit_NewPasswordNeedsKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	records := storedRecords()
	m.secrets.answers = []string{"n3w-Password", "n3w-Password"}
	m.vault.EXPECT().List(gomock.Any()).Return(records, nil)
	m.keys.EXPECT().State().Return(keyholder.Set)
	m.vault.EXPECT().Edit(gomock.Any(), records[1], models.CredentialDraft{
		SiteName: "mail.example",
		SiteURL:  "https://mail.example",
		Password: "n3w-Password",
	}).Return(records[1], nil)

	_, _, err := m.run("edit", "4", "-p")

	require.NoError(t, err)
}

func TestEdit_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.vault.EXPECT().List(gomock.Any()).Return(storedRecords(), nil)

	_, _, err := m.run("edit", "99", "--site", "x")

	assert.ErrorIs(t, err, service.ErrCredentialNotFound)
}

// ── reveal / copy / delete ──────────────────────────────────────────────────

func TestReveal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.keys.EXPECT().State().Return(keyholder.Set)
	m.vault.EXPECT().Reveal(gomock.Any(), int64(3)).Return(models.Plaintext("s3cret"), nil)

	out, _, err := m.run("reveal", "3")

	require.NoError(t, err)
	assert.Equal(t, "s3cret\n", out)
}

func TestReveal_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)

	for _, arg := range []string{"abc", "0", "-1"} {
		_, _, err := m.run("reveal", "--", arg)
		assert.ErrorIs(t, err, errInvalidID, arg)
	}
}

func TestReveal_KeyPromptRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.keys.EXPECT().State().Return(keyholder.Unset)

	_, _, err := m.run("reveal", "3")

	assert.ErrorIs(t, err, service.ErrMasterKeyRequired)
}

func TestCopy_WaitsForTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.keys.EXPECT().State().Return(keyholder.Set)
	m.vault.EXPECT().Copy(gomock.Any(), int64(4)).Return(nil)

	start := time.Now()
	out, _, err := m.run("copy", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Copied to the clipboard")
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestDelete_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.stdin = "y\n"
	m.vault.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	out, errOut, err := m.run("delete", "4")

	require.NoError(t, err)
	assert.Contains(t, errOut, "Delete record 4? [y/N]")
	assert.Contains(t, out, "Password deleted successfully")
}

func TestDelete_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.stdin = "\n"

	_, _, err := m.run("rm", "4")

	assert.ErrorIs(t, err, errDeleteNotApproved)
}

func TestDelete_YesFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCLIMocks(ctrl, true)
	m.vault.EXPECT().Delete(gomock.Any(), int64(4)).Return(service.ErrCredentialNotFound)

	_, _, err := m.run("delete", "4", "--yes")

	assert.ErrorIs(t, err, service.ErrCredentialNotFound)
}
