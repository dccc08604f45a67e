package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: DriverSQLite, DSN: ":memory:"},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.UserRepository.CreateUser(ctx, models.User{
		Username: "alice", Email: "alice@example.com", PasswordHash: "h",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{
		Username: "alice", Email: "other@example.com", PasswordHash: "h",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists, "duplicate username")

	_, err = s.UserRepository.CreateUser(ctx, models.User{
		Username: "bob", Email: "alice@example.com", PasswordHash: "h",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists, "duplicate email")

	found, err := s.UserRepository.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "h", found.PasswordHash)

	_, err = s.UserRepository.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_CredentialLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	alice, err := s.UserRepository.CreateUser(ctx, models.User{Username: "alice", Email: "a@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	mallory, err := s.UserRepository.CreateUser(ctx, models.User{Username: "mallory", Email: "m@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	first, err := s.CredentialRepository.CreateCredential(ctx, models.Credential{
		UserID: alice.UserID, SiteName: "mail", EncryptedPassword: "blob-1",
	})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := s.CredentialRepository.CreateCredential(ctx, models.Credential{
		UserID: alice.UserID, SiteName: "github", SiteURL: models.StringPtr("https://github.com"),
		Username: models.StringPtr("octocat"), EncryptedPassword: "blob-2",
	})
	require.NoError(t, err)

	list, err := s.CredentialRepository.ListCredentials(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, "https://github.com", models.StringValue(list[0].SiteURL))
	assert.Nil(t, list[1].SiteURL)

	foreign, err := s.CredentialRepository.ListCredentials(ctx, mallory.UserID)
	require.NoError(t, err)
	assert.Empty(t, foreign)

	_, err = s.CredentialRepository.GetCredential(ctx, first.ID, mallory.UserID)
	assert.ErrorIs(t, err, ErrCredentialNotFound, "records of other users are invisible")

	time.Sleep(2 * time.Millisecond)
	first.SiteName = "webmail"
	first.EncryptedPassword = "blob-1b"
	updated, err := s.CredentialRepository.UpdateCredential(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "webmail", updated.SiteName)
	assert.Equal(t, models.CipherText("blob-1b"), updated.EncryptedPassword)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt), "updated_at refreshed")

	foreignEdit := first
	foreignEdit.UserID = mallory.UserID
	_, err = s.CredentialRepository.UpdateCredential(ctx, foreignEdit)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	assert.ErrorIs(t, s.CredentialRepository.DeleteCredential(ctx, first.ID, mallory.UserID), ErrCredentialNotFound)
	require.NoError(t, s.CredentialRepository.DeleteCredential(ctx, first.ID, alice.UserID))
	assert.ErrorIs(t, s.CredentialRepository.DeleteCredential(ctx, first.ID, alice.UserID), ErrCredentialNotFound)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	assert.True(t, c.IsUniqueViolation(unique))
	assert.False(t, c.IsUniqueViolation(busy))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "vault.db?cache=shared&_foreign_keys=on", sqliteDSN("vault.db?cache=shared"))
	assert.Equal(t, "vault.db?_fk=1", sqliteDSN("vault.db?_fk=1"))
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db")

	require.NoError(t, createLocalDBFileIfNotExists(path+"?cache=shared"))
	_, err := os.Stat(path)
	assert.NoError(t, err, "file created without the query part")

	require.NoError(t, createLocalDBFileIfNotExists(":memory:"))
	_, err = os.Stat(":memory:")
	assert.True(t, os.IsNotExist(err))
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
