package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/keyholder"
	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ClipboardCopier places a revealed password on the clipboard and takes
// care of wiping it later.
type ClipboardCopier interface {
	Copy(value string) error
}

// ClientAuthService manages the account session of the vault client. The
// server token lives in the session store so a restart within the same
// terminal session stays logged in.
type ClientAuthService interface {
	// Register creates an account and logs in with it.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and keeps the token for later requests.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// RestoreSession loads a saved, unexpired token. It returns
	// [ErrNotLoggedIn] when there is none.
	RestoreSession(ctx context.Context) (models.User, error)

	// ForgetToken drops the server token but keeps the master key. It is
	// used when the server rejects the token.
	ForgetToken(ctx context.Context) error

	// Logout drops the server token and clears the master key.
	Logout(ctx context.Context) error
}

// VaultService is the record flow of the vault: it composes the key holder,
// the cipher engine and the generator around create, edit and reveal of
// records whose passwords the server only ever sees as ciphertext.
type VaultService interface {
	// List reloads the records of the current user and hides every revealed
	// password.
	List(ctx context.Context) ([]models.Credential, error)

	// Save validates draft, encrypts its password and stores a new record.
	Save(ctx context.Context, draft models.CredentialDraft) (models.Credential, error)

	// Edit updates existing from draft. A blank draft password keeps the
	// stored ciphertext without touching the cipher.
	Edit(ctx context.Context, existing models.Credential, draft models.CredentialDraft) (models.Credential, error)

	// Reveal decrypts the password of record id and marks it revealed.
	Reveal(ctx context.Context, id int64) (models.Plaintext, error)

	// Hide forgets the revealed password of record id.
	Hide(id int64)

	// Revealed returns the revealed password of record id, if any.
	Revealed(id int64) (models.Plaintext, bool)

	// Dismiss hides every revealed password.
	Dismiss()

	// Delete removes record id.
	Delete(ctx context.Context, id int64) error

	// Copy decrypts record id onto the clipboard for a limited time. The
	// record is not marked revealed.
	Copy(ctx context.Context, id int64) error

	// Generate returns a random password; zero length selects the default.
	Generate(length int) (models.Plaintext, error)

	// Evaluate scores a candidate password.
	Evaluate(candidate string) strength.Result

	// SetPrompter installs the prompt used when the key is needed.
	SetPrompter(prompter keyholder.Prompter)

	// Logout forgets revealed passwords, the key and the server token.
	Logout(ctx context.Context) error
}
