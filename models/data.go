package models

import "time"

// Credential is a single vault record: a site entry whose password is held
// only as ciphertext. The server stores it verbatim and never sees the
// plaintext or the key used to produce EncryptedPassword.
type Credential struct {
	// ID is the unique identifier of the record in the database.
	ID int64 `json:"id" db:"id"`

	// UserID is the owner of this record. It is taken from the JWT on the
	// server and never trusted from the request body.
	UserID int64 `json:"-" db:"user_id" validate:"gt=0"`

	// SiteName identifies the site. Required.
	SiteName string `json:"site_name" db:"site_name" validate:"required,notblank,max=255"`

	// SiteURL is an optional address or free-form note about the site.
	SiteURL *string `json:"site_url" db:"site_url"`

	// Username is the optional account name on the site.
	Username *string `json:"username" db:"username"`

	// EncryptedPassword is produced by the client cipher engine. Required.
	EncryptedPassword CipherText `json:"encrypted_password" db:"encrypted_password" validate:"required"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "passwords"
}

// CredentialDraft is what the user types into the credential form.
// On edit an empty Password means "keep the stored ciphertext".
type CredentialDraft struct {
	SiteName string    `validate:"required,notblank,max=255"`
	SiteURL  string    `validate:"omitempty,max=2048"`
	Username string    `validate:"omitempty,max=255"`
	Password Plaintext `validate:"-"`
}

// StringPtr returns nil for an empty string. Optional columns are stored as
// NULL rather than as empty strings.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences an optional column.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
