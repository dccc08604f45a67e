package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=64"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=256"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CredentialRequest is the body of POST and PUT /api/passwords.
type CredentialRequest struct {
	SiteName          string     `json:"site_name" validate:"required,notblank,max=255"`
	SiteURL           *string    `json:"site_url,omitempty" validate:"omitempty,max=2048"`
	Username          *string    `json:"username,omitempty" validate:"omitempty,max=255"`
	EncryptedPassword CipherText `json:"encrypted_password" validate:"required"`
}

// ToCredential maps the request onto a record owned by userID.
func (r CredentialRequest) ToCredential(id, userID int64) Credential {
	return Credential{
		ID:                id,
		UserID:            userID,
		SiteName:          r.SiteName,
		SiteURL:           r.SiteURL,
		Username:          r.Username,
		EncryptedPassword: r.EncryptedPassword,
	}
}

// NewCredentialRequest builds the wire form of c.
func NewCredentialRequest(c Credential) CredentialRequest {
	return CredentialRequest{
		SiteName:          c.SiteName,
		SiteURL:           c.SiteURL,
		Username:          c.Username,
		EncryptedPassword: c.EncryptedPassword,
	}
}
