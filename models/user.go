package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id" db:"id"`

	// Username is the unique display name chosen at registration.
	Username string `json:"username" db:"username"`

	// Email is the unique login identifier.
	Email string `json:"email" db:"email"`

	// Password is the account password as sent by the client on register or
	// login. It is never returned in responses and never stored.
	Password string `json:"password,omitempty" db:"-"`

	// PasswordHash is the encoded argon2id hash of Password. Server side only.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u without any credential material, suitable for
// responses.
func (u User) Public() User {
	return User{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
