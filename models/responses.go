package models

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// CredentialListResponse is returned by GET /api/passwords.
type CredentialListResponse struct {
	Count     int          `json:"count"`
	Passwords []Credential `json:"passwords"`
}

// CredentialResponse is returned by create and update.
type CredentialResponse struct {
	Message  string     `json:"message"`
	Password Credential `json:"password"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
