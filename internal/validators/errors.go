package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRegisterFieldsRequired   = errors.New("Username, email address, and password are all required fields.")
	ErrLoginFieldsRequired      = errors.New("Email address and password are both required fields.")
	ErrInvalidEmail             = errors.New("Invalid email address")
	ErrCredentialFieldsRequired = errors.New("Site name and password cannot be null")
	ErrSiteNameEmpty            = errors.New("Website name cannot be empty")
	ErrFieldTooLong             = errors.New("field is too long")
	ErrInvalidUserID            = errors.New("invalid user ID")
)
