package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by Validate for field-level scoping. They match the
// Go struct field names of the validated models.
const (
	FieldUsername          = "Username"
	FieldEmail             = "Email"
	FieldPassword          = "Password"
	FieldSiteName          = "SiteName"
	FieldSiteURL           = "SiteURL"
	FieldEncryptedPassword = "EncryptedPassword"
	FieldUserID            = "UserID"
)

// tagErrors maps a failed tag to the sentinel returned for it. Tags missing
// from the map fall back to the type's "required" sentinel.
type tagErrors map[string]error

var (
	registerErrors = tagErrors{
		"required": ErrRegisterFieldsRequired,
		"notblank": ErrRegisterFieldsRequired,
		"email":    ErrInvalidEmail,
		"max":      ErrFieldTooLong,
	}
	loginErrors = tagErrors{
		"required": ErrLoginFieldsRequired,
		"notblank": ErrLoginFieldsRequired,
		"email":    ErrInvalidEmail,
	}
	credentialErrors = tagErrors{
		"required": ErrCredentialFieldsRequired,
		"notblank": ErrCredentialFieldsRequired,
		"max":      ErrFieldTooLong,
		"gt":       ErrInvalidUserID,
	}
	draftErrors = tagErrors{
		"required": ErrSiteNameEmpty,
		"notblank": ErrSiteNameEmpty,
		"max":      ErrFieldTooLong,
	}
)

// RequestValidator validates the request and record models of the vault
// API using go-playground/validator struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and registers the
// custom "notblank" rule.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", notBlank)

	return &RequestValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest
//   - models.LoginRequest
//   - models.CredentialRequest
//   - models.Credential
//   - models.CredentialDraft
//
// Returns ErrUnsupportedType for anything else. Optional fields restrict
// validation to the named struct fields.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.check(ctx, &value, registerErrors, fields...)
	case *models.RegisterRequest:
		return v.check(ctx, value, registerErrors, fields...)

	case models.LoginRequest:
		return v.check(ctx, &value, loginErrors, fields...)
	case *models.LoginRequest:
		return v.check(ctx, value, loginErrors, fields...)

	case models.CredentialRequest:
		return v.check(ctx, &value, credentialErrors, fields...)
	case *models.CredentialRequest:
		return v.check(ctx, value, credentialErrors, fields...)

	case models.Credential:
		return v.check(ctx, &value, credentialErrors, fields...)
	case *models.Credential:
		return v.check(ctx, value, credentialErrors, fields...)

	case models.CredentialDraft:
		return v.check(ctx, &value, draftErrors, fields...)
	case *models.CredentialDraft:
		return v.check(ctx, value, draftErrors, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) check(ctx context.Context, obj any, sentinels tagErrors, fields ...string) error {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if _, ok := reflect.TypeOf(obj).Elem().FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	first := validationErrors[0]
	sentinel, ok := sentinels[first.Tag()]
	if !ok {
		sentinel = sentinels["required"]
	}

	return fmt.Errorf("%w: %s failed on %q", sentinel, first.Field(), first.Tag())
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}
