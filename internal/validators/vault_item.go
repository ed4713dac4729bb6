package validators

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the title of a vault item.
	FieldTitle = "title"

	// FieldUsername targets the stored account username of a vault item.
	FieldUsername = "username"

	// FieldPassword targets the stored password of a vault item.
	FieldPassword = "password"

	// FieldLogin targets the login of a user account.
	FieldLogin = "login"

	// FieldUserPassword targets the password of a user account.
	FieldUserPassword = "user_password"
)

// MaxLoginLength bounds account logins.
const MaxLoginLength = 256

// VaultValidator implements the Validator interface for the vault domain
// models: VaultItemFields and User.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type VaultValidator struct {
}

// NewVaultValidator constructs a new VaultValidator and returns it as the
// Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.VaultItemFields / *models.VaultItemFields
//   - models.User / *models.User
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultItemFields:
		return v.validateVaultItemFields(ctx, value, fields...)
	case *models.VaultItemFields:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateVaultItemFields(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateVaultItemFields checks the mandatory fields of a vault item.
// URL and Notes are optional and never rejected.
//
// Default validated fields: Title, Username, Password.
func (v *VaultValidator) validateVaultItemFields(_ context.Context, item models.VaultItemFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if item.Title == "" {
				return ErrEmptyTitle
			}
		case FieldUsername:
			if item.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if item.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser checks register and login input.
//
// Default validated fields: Login, UserPassword.
func (v *VaultValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldUserPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if user.Login == "" {
				return ErrEmptyLogin
			}
			if len(user.Login) > MaxLoginLength {
				return ErrLoginTooLong
			}
		case FieldUserPassword:
			if user.Password == "" {
				return ErrEmptyUserPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
