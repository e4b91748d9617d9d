package validators

import (
	"context"

	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldFullName targets the display name of an account.
	FieldFullName = "full_name"

	// FieldEmail targets the email address an account is keyed by.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password supplied by the caller.
	FieldPassword = "password"

	// FieldSecurityToken targets the one-time token of a pending action.
	FieldSecurityToken = "security_token"
)

// AccountValidator checks that account requests carry every required value.
// Values are only checked for presence: a string is missing only when it is
// empty.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccountInfo:
		return v.validate(value.FullName, value.Email, value.Password, uuid.Nil, defaultFields(fields, FieldFullName, FieldEmail, FieldPassword))
	case *models.AccountInfo:
		return v.Validate(ctx, *value, fields...)

	case models.ConfirmRegistrationRequest:
		return v.validate("", value.Email, "", value.SecurityToken, defaultFields(fields, FieldEmail, FieldSecurityToken))
	case *models.ConfirmRegistrationRequest:
		return v.Validate(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validate("", value.Email, value.Password, uuid.Nil, defaultFields(fields, FieldEmail, FieldPassword))
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ForgotPasswordRequest:
		return v.validate("", value.Email, "", uuid.Nil, defaultFields(fields, FieldEmail))
	case *models.ForgotPasswordRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.validate("", value.Email, value.Password, value.SecurityToken, defaultFields(fields, FieldEmail, FieldPassword, FieldSecurityToken))
	case *models.ResetPasswordRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validate(fullName, email, password string, token uuid.UUID, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldFullName:
			if fullName == "" {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if password == "" {
				return ErrEmptyPassword
			}
		case FieldSecurityToken:
			if token == uuid.Nil {
				return ErrEmptySecurityToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
