package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullName      = errors.New("full name is empty")
	ErrEmptyEmail         = errors.New("email is empty")
	ErrEmptyPassword      = errors.New("password is empty")
	ErrEmptySecurityToken = errors.New("security token is empty")
)
