package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle    = errors.New("title is required")
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")

	ErrEmptyLogin        = errors.New("login is required")
	ErrEmptyUserPassword = errors.New("user password is required")
	ErrLoginTooLong      = errors.New("login is too long")
)
