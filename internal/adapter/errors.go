package adapter

import "errors"

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrValidation          = errors.New("invalid request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrNoToken             = errors.New("no session token, log in first")
	ErrInvalidAddress      = errors.New("invalid server address")
)
