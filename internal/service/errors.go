package service

import "errors"

var (
	// ErrUnauthenticated is returned when a call carries no usable identity:
	// an empty owner or an invalid, expired or malformed token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrValidation wraps the validator error describing which field is
	// missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrIntegrity is returned when stored ciphertext cannot be decrypted.
	ErrIntegrity = errors.New("vault data integrity fault")

	// ErrEncryption is returned when a field cannot be encrypted.
	ErrEncryption = errors.New("vault field encryption failed")

	// ErrStoreUnavailable wraps every store failure other than not-found.
	ErrStoreUnavailable = errors.New("vault store unavailable")

	// ErrWrongCredentials covers both an unknown login and a wrong password.
	ErrWrongCredentials = errors.New("wrong login or password")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
