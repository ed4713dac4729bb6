package crypto

import "errors"

var (
	// ErrEmptySecret is returned when a cipher is constructed without a
	// secret. No fallback key exists.
	ErrEmptySecret = errors.New("cipher secret is empty")

	// ErrDecryption is the common cause of every failed Decrypt call.
	ErrDecryption = errors.New("decryption error")

	// ErrInvalidHash is returned when a stored password hash cannot be
	// parsed.
	ErrInvalidHash = errors.New("invalid password hash")
)
