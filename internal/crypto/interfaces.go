package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// FieldCipher encrypts and decrypts individual vault fields with a single
// process-wide key.
//
// Encrypt is non-deterministic: two calls with the same plaintext return
// different ciphertexts. Decrypt(Encrypt(t)) == t for every t, including "".
type FieldCipher interface {
	// Encrypt seals plaintext and returns its self-describing at-rest form.
	Encrypt(plaintext string) (models.CipheredText, error)

	// Decrypt reverses Encrypt. Any malformed, truncated, tampered or
	// foreign-key ciphertext yields an error wrapping ErrDecryption.
	Decrypt(ciphertext models.CipheredText) (string, error)
}

// PasswordHasher turns account passwords into salted one-way hashes and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns an encoded hash that embeds its own parameters and salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value yields ErrInvalidHash.
	Verify(password, encoded string) (bool, error)
}
