package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2idPrefix = "argon2id$"

// ArgonParams tunes the Argon2id password hash.
type ArgonParams struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	SaltLen     int
	KeyLen      uint32
}

// DefaultArgonParams follows the OWASP baseline for Argon2id.
var DefaultArgonParams = ArgonParams{
	Memory:      64 * 1024,
	Time:        3,
	Parallelism: 1,
	SaltLen:     16,
	KeyLen:      32,
}

type argon2idHasher struct {
	params ArgonParams
}

// NewPasswordHasher returns an Argon2id [PasswordHasher].
func NewPasswordHasher(params ArgonParams) PasswordHasher {
	return &argon2idHasher{params: params}
}

// Hash implements [PasswordHasher]. The encoded form is
// argon2id$m=<M>,t=<T>,p=<P>$<b64(salt)>$<b64(key)>.
func (h *argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLen)

	return fmt.Sprintf("%sm=%d,t=%d,p=%d$%s$%s", argon2idPrefix,
		h.params.Memory, h.params.Time, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. Parameters are read from encoded, so
// hashes made with older settings keep verifying.
func (h *argon2idHasher) Verify(password, encoded string) (bool, error) {
	rest, ok := strings.CutPrefix(encoded, argon2idPrefix)
	if !ok {
		return false, ErrInvalidHash
	}
	parts := strings.Split(rest, "$")
	if len(parts) != 3 {
		return false, ErrInvalidHash
	}

	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[0], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false, ErrInvalidHash
	}
	if m == 0 || t == 0 || p == 0 {
		return false, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, ErrInvalidHash
	}
	keyRef, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(keyRef) == 0 {
		return false, ErrInvalidHash
	}

	key := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(keyRef)))

	return subtle.ConstantTimeCompare(key, keyRef) == 1, nil
}
