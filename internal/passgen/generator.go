// Package passgen generates random passwords from selectable character
// classes and scores password strength.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	Uppercase    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase    = "abcdefghijklmnopqrstuvwxyz"
	Digits       = "0123456789"
	Symbols      = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	SimilarChars = "0O1lI"
)

const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 12
)

var (
	// ErrNoCharacterClass is returned when every character class is disabled.
	ErrNoCharacterClass = errors.New("at least one character type must be selected")
	// ErrInvalidLength is returned when the requested length is outside
	// [MinLength, MaxLength].
	ErrInvalidLength = errors.New("invalid password length")
)

// DefaultOptions mirrors the generator defaults of the web client: twelve
// characters from every class with look-alike characters removed.
func DefaultOptions() models.PasswordOptions {
	return models.PasswordOptions{
		Length:         DefaultLength,
		Uppercase:      true,
		Lowercase:      true,
		Digits:         true,
		Symbols:        true,
		ExcludeSimilar: true,
	}
}

// Charset returns the alphabet selected by opts.
func Charset(opts models.PasswordOptions) string {
	var sb strings.Builder
	if opts.Uppercase {
		sb.WriteString(Uppercase)
	}
	if opts.Lowercase {
		sb.WriteString(Lowercase)
	}
	if opts.Digits {
		sb.WriteString(Digits)
	}
	if opts.Symbols {
		sb.WriteString(Symbols)
	}

	charset := sb.String()
	if opts.ExcludeSimilar {
		charset = strings.Map(func(r rune) rune {
			if strings.ContainsRune(SimilarChars, r) {
				return -1
			}
			return r
		}, charset)
	}

	return charset
}

// Generate draws opts.Length characters uniformly from the selected
// alphabet using crypto/rand.
func Generate(opts models.PasswordOptions) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", fmt.Errorf("%w: must be between %d and %d", ErrInvalidLength, MinLength, MaxLength)
	}

	charset := Charset(opts)
	if charset == "" {
		return "", ErrNoCharacterClass
	}

	max := big.NewInt(int64(len(charset)))
	password := make([]byte, opts.Length)
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		password[i] = charset[n.Int64()]
	}

	return string(password), nil
}
