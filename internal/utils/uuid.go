package utils

import "github.com/google/uuid"

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues time-ordered UUIDv7 identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id is a well-formed UUID.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}
