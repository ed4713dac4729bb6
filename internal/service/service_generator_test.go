package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/passgen"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestGeneratorService_Generate(t *testing.T) {
	svc := NewGeneratorService(logger.Nop())

	got, err := svc.Generate(context.Background(), passgen.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, got.Password, passgen.DefaultLength)
	assert.Equal(t, passgen.Strength(got.Password), got.Strength)
	assert.Equal(t, passgen.StrengthLabel(got.Strength), got.Label)
}

func TestGeneratorService_Generate_InvalidOptions(t *testing.T) {
	svc := NewGeneratorService(logger.Nop())

	tests := []struct {
		name    string
		opts    models.PasswordOptions
		wantErr error
	}{
		{"too short", models.PasswordOptions{Length: passgen.MinLength - 1, Lowercase: true}, passgen.ErrInvalidLength},
		{"too long", models.PasswordOptions{Length: passgen.MaxLength + 1, Lowercase: true}, passgen.ErrInvalidLength},
		{"no classes", models.PasswordOptions{Length: 16}, passgen.ErrNoCharacterClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.opts)
			require.ErrorIs(t, err, ErrValidation)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
