package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/passgen"
	"github.com/MKhiriev/go-pass-vault/models"
)

type generatorService struct {
	logger *logger.Logger
}

func NewGeneratorService(logger *logger.Logger) GeneratorService {
	return &generatorService{logger: logger}
}

// Generate returns a password drawn from opts together with its strength.
// Invalid options are reported as ErrValidation.
func (g *generatorService) Generate(ctx context.Context, opts models.PasswordOptions) (models.GeneratedPassword, error) {
	password, err := passgen.Generate(opts)
	if errors.Is(err, passgen.ErrInvalidLength) || errors.Is(err, passgen.ErrNoCharacterClass) {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "generatorService.Generate").
			Int("length", opts.Length).
			Msg("password generation rejected")
		return models.GeneratedPassword{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "generatorService.Generate").Msg("password generation failed")
		return models.GeneratedPassword{}, err
	}

	score := passgen.Strength(password)
	return models.GeneratedPassword{
		Password: password,
		Strength: score,
		Label:    passgen.StrengthLabel(score),
	}, nil
}
