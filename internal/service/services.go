package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

type Services struct {
	VaultService     VaultService
	AuthService      AuthService
	GeneratorService GeneratorService
	AppInfoService   AppInfoService
}

// NewServices wires the domain services on top of storages. It fails when
// the cipher secret is missing or the application version is unset.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewFieldCipher(cfg.App.CipherSecret)
	if err != nil {
		return nil, fmt.Errorf("error creating field cipher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewVaultValidator()

	return &Services{
		VaultService:     NewVaultService(storages.VaultItemRepository, cipher, validator, logger),
		AuthService:      NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(crypto.DefaultArgonParams), validator, cfg.App, logger),
		GeneratorService: NewGeneratorService(logger),
		AppInfoService:   appInfoService,
	}, nil
}
