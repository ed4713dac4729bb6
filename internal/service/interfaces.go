package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultService is the only path between callers and stored vault items. It
// validates input, encrypts on write, decrypts on read and scopes every
// store call to ownerID.
//
// An item that does not exist, belongs to another owner or has a malformed id
// is reported as store.ErrVaultItemNotFound in every case.
type VaultService interface {
	// Create validates and encrypts fields, stores them under ownerID and
	// returns the new item id.
	Create(ctx context.Context, ownerID string, fields models.VaultItemFields) (string, error)

	// List returns the owner's items decrypted, newest first. A single
	// undecryptable item fails the whole call with ErrIntegrity.
	List(ctx context.Context, ownerID string) ([]models.VaultItem, error)

	// Update replaces all five fields of an owned item.
	Update(ctx context.Context, ownerID, id string, fields models.VaultItemFields) error

	// Delete removes an owned item.
	Delete(ctx context.Context, ownerID, id string) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// GeneratorService produces random passwords.
type GeneratorService interface {
	Generate(ctx context.Context, opts models.PasswordOptions) (models.GeneratedPassword, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
