package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultItemRepository persists ciphered vault items.
//
// Every lookup and mutation is scoped to an owner. An item that exists but
// belongs to another owner is reported exactly like a missing one, with
// [ErrVaultItemNotFound]. The ownership check and the mutation happen in a
// single storage operation.
type VaultItemRepository interface {
	// Create stores item under item.OwnerID, assigning ID, CreatedAt and
	// UpdatedAt. The stored item is returned.
	Create(ctx context.Context, item models.CipheredVaultItem) (models.CipheredVaultItem, error)

	// FindAllByOwner returns the owner's items, newest first. An owner with
	// no items gets an empty, non-nil slice.
	FindAllByOwner(ctx context.Context, ownerID string) ([]models.CipheredVaultItem, error)

	// FindOneByOwner returns the item with id if ownerID owns it.
	FindOneByOwner(ctx context.Context, id, ownerID string) (models.CipheredVaultItem, error)

	// Replace overwrites all five fields of the owned item and refreshes
	// UpdatedAt.
	Replace(ctx context.Context, id, ownerID string, fields models.CipheredVaultFields) error

	// Delete removes the owned item.
	Delete(ctx context.Context, id, ownerID string) error
}

// UserRepository persists vault accounts.
type UserRepository interface {
	// CreateUser stores user, assigning UserID and CreatedAt. A duplicate
	// login yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin yields [ErrNoUserWasFound] when no account matches.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
