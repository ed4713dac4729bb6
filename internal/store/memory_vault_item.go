package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// memoryVaultItemRepository keeps vault items in process memory. Every
// operation holds the mutex for its whole duration, so the ownership check
// and the mutation cannot interleave with another writer.
type memoryVaultItemRepository struct {
	mu    sync.RWMutex
	items map[string]models.CipheredVaultItem
	ids   utils.IDGenerator
	now   func() time.Time
}

func NewMemoryVaultItemRepository() VaultItemRepository {
	return newMemoryVaultItemRepository()
}

func newMemoryVaultItemRepository() *memoryVaultItemRepository {
	return &memoryVaultItemRepository{
		items: make(map[string]models.CipheredVaultItem),
		ids:   utils.NewUUIDGenerator(),
		now:   storeNow,
	}
}

func (m *memoryVaultItemRepository) Create(ctx context.Context, item models.CipheredVaultItem) (models.CipheredVaultItem, error) {
	if err := ctx.Err(); err != nil {
		return models.CipheredVaultItem{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item.ID = m.ids.Generate()
	item.CreatedAt = m.now()
	item.UpdatedAt = item.CreatedAt
	m.items[item.ID] = item

	return item, nil
}

func (m *memoryVaultItemRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]models.CipheredVaultItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	items := make([]models.CipheredVaultItem, 0, 16)
	for _, item := range m.items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(items, func(a, b models.CipheredVaultItem) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return items, nil
}

func (m *memoryVaultItemRepository) FindOneByOwner(ctx context.Context, id, ownerID string) (models.CipheredVaultItem, error) {
	if err := ctx.Err(); err != nil {
		return models.CipheredVaultItem{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok || item.OwnerID != ownerID {
		return models.CipheredVaultItem{}, ErrVaultItemNotFound
	}

	return item, nil
}

func (m *memoryVaultItemRepository) Replace(ctx context.Context, id, ownerID string, fields models.CipheredVaultFields) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok || item.OwnerID != ownerID {
		return ErrVaultItemNotFound
	}

	item.Fields = fields
	item.UpdatedAt = m.now()
	m.items[id] = item

	return nil
}

func (m *memoryVaultItemRepository) Delete(ctx context.Context, id, ownerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok || item.OwnerID != ownerID {
		return ErrVaultItemNotFound
	}
	delete(m.items, id)

	return nil
}
