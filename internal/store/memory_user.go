package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// memoryUserRepository keeps accounts in process memory, keyed by login.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byLogin map[string]models.User
	ids     utils.IDGenerator
	now     func() time.Time
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byLogin: make(map[string]models.User),
		ids:     utils.NewUUIDGenerator(),
		now:     storeNow,
	}
}

func (m *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byLogin[user.Login]; exists {
		return models.User{}, ErrLoginAlreadyExists
	}

	user.UserID = m.ids.Generate()
	user.CreatedAt = m.now()
	user.Password = ""
	m.byLogin[user.Login] = user

	return user, nil
}

func (m *memoryUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byLogin[login]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}
