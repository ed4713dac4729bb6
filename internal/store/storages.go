package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages bundles the repositories of one backend with its lifecycle hooks.
type Storages struct {
	UserRepository      UserRepository
	VaultItemRepository VaultItemRepository

	health  HealthChecker
	closeFn func() error
}

// NewStorages connects to the backend named by cfg.Driver, applies SQL
// migrations where relevant and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)

	case config.DriverMongoDB:
		db, err := NewConnectMongo(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository:      NewMongoUserRepository(db),
			VaultItemRepository: NewMongoVaultItemRepository(db),
			health:              db,
			closeFn:             db.Close,
		}, nil

	case config.DriverMemory, "":
		log.Warn().Str("func", "NewStorages").Msg("using in-memory storage, data is lost on restart")
		return NewMemoryStorages(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
}

func newSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "newSQLStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		VaultItemRepository: NewVaultItemRepository(db, log),
		health:              db,
		closeFn:             db.Close,
	}, nil
}

// NewMemoryStorages returns process-local repositories.
func NewMemoryStorages() *Storages {
	return &Storages{
		UserRepository:      NewMemoryUserRepository(),
		VaultItemRepository: NewMemoryVaultItemRepository(),
	}
}

// Ping reports whether the backend is reachable. In-memory storage is always
// reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.health == nil {
		return nil
	}
	return s.health.Ping(ctx)
}

func (s *Storages) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// storeNow is the default clock of every repository. Microsecond precision
// matches what PostgreSQL keeps, so timestamps survive a round trip.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
