// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultItemRepository is the SQL implementation of [VaultItemRepository]
// shared by the PostgreSQL and SQLite backends. Dialect differences are
// confined to the placeholder format carried by [DB].
type vaultItemRepository struct {
	*DB
	logger *logger.Logger
	ids    utils.IDGenerator
	now    func() time.Time
}

// NewVaultItemRepository constructs a [VaultItemRepository] backed by db.
func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	logger.Debug().Msg("creating vault item repository")
	return &vaultItemRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    storeNow,
	}
}

func (r *vaultItemRepository) Create(ctx context.Context, item models.CipheredVaultItem) (models.CipheredVaultItem, error) {
	log := logger.FromContext(ctx)

	item.ID = r.ids.Generate()
	item.CreatedAt = r.now()
	item.UpdatedAt = item.CreatedAt

	query, args, err := buildInsertVaultItemQuery(r.builder(), item)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.Create").Msg("failed to create query")
		return models.CipheredVaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.Create").
			Str("owner_id", item.OwnerID).
			Msg("failed to insert vault item")
		return models.CipheredVaultItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		log.Error().
			Str("func", "vaultItemRepository.Create").
			Str("owner_id", item.OwnerID).
			Msg("vault item was not saved")
		return models.CipheredVaultItem{}, ErrVaultItemNotSaved
	}

	log.Debug().
		Str("func", "vaultItemRepository.Create").
		Str("owner_id", item.OwnerID).
		Str("id", item.ID).
		Msg("vault item created")

	return item, nil
}

func (r *vaultItemRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]models.CipheredVaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultItemsByOwnerQuery(r.builder(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.FindAllByOwner").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var items []models.CipheredVaultItem
	err = r.withRetry(ctx, func() error {
		var queryErr error
		items, queryErr = r.queryItems(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.FindAllByOwner").
			Str("owner_id", ownerID).
			Msg("failed to get vault items")
		return nil, err
	}

	return items, nil
}

func (r *vaultItemRepository) FindOneByOwner(ctx context.Context, id, ownerID string) (models.CipheredVaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultItemQuery(r.builder(), id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.FindOneByOwner").Msg("failed to create query")
		return models.CipheredVaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.CipheredVaultItem
	err = r.withRetry(ctx, func() error {
		return scanVaultItem(r.DB.QueryRowContext(ctx, query, args...), &item)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.CipheredVaultItem{}, ErrVaultItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.FindOneByOwner").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to get vault item")
		return models.CipheredVaultItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *vaultItemRepository) Replace(ctx context.Context, id, ownerID string, fields models.CipheredVaultFields) error {
	log := logger.FromContext(ctx)

	query, args, err := buildReplaceVaultItemQuery(r.builder(), id, ownerID, fields, r.now())
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.Replace").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, "vaultItemRepository.Replace", id, ownerID, query, args...)
}

func (r *vaultItemRepository) Delete(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteVaultItemQuery(r.builder(), id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, "vaultItemRepository.Delete", id, ownerID, query, args...)
}

// execOwned runs a statement whose WHERE clause matches on both id and owner.
// No affected rows means the item is missing or owned by someone else.
func (r *vaultItemRepository) execOwned(ctx context.Context, funcName, id, ownerID, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		log.Debug().
			Str("func", funcName).
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("vault item not found for owner")
		return ErrVaultItemNotFound
	}

	return nil
}

func (r *vaultItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.CipheredVaultItem, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.CipheredVaultItem, 0, 16)
	for rows.Next() {
		var item models.CipheredVaultItem
		if err := scanVaultItem(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultItem(row rowScanner, item *models.CipheredVaultItem) error {
	return row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Fields.Title,
		&item.Fields.Username,
		&item.Fields.Password,
		&item.Fields.URL,
		&item.Fields.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
