// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	repository store.VaultItemRepository
	cipher     crypto.FieldCipher
	validator  validators.Validator

	logger *logger.Logger
}

func NewVaultService(repository store.VaultItemRepository, cipher crypto.FieldCipher, validator validators.Validator, logger *logger.Logger) VaultService {
	return &vaultService{
		repository: repository,
		cipher:     cipher,
		validator:  validator,
		logger:     logger,
	}
}

func (s *vaultService) Create(ctx context.Context, ownerID string, fields models.VaultItemFields) (string, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return "", ErrUnauthenticated
	}

	if err := s.validator.Validate(ctx, fields); err != nil {
		log.Debug().Err(err).Str("func", "vaultService.Create").Str("owner_id", ownerID).Msg("invalid vault item")
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	ciphered, err := s.encryptFields(fields)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Create").Str("owner_id", ownerID).Msg("encryption failed")
		return "", err
	}

	created, err := s.repository.Create(ctx, models.CipheredVaultItem{OwnerID: ownerID, Fields: ciphered})
	if err != nil {
		log.Err(err).Str("func", "vaultService.Create").Str("owner_id", ownerID).Msg("error saving vault item")
		return "", storeFailure(err)
	}

	return created.ID, nil
}

func (s *vaultService) List(ctx context.Context, ownerID string) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return nil, ErrUnauthenticated
	}

	stored, err := s.repository.FindAllByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "vaultService.List").Str("owner_id", ownerID).Msg("error getting vault items")
		return nil, storeFailure(err)
	}

	items := make([]models.VaultItem, 0, len(stored))
	for _, c := range stored {
		item, err := s.decryptItem(c)
		if err != nil {
			log.Err(err).
				Str("func", "vaultService.List").
				Str("owner_id", ownerID).
				Str("id", c.ID).
				Msg("stored vault item cannot be decrypted")
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *vaultService) Update(ctx context.Context, ownerID, id string, fields models.VaultItemFields) error {
	log := logger.FromContext(ctx)

	if err := s.lookup(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.validator.Validate(ctx, fields); err != nil {
		log.Debug().Err(err).Str("func", "vaultService.Update").Str("id", id).Msg("invalid vault item")
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	ciphered, err := s.encryptFields(fields)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Update").Str("id", id).Msg("encryption failed")
		return err
	}

	if err = s.repository.Replace(ctx, id, ownerID, ciphered); err != nil {
		log.Err(err).Str("func", "vaultService.Update").Str("owner_id", ownerID).Str("id", id).Msg("error replacing vault item")
		return storeFailure(err)
	}

	return nil
}

func (s *vaultService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.lookup(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id, ownerID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultService.Delete").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("error deleting vault item")
		return storeFailure(err)
	}

	return nil
}

// lookup confirms that ownerID owns id. Malformed ids never reach the store.
func (s *vaultService) lookup(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return ErrUnauthenticated
	}
	if !utils.IsValidID(id) {
		return store.ErrVaultItemNotFound
	}

	if _, err := s.repository.FindOneByOwner(ctx, id, ownerID); err != nil {
		if !errors.Is(err, store.ErrVaultItemNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "vaultService.lookup").
				Str("owner_id", ownerID).
				Str("id", id).
				Msg("error looking up vault item")
		}
		return storeFailure(err)
	}

	return nil
}

func (s *vaultService) encryptFields(fields models.VaultItemFields) (models.CipheredVaultFields, error) {
	var out models.CipheredVaultFields
	for _, f := range []struct {
		dst *models.CipheredText
		src string
	}{
		{&out.Title, fields.Title},
		{&out.Username, fields.Username},
		{&out.Password, fields.Password},
		{&out.URL, fields.URL},
		{&out.Notes, fields.Notes},
	} {
		ct, err := s.cipher.Encrypt(f.src)
		if err != nil {
			return models.CipheredVaultFields{}, fmt.Errorf("%w: %w", ErrEncryption, err)
		}
		*f.dst = ct
	}

	return out, nil
}

func (s *vaultService) decryptItem(c models.CipheredVaultItem) (models.VaultItem, error) {
	item := models.VaultItem{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	for _, f := range []struct {
		dst *string
		src models.CipheredText
	}{
		{&item.Title, c.Fields.Title},
		{&item.Username, c.Fields.Username},
		{&item.Password, c.Fields.Password},
		{&item.URL, c.Fields.URL},
		{&item.Notes, c.Fields.Notes},
	} {
		pt, err := s.cipher.Decrypt(f.src)
		if err != nil {
			return models.VaultItem{}, fmt.Errorf("%w: %w", ErrIntegrity, err)
		}
		*f.dst = pt
	}

	return item, nil
}

// storeFailure keeps not-found recognisable and folds everything else into
// ErrStoreUnavailable.
func storeFailure(err error) error {
	if errors.Is(err, store.ErrVaultItemNotFound) {
		return store.ErrVaultItemNotFound
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
