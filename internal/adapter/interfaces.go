// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer vaultctl uses to talk to the
// go-pass-vault server.
//
// [ServerAdapter] hides the REST details behind plain Go calls. Non-2xx
// responses are mapped by mapHTTPError to the sentinel errors in errors.go,
// so callers can branch with [errors.Is] (for example [ErrUnauthorized] on
// 401 or [ErrNotFound] on 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the vault API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every vault request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (string, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (string, error)

	// ListItems returns the caller's decrypted items, newest first.
	ListItems(ctx context.Context) ([]models.VaultItem, error)

	// CreateItem stores a new item and returns its id.
	CreateItem(ctx context.Context, fields models.VaultItemFields) (string, error)

	// UpdateItem replaces all fields of the item with the given id.
	UpdateItem(ctx context.Context, id string, fields models.VaultItemFields) error

	// DeleteItem removes the item with the given id.
	DeleteItem(ctx context.Context, id string) error

	// GeneratePassword asks the server for a random password.
	GeneratePassword(ctx context.Context, opts models.PasswordOptions) (models.GeneratedPassword, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
