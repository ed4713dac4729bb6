// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultItemFields is the plaintext content of a vault item as submitted by a
// client. Title, Username and Password are mandatory; URL and Notes default
// to the empty string.
type VaultItemFields struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
}

// VaultItem is the decrypted view of a stored item returned to its owner.
// The owner identifier is deliberately absent from the JSON form.
type VaultItem struct {
	ID string `json:"id"`
	VaultItemFields
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CipheredVaultItem is the at-rest form of a vault item.
//
// ID, CreatedAt and UpdatedAt are assigned by the store. OwnerID is set once
// on creation and never changes.
type CipheredVaultItem struct {
	ID        string
	OwnerID   string
	Fields    CipheredVaultFields
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the name of the table (or collection) holding vault
// items.
func (CipheredVaultItem) TableName() string {
	return "vault_items"
}
