package tui

import "github.com/MKhiriev/go-pass-vault/models"

type listLoadedMsg struct {
	items []models.VaultItem
	err   error
}

type copiedMsg struct {
	label string
	err   error
}

type itemDeletedMsg struct {
	title string
	err   error
}

type clearStatusMsg struct{}
