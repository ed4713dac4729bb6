// Package tui implements the interactive vault browser started by
// "vaultctl browse".
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

var ErrUnexpectedModel = errors.New("unexpected final model")

// VaultClient is the part of the server adapter the browser needs.
type VaultClient interface {
	ListItems(ctx context.Context) ([]models.VaultItem, error)
	DeleteItem(ctx context.Context, id string) error
}

// Clipboard receives copied secrets.
type Clipboard interface {
	WriteAll(text string) error
}

// Browse runs the browser until the user quits or ctx is cancelled.
func Browse(ctx context.Context, client VaultClient, clipboard Clipboard, buildInfo models.AppBuildInfo) error {
	model := newBrowseModel(ctx, client, clipboard, buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(browseModel); !ok {
		return ErrUnexpectedModel
	}

	return nil
}
