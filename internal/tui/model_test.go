package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/models"
)

type fakeClient struct {
	items   []models.VaultItem
	listErr error
	deleted []string
}

func (f *fakeClient) ListItems(context.Context) ([]models.VaultItem, error) {
	return f.items, f.listErr
}

func (f *fakeClient) DeleteItem(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func sampleItems() []models.VaultItem {
	return []models.VaultItem{
		{ID: "2", VaultItemFields: models.VaultItemFields{Title: "Mail", Username: "me@mail", Password: "mail-pw"}},
		{ID: "1", VaultItemFields: models.VaultItemFields{Title: "Bank", Username: "alice", Password: "bank-pw", URL: "https://bank"}},
	}
}

func keyRune(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

// step feeds msg to the model and returns the updated model and the message
// produced by the returned command, if any.
func step(t *testing.T, m browseModel, msg tea.Msg) (browseModel, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(browseModel)
	require.True(t, ok)
	if cmd == nil {
		return bm, nil
	}
	return bm, cmd()
}

func loaded(t *testing.T, client *fakeClient, clip *fakeClipboard) browseModel {
	t.Helper()
	m := newBrowseModel(context.Background(), client, clip, models.NewAppBuildInfo("v1", "today", "abc"))
	msg := m.Init()()
	m, _ = step(t, m, msg)
	require.False(t, m.loading)
	return m
}

func TestBrowse_EnterCopiesSelectedPassword(t *testing.T) {
	clip := &fakeClipboard{}
	m := loaded(t, &fakeClient{items: sampleItems()}, clip)

	m, msg := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.IsType(t, copiedMsg{}, msg)
	assert.Equal(t, "mail-pw", clip.text)

	m, _ = step(t, m, msg)
	assert.Contains(t, m.View(), "Password copied to clipboard")

	m, _ = step(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestBrowse_CursorThenCopyUsername(t *testing.T) {
	clip := &fakeClipboard{}
	m := loaded(t, &fakeClient{items: sampleItems()}, clip)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	_, msg := step(t, m, keyRune("u"))

	require.IsType(t, copiedMsg{}, msg)
	assert.Equal(t, "alice", clip.text)
}

func TestBrowse_DetailMasksPassword(t *testing.T) {
	m := loaded(t, &fakeClient{items: sampleItems()}, &fakeClipboard{})

	m, _ = step(t, m, keyRune("o"))
	require.Equal(t, modeDetail, m.mode)

	view := m.View()
	assert.Contains(t, view, "Mail")
	assert.Contains(t, view, "me@mail")
	assert.NotContains(t, view, "mail-pw")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
}

func TestBrowse_DeleteNeedsConfirmation(t *testing.T) {
	client := &fakeClient{items: sampleItems()}
	m := loaded(t, client, &fakeClipboard{})

	m, _ = step(t, m, keyRune("d"))
	require.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), `Delete "Mail"?`)

	m, msg := step(t, m, keyRune("n"))
	assert.Nil(t, msg)
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, client.deleted)

	m, _ = step(t, m, keyRune("d"))
	m, msg = step(t, m, keyRune("y"))
	require.Equal(t, itemDeletedMsg{title: "Mail"}, msg)
	assert.Equal(t, []string{"2"}, client.deleted)

	m, _ = step(t, m, msg)
	assert.Contains(t, m.View(), `"Mail" deleted`)
}

func TestBrowse_ErrorsShowOverlay(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"expired session", fmt.Errorf("%w: unauthorized", adapter.ErrUnauthorized), "vaultctl login"},
		{"no session", adapter.ErrNoToken, "vaultctl login"},
		{"server down", errors.New("dial tcp 127.0.0.1:8080: connection refused"), "server is unavailable"},
		{"timeout", fmt.Errorf("list: %w", context.DeadlineExceeded), "server is unavailable"},
		{"throttled", adapter.ErrTooManyRequests, "Too many requests"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newBrowseModel(context.Background(), &fakeClient{listErr: tt.err}, &fakeClipboard{}, models.AppBuildInfo{})
			m, _ = step(t, m, m.Init()())

			assert.Contains(t, m.View(), tt.want)

			m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			assert.Nil(t, m.lastErr)
		})
	}
}

func TestBrowse_ClipboardFailure(t *testing.T) {
	m := loaded(t, &fakeClient{items: sampleItems()}, &fakeClipboard{err: errors.New("no xclip")})

	m, msg := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, msg)

	assert.Contains(t, m.View(), "no xclip")
}

func TestBrowse_BuildInfoAndQuit(t *testing.T) {
	m := loaded(t, &fakeClient{items: sampleItems()}, &fakeClipboard{})

	m, _ = step(t, m, keyRune("v"))
	assert.Contains(t, m.View(), "v1")
	assert.Contains(t, m.View(), "abc")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)

	_, msg := step(t, m, keyRune("q"))
	assert.Equal(t, tea.QuitMsg{}, msg)
}

func TestBrowse_EmptyVault(t *testing.T) {
	clip := &fakeClipboard{}
	m := loaded(t, &fakeClient{}, clip)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, clip.text)
	assert.Equal(t, modeList, m.mode)
}
