package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Harness
// ─────────────────────────────────────────────

type recordingClipboard struct {
	text string
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

type harness struct {
	t          *testing.T
	client     *mock.MockServerAdapter
	sessions   *SessionStore
	clipboard  *recordingClipboard
	adapterCfg config.ClientAdapter
	browsed    bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &harness{
		t:         t,
		client:    mock.NewMockServerAdapter(ctrl),
		sessions:  NewSessionStore(t.TempDir()),
		clipboard: &recordingClipboard{},
	}
}

// run executes vaultctl with args and returns stdout and the error.
func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	root := NewRootCommand(Options{
		BuildInfo: models.NewAppBuildInfo("v0.1.0", "2026-10-19", "abc123"),
		Config: config.ClientConfig{Adapter: config.ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		}},
		Sessions: h.sessions,
		NewAdapter: func(cfg config.ClientAdapter, _ *logger.Logger) (adapter.ServerAdapter, error) {
			h.adapterCfg = cfg
			return h.client, nil
		},
		Clipboard: h.clipboard,
		Browse: func(_ context.Context, client tui.VaultClient, clip tui.Clipboard, _ models.AppBuildInfo) error {
			h.browsed = true
			assert.Same(h.t, h.client, client)
			assert.Same(h.t, h.clipboard, clip)
			return nil
		},
	})

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) loggedIn(token string) {
	h.t.Helper()
	require.NoError(h.t, h.sessions.Save(token))
	h.client.EXPECT().SetToken(token).AnyTimes()
}

func sampleItems() []models.VaultItem {
	return []models.VaultItem{
		{ID: "id-2", VaultItemFields: models.VaultItemFields{Title: "Mail", Username: "me", Password: "mail-pw"}},
		{ID: "id-1", VaultItemFields: models.VaultItemFields{Title: "Bank", Username: "alice", Password: "bank-pw", URL: "https://bank", Notes: "pin in safe"}},
	}
}

// ─────────────────────────────────────────────
// register / login / logout
// ─────────────────────────────────────────────

func TestLogin_SavesSession(t *testing.T) {
	h := newHarness(t)
	h.client.EXPECT().
		Login(gomock.Any(), models.User{Login: "alice", Password: "s3cret"}).
		Return("tok-1", nil)

	out, err := h.run("", "login", "--login", "alice", "--password", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "Logged in as alice\n", out)
	token, err := h.sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	info, err := os.Stat(h.sessions.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRegister_PromptsForPassword(t *testing.T) {
	h := newHarness(t)
	h.client.EXPECT().
		Register(gomock.Any(), models.User{Login: "bob", Password: "typed-pw"}).
		Return("tok-2", nil)

	out, err := h.run("typed-pw\n", "register", "-l", "bob")

	require.NoError(t, err)
	assert.Equal(t, "Registered as bob\n", out)
}

func TestLogin_Failures(t *testing.T) {
	t.Run("empty password", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run("\n", "login", "-l", "alice")
		require.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("missing login flag", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run("", "login", "-p", "x")
		require.Error(t, err)
	})

	t.Run("wrong credentials keep no session", func(t *testing.T) {
		h := newHarness(t)
		h.client.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("%w: unauthorized", adapter.ErrUnauthorized))

		_, err := h.run("", "login", "-l", "alice", "-p", "bad")

		require.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.Contains(t, err.Error(), "vaultctl login")
		_, err = h.sessions.Load()
		assert.ErrorIs(t, err, ErrNoSession)
	})
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.sessions.Save("tok"))

	out, err := h.run("", "logout")

	require.NoError(t, err)
	assert.Equal(t, "Logged out\n", out)
	_, err = h.sessions.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestGlobalFlagsOverrideConfig(t *testing.T) {
	h := newHarness(t)
	h.client.EXPECT().Login(gomock.Any(), gomock.Any()).Return("tok", nil)

	_, err := h.run("", "--server", "vault.local:9000", "--timeout", "3s", "login", "-l", "a", "-p", "b")

	require.NoError(t, err)
	assert.Equal(t, config.ClientAdapter{HTTPAddress: "vault.local:9000", RequestTimeout: 3 * time.Second}, h.adapterCfg)
}

// ─────────────────────────────────────────────
// list / add / update / delete / copy
// ─────────────────────────────────────────────

func TestList(t *testing.T) {
	t.Run("masks passwords by default", func(t *testing.T) {
		h := newHarness(t)
		h.loggedIn("tok")
		h.client.EXPECT().ListItems(gomock.Any()).Return(sampleItems(), nil)

		out, err := h.run("", "list")

		require.NoError(t, err)
		assert.Contains(t, out, "Mail")
		assert.Contains(t, out, "https://bank")
		assert.Less(t, strings.Index(out, "id-2"), strings.Index(out, "id-1"))
		assert.NotContains(t, out, "bank-pw")
	})

	t.Run("shows passwords on request", func(t *testing.T) {
		h := newHarness(t)
		h.loggedIn("tok")
		h.client.EXPECT().ListItems(gomock.Any()).Return(sampleItems(), nil)

		out, err := h.run("", "list", "--show-passwords")

		require.NoError(t, err)
		assert.Contains(t, out, "bank-pw")
	})

	t.Run("empty vault", func(t *testing.T) {
		h := newHarness(t)
		h.loggedIn("tok")
		h.client.EXPECT().ListItems(gomock.Any()).Return([]models.VaultItem{}, nil)

		out, err := h.run("", "ls")

		require.NoError(t, err)
		assert.Equal(t, "Vault is empty\n", out)
	})

	t.Run("without session", func(t *testing.T) {
		h := newHarness(t)
		h.client.EXPECT().ListItems(gomock.Any()).Return(nil, adapter.ErrNoToken)

		_, err := h.run("", "list")

		require.ErrorIs(t, err, adapter.ErrNoToken)
		assert.Contains(t, err.Error(), "vaultctl login")
	})
}

func TestAdd(t *testing.T) {
	h := newHarness(t)
	h.loggedIn("tok")
	h.client.EXPECT().
		CreateItem(gomock.Any(), models.VaultItemFields{Title: "Bank", Username: "alice", Password: "p@ss", URL: "https://bank"}).
		Return("new-id", nil)

	out, err := h.run("", "add", "-t", "Bank", "-u", "alice", "-p", "p@ss", "--url", "https://bank")

	require.NoError(t, err)
	assert.Equal(t, "new-id\n", out)
}

func TestAdd_GeneratedPassword(t *testing.T) {
	h := newHarness(t)
	h.loggedIn("tok")
	h.client.EXPECT().
		CreateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.VaultItemFields) (string, error) {
			assert.Len(t, f.Password, 12)
			return "gen-id", nil
		})

	_, err := h.run("", "add", "-t", "Site", "-u", "me", "--generate")
	require.NoError(t, err)
}

func TestAdd_ValidationFromServer(t *testing.T) {
	h := newHarness(t)
	h.loggedIn("tok")
	h.client.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("%w: invalid request", adapter.ErrValidation))

	_, err := h.run("", "add", "-t", "Bank")
	require.ErrorIs(t, err, adapter.ErrValidation)
}

func TestUpdate_KeepsUnchangedFields(t *testing.T) {
	h := newHarness(t)
	h.loggedIn("tok")
	gomock.InOrder(
		h.client.EXPECT().ListItems(gomock.Any()).Return(sampleItems(), nil),
		h.client.EXPECT().UpdateItem(gomock.Any(), "id-1", models.VaultItemFields{
			Title: "Bank", Username: "alice", Password: "new-pw", URL: "https://bank", Notes: "",
		}).Return(nil),
	)

	out, err := h.run("", "update", "id-1", "-p", "new-pw", "--notes", "")

	require.NoError(t, err)
	assert.Equal(t, "Updated id-1\n", out)
}

func TestUpdate_Errors(t *testing.T) {
	t.Run("no field flags", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run("", "update", "id-1")
		require.ErrorIs(t, err, ErrNothingToUpdate)
	})

	t.Run("unknown id", func(t *testing.T) {
		h := newHarness(t)
		h.loggedIn("tok")
		h.client.EXPECT().ListItems(gomock.Any()).Return(sampleItems(), nil)

		_, err := h.run("", "update", "missing", "-t", "x")
		require.ErrorIs(t, err, adapter.ErrNotFound)
	})

	t.Run("password and generate together", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run("", "update", "id-1", "-p", "x", "-g")
		require.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	h.loggedIn("tok")
	h.client.EXPECT().DeleteItem(gomock.Any(), "id-1").Return(nil)
	h.client.EXPECT().DeleteItem(gomock.Any(), "id-1").Return(fmt.Errorf("%w: not found", adapter.ErrNotFound))

	out, err := h.run("", "delete", "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Deleted id-1\n", out)

	_, err = h.run("", "rm", "id-1")
	require.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestCopy(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "password by default", args: []string{"copy", "id-1"}, want: "bank-pw"},
		{name: "username", args: []string{"copy", "id-1", "--field", "username"}, want: "alice"},
		{name: "unknown field", args: []string{"copy", "id-1", "-f", "notes"}, wantErr: ErrUnknownField},
		{name: "unknown id", args: []string{"copy", "nope"}, wantErr: adapter.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.loggedIn("tok")
			h.client.EXPECT().ListItems(gomock.Any()).Return(sampleItems(), nil)

			out, err := h.run("", tt.args...)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, h.clipboard.text)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.clipboard.text)
			assert.Contains(t, out, `"Bank"`)
			assert.NotContains(t, out, tt.want)
		})
	}
}

// ─────────────────────────────────────────────
// generate / browse / version
// ─────────────────────────────────────────────

func TestGenerate_Local(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "generate", "-n", "20", "--no-symbols")

	require.NoError(t, err)
	password := strings.TrimSpace(out)
	assert.Len(t, password, 20)
	assert.NotContains(t, password, "!")
}

func TestGenerate_LocalInvalid(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "generate", "--no-upper", "--no-lower", "--no-digits", "--no-symbols")
	require.Error(t, err)
}

func TestGenerate_Remote(t *testing.T) {
	h := newHarness(t)
	h.client.EXPECT().
		GeneratePassword(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts models.PasswordOptions) (models.GeneratedPassword, error) {
			assert.Equal(t, 16, opts.Length)
			assert.False(t, opts.Digits)
			return models.GeneratedPassword{Password: "from-server", Strength: 4, Label: "Strong"}, nil
		})

	out, err := h.run("", "generate", "--remote", "-n", "16", "--no-digits")

	require.NoError(t, err)
	assert.Equal(t, "from-server\n", out)
}

func TestBrowse(t *testing.T) {
	t.Run("requires session", func(t *testing.T) {
		h := newHarness(t)
		h.client.EXPECT().Token().Return("")

		_, err := h.run("", "browse")

		require.ErrorIs(t, err, adapter.ErrNoToken)
		assert.False(t, h.browsed)
	})

	t.Run("runs browser", func(t *testing.T) {
		h := newHarness(t)
		h.loggedIn("tok")
		h.client.EXPECT().Token().Return("tok")

		_, err := h.run("", "browse")

		require.NoError(t, err)
		assert.True(t, h.browsed)
	})
}

func TestVersion(t *testing.T) {
	t.Run("with server", func(t *testing.T) {
		h := newHarness(t)
		h.client.EXPECT().ServerVersion(gomock.Any()).Return("v9.9.9", nil)

		out, err := h.run("", "version")

		require.NoError(t, err)
		assert.Contains(t, out, "Client version: v0.1.0")
		assert.Contains(t, out, "Build commit: abc123")
		assert.Contains(t, out, "Server version: v9.9.9")
	})

	t.Run("server down", func(t *testing.T) {
		h := newHarness(t)
		h.client.EXPECT().ServerVersion(gomock.Any()).Return("", errors.New("connection refused"))

		out, err := h.run("", "version")

		require.NoError(t, err)
		assert.Contains(t, out, "Server version: unreachable")
	})
}
