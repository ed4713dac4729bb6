// Package cli implements the vaultctl command tree.
package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

// AdapterFactory builds the server adapter once flags are parsed.
type AdapterFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.ServerAdapter, error)

// BrowseFunc runs the interactive browser.
type BrowseFunc func(ctx context.Context, client tui.VaultClient, clipboard tui.Clipboard, buildInfo models.AppBuildInfo) error

type Options struct {
	BuildInfo  models.AppBuildInfo
	Config     config.ClientConfig
	Sessions   *SessionStore
	NewAdapter AdapterFactory
	Clipboard  tui.Clipboard
	Browse     BrowseFunc
	Logger     *logger.Logger
}

type app struct {
	opts Options

	server  string
	timeout time.Duration

	adapter adapter.ServerAdapter
}

// NewRootCommand assembles vaultctl. Zero-valued options fall back to the
// production implementations.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.NewAdapter == nil {
		opts.NewAdapter = adapter.NewHTTPServerAdapter
	}
	if opts.Clipboard == nil {
		opts.Clipboard = systemClipboard{}
	}
	if opts.Browse == nil {
		opts.Browse = tui.Browse
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "vaultctl",
		Short:         "Command-line client for go-pass-vault",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(a.opts.Logger.WithContext(cmd.Context()))
		},
	}

	root.PersistentFlags().StringVar(&a.server, "server", "", "server address (default from ADAPTER_ADDRESS)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "request timeout (default from ADAPTER_REQUEST_TIMEOUT)")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.listCommand(),
		a.addCommand(),
		a.updateCommand(),
		a.deleteCommand(),
		a.copyCommand(),
		a.generateCommand(),
		a.browseCommand(),
		a.versionCommand(),
	)

	return root
}

// client returns the adapter with the saved session token applied.
func (a *app) client() (adapter.ServerAdapter, error) {
	if a.adapter != nil {
		return a.adapter, nil
	}

	cfg := a.opts.Config.Adapter
	if a.server != "" {
		cfg.HTTPAddress = a.server
	}
	if a.timeout > 0 {
		cfg.RequestTimeout = a.timeout
	}

	client, err := a.opts.NewAdapter(cfg, a.opts.Logger)
	if err != nil {
		return nil, err
	}

	token, err := a.opts.Sessions.Load()
	switch {
	case err == nil:
		client.SetToken(token)
	case !errors.Is(err, ErrNoSession):
		return nil, err
	}

	a.adapter = client
	return client, nil
}
