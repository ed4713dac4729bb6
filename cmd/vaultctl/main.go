package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/cli"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	dir, err := cli.DefaultConfigDir()
	if err != nil {
		fail(err)
	}
	log := logger.NewFileLogger("vaultctl", filepath.Join(dir, "vaultctl.log"))

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		fail(err)
	}

	root := cli.NewRootCommand(cli.Options{
		BuildInfo: buildInfo,
		Config:    *cfg,
		Sessions:  cli.NewSessionStore(dir),
		Logger:    log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = root.ExecuteContext(ctx); err != nil {
		log.Err(err).Msg("command failed")
		stop()
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
