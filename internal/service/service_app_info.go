package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// appInfoService answers version queries with the value fixed at startup.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		logger.Error().Str("func", "NewAppInfoService").Msg("application version is empty")
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("func", "NewAppInfoService").Str("version", cfg.Version).Msg("creating app info service")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
