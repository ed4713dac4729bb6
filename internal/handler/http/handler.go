package http

import (
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	authLimiter    *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		authLimiter:    newIPRateLimiter(cfg.RateLimit, cfg.RateBurst),
		logger:         logger,
	}
}
