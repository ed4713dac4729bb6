// Package grpc exposes the standard grpc.health.v1 service for the vault
// server. Load balancers and orchestrators probe it instead of the HTTP API.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// VaultServiceName is the service name reported next to the overall ("")
// server status.
const VaultServiceName = "gopassvault.Vault"

// Handler is the root gRPC transport handler. It owns the health server
// whose status the storage health worker keeps current.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose health status starts as NOT_SERVING
// until the first successful storage probe.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing flips both the overall and the vault service status.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(VaultServiceName, status)
}

// Shutdown reports NOT_SERVING permanently so clients drain before the
// listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
