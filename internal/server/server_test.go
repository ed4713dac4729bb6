package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	myGRPC "github.com/MKhiriev/go-pass-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

type probeFunc func(ctx context.Context) error

func (f probeFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_GRPCPortInUse(t *testing.T) {
	grpcHandler := myGRPC.NewHandler(logger.Nop())
	first, err := newGRPCServer(grpcHandler, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	defer first.gRPCNetListener.Close()

	cfg := config.Server{GRPCAddress: first.gRPCNetListener.Addr().String()}
	_, err = NewServer(&handler.Handlers{GRPC: myGRPC.NewHandler(logger.Nop())}, nil, cfg, logger.Nop())
	require.Error(t, err)
}

func TestServer_RunServesHealthAndStopsOnCancel(t *testing.T) {
	grpcHandler := myGRPC.NewHandler(logger.Nop())
	healthy := workers.NewHealthWorker(probeFunc(func(context.Context) error { return nil }), grpcHandler, 10*time.Millisecond, logger.Nop())

	handlers := &handler.Handlers{GRPC: grpcHandler}
	srv, err := NewServer(handlers, workers.NewWorkers(healthy), config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	conn, err := grpc.NewClient(s.gRPCServer.gRPCNetListener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	require.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: myGRPC.VaultServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_HTTPOnlyStops(t *testing.T) {
	h, err := handler.NewHandlers(&service.Services{}, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(h, nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, srv.(*server).run(ctx))
}

func TestServer_RunWithoutTransports(t *testing.T) {
	err := (&server{logger: logger.Nop()}).run(context.Background())
	require.ErrorIs(t, err, errNothingToRun)
}
