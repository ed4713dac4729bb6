// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// healthWorker pings probe every interval and reports the outcome. Only
// transitions are logged.
type healthWorker struct {
	probe    HealthProbe
	reporter HealthReporter
	interval time.Duration
	timeout  time.Duration

	logger *logger.Logger
}

// NewHealthWorker returns a worker that keeps reporter in sync with probe.
// A ping may take at most half the interval.
func NewHealthWorker(probe HealthProbe, reporter HealthReporter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = config.DefaultHealthCheckInterval
	}
	return &healthWorker{
		probe:    probe,
		reporter: reporter,
		interval: interval,
		timeout:  interval / 2,
		logger:   logger,
	}
}

func (h *healthWorker) Run(ctx context.Context) {
	h.logger.Info().Str("func", "healthWorker.Run").Dur("interval", h.interval).Msg("storage health worker started")

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var healthy *bool
	for {
		healthy = h.check(ctx, healthy)

		select {
		case <-ctx.Done():
			h.reporter.SetServing(false)
			h.logger.Info().Str("func", "healthWorker.Run").Msg("storage health worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (h *healthWorker) check(ctx context.Context, previous *bool) *bool {
	pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	err := h.probe.Ping(pingCtx)
	ok := err == nil
	h.reporter.SetServing(ok)

	if previous == nil || *previous != ok {
		if ok {
			h.logger.Info().Str("func", "healthWorker.check").Msg("storage is healthy")
		} else {
			h.logger.Err(err).Str("func", "healthWorker.check").Msg("storage is unhealthy")
		}
	}

	return &ok
}
