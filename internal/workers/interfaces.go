// Package workers runs the background jobs of the vault server next to the
// transport servers. Every worker stops when its context is cancelled.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// HealthProbe is the dependency whose health is watched, the storages in
// production.
type HealthProbe interface {
	Ping(ctx context.Context) error
}

// HealthReporter publishes the probe result, e.g. the gRPC health server.
type HealthReporter interface {
	SetServing(serving bool)
}
