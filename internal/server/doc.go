// Package server owns the vault's listeners. It starts the HTTP API and the
// gRPC health endpoint next to the background workers and drains all of
// them when SIGTERM, SIGINT or SIGQUIT arrives.
package server
