package config

import (
	"time"
)

// ClientAdapter holds network settings used by the vaultctl transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the vault server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level vaultctl configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the vaultctl config from environment
// variables and the optional JSON file named by CONFIG. Command-line flags
// are owned by the CLI and applied on top by the caller.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		buildClient()
}
