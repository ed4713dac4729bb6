// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// MinCipherSecretLength is the shortest accepted APP_CIPHER_SECRET.
const MinCipherSecretLength = 16

var supportedDrivers = []string{DriverPostgres, DriverSQLite, DriverMongoDB, DriverMemory}

// applyDefaults fills zero-valued optional settings. Secrets never get a
// default value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Storage.DB.Driver == DriverMongoDB && cfg.Storage.DB.Name == "" {
		cfg.Storage.DB.Name = DefaultMongoDatabaseName
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = DefaultRateLimit
	}
	if cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = DefaultRateBurst
	}
	if cfg.Workers.HealthCheckInterval == 0 {
		cfg.Workers.HealthCheckInterval = DefaultHealthCheckInterval
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.CipherSecret == "" {
		return fmt.Errorf("%w: cipher secret is not set", ErrInvalidAppConfigs)
	}
	if len(cfg.App.CipherSecret) < MinCipherSecretLength {
		return fmt.Errorf("%w: cipher secret must be at least %d bytes", ErrInvalidAppConfigs, MinCipherSecretLength)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is not set", ErrInvalidAppConfigs)
	}

	if !slices.Contains(supportedDrivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.Driver != DriverMemory && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database uri is not set", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: neither http nor grpc address is set", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
