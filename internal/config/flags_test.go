package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":8080", want: NetAddress{Host: "", Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad ip", input: "example:8080", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-driver", "sqlite",
		"-d", "file:vault.db",
		"-db-name", "vault",
		"-config", "/etc/vault.json",
		"-cipher-secret", "flag-cipher-secret",
		"-token-sign-key", "flag-sign",
		"-token-issuer", "flag-issuer",
		"-token-duration", "2h",
		"-request-timeout", "15s",
		"-rate-limit", "3",
		"-rate-burst", "6",
		"-health-interval", "45s",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "vault", cfg.Storage.DB.Name)
	assert.Equal(t, "/etc/vault.json", cfg.JSONFilePath)
	assert.Equal(t, "flag-cipher-secret", cfg.App.CipherSecret)
	assert.Equal(t, "flag-sign", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, float64(3), cfg.Server.RateLimit)
	assert.Equal(t, 6, cfg.Server.RateBurst)
	assert.Equal(t, 45*time.Second, cfg.Workers.HealthCheckInterval)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nohostport"})
	assert.Error(t, err)
}
