// Package config provides configuration loading, merging, and validation
// facilities for the vault server and the vaultctl client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Optional settings receive defaults after merging. Secrets
// (APP_CIPHER_SECRET, APP_TOKEN_SIGN_KEY) never do: a server config without
// them fails validation.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
