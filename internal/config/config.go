// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-vault-cipher. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the vault server address and outbound request
	// timeouts used by the API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local cipher cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for bulk decryption dispatch.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the optional path the application log is appended to;
	// empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// ServerAddress is the base URL of the vault server API
	// (e.g. "https://vault.example.com/api").
	// Env: ADAPTER_ADDRESS
	ServerAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the local cache database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local cache database.
type DB struct {
	// DSN is the SQLite data source name of the encrypted cipher cache
	// (e.g. "/home/user/.vault/cache.db"). Empty selects an in-memory
	// cache that does not survive the process.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for bulk decryption dispatch.
type Workers struct {
	// PoolSize is the number of goroutines used for pooled bulk
	// decryption. Zero selects the built-in default.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
