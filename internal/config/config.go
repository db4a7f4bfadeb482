// Package config loads, merges, and validates the client configuration from
// environment variables, command-line flags, and an optional JSON file.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_" json:"app"`

	// Adapter holds the story API endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_" json:"adapter"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Adapter holds network settings for the outbound story API transport.
type Adapter struct {
	// BaseURL is the story API base URL (e.g. "https://story-api.example.com/v1").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB holds settings for the local bbolt database.
type DB struct {
	// Path is the file-system path of the bbolt database file.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH" json:"path"`
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
