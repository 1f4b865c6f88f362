// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and hardcoded defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the backend endpoint and the credentials used to
	// authenticate against it.
	API API `envPrefix:"API_"`

	// Client holds behavior settings for the outbound HTTP client, such as
	// request timeout and token refresh policy.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags. Populated via the CONFIG environment variable or
	// the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the backend connection settings.
type API struct {
	// URL is the base URL of the backend instance
	// (e.g. "http://localhost:8055").
	// Env: API_URL
	URL string `env:"URL"`

	// Username is the account the client logs in with. The backend
	// identifies accounts by email address, so this is sent as the email
	// field of the login request.
	// Env: API_USERNAME
	Username string `env:"USERNAME"`

	// Password is the password for Username.
	// Env: API_PASSWORD
	Password string `env:"PASSWORD"`

	// StaticToken is an optional pre-issued access token. When set, the
	// client skips the password login entirely and authenticates every
	// request with this token.
	// Env: API_STATIC_TOKEN
	StaticToken string `env:"STATIC_TOKEN"`
}

// Client holds behavior settings for the outbound HTTP client.
type Client struct {
	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client aborts it (e.g. "30s", "1m").
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshMargin is how long before access token expiry a refresh is
	// attempted, both by the background refresh job and by the session
	// validity check.
	// Env: CLIENT_REFRESH_MARGIN
	RefreshMargin time.Duration `env:"REFRESH_MARGIN"`

	// DisableAutoRefresh turns off the background token refresh job. Expired
	// sessions are then refreshed lazily on the next client access.
	// Env: CLIENT_DISABLE_AUTO_REFRESH
	DisableAutoRefresh bool `env:"DISABLE_AUTO_REFRESH"`
}

// GetConfig loads, merges, and validates the application configuration from
// all non-flag sources in the following priority order (the first source to
// set a field wins):
//  1. Environment variables
//  2. JSON file (path resolved from source 1)
//  3. Hardcoded defaults
//
// It is safe to call from library code: command-line flags are left alone so
// the host application's own flag handling is not disturbed.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// GetCLIConfig behaves like [GetConfig] but additionally parses command-line
// flags, which take priority over the JSON file and defaults (environment
// variables still win). Intended for the sitectl binary.
func GetCLIConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
