package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete or inconsistent.
var (
	// ErrInvalidAPIConfigs indicates invalid backend endpoint settings
	// (for example, an empty base URL).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrMissingCredentials indicates that neither a username/password pair
	// nor a static token is available to authenticate with.
	ErrMissingCredentials = errors.New("missing backend credentials")
	// ErrInvalidClientConfigs indicates invalid outbound client settings
	// (for example, a non-positive request timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
