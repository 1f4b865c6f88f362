// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the backend client relies on. With the defaults source in the
// merge chain these hold for any normal startup; validation exists to catch
// explicitly broken values and programmatic misuse.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.API.URL) == "" {
		return ErrInvalidAPIConfigs
	}

	if cfg.API.StaticToken == "" && (cfg.API.Username == "" || cfg.API.Password == "") {
		return ErrMissingCredentials
	}

	if cfg.Client.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
