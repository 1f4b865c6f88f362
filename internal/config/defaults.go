// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Hardcoded fallbacks for a local development backend. Each field applies
// independently: setting API_URL alone still leaves the default credentials
// in place, and vice versa.
const (
	DefaultAPIURL   = "http://localhost:8055"
	DefaultUsername = "admin"
	DefaultPassword = "password"

	DefaultRequestTimeout = 30 * time.Second
	DefaultRefreshMargin  = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			URL:      DefaultAPIURL,
			Username: DefaultUsername,
			Password: DefaultPassword,
		},
		Client: Client{
			RequestTimeout: DefaultRequestTimeout,
			RefreshMargin:  DefaultRefreshMargin,
		},
	}
}
