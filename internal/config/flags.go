package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-url backend base URL, e.g. http://localhost:8055
//	-username backend login user
//	-password backend login password
//	-token static access token (skips password login)
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-refresh-margin how long before expiry tokens are refreshed
//	-c/-config json file path with configs
//
// Positional arguments are left for the caller to consume via flag.Args.
func ParseFlags() *StructuredConfig {
	var apiURL string
	var username string
	var password string
	var staticToken string
	var requestTimeout time.Duration
	var refreshMargin time.Duration
	var jsonConfigPath string

	flag.StringVar(&apiURL, "url", "", "Backend base URL")
	flag.StringVar(&username, "username", "", "Backend login user")
	flag.StringVar(&password, "password", "", "Backend login password")
	flag.StringVar(&staticToken, "token", "", "Static access token (skips login)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshMargin, "refresh-margin", 0, "Token refresh margin (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			URL:         apiURL,
			Username:    username,
			Password:    password,
			StaticToken: staticToken,
		},
		Client: Client{
			RequestTimeout: requestTimeout,
			RefreshMargin:  refreshMargin,
		},
		JSONFilePath: jsonConfigPath,
	}
}
