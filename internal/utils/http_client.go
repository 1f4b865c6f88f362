// Package utils provides general-purpose helper utilities used across
// different parts of the application: HTTP client construction, JWT expiry
// introspection, and request identifier generation.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL with the given
// per-request timeout. Every outgoing request is stamped with a unique
// X-Request-ID header so individual calls can be traced in the backend's
// access logs.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	ids := NewRequestIDGenerator()

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", ids.Generate())
		return nil
	})

	return &HTTPClient{Client: cli}
}
