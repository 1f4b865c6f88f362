// Package directus provides the access layer for a Directus headless CMS
// backend: a REST/GraphQL client with bearer-token authentication and
// automatic token refresh, plus a memoizing Provider that hands the shared
// client to the content fetchers.
package directus

import (
	"context"
	"time"
)

//go:generate mockgen -source=client.go -destination=../mock/directus_client_mock.go -package=mock

// Client defines the full capability set of an authenticated Directus
// backend connection. The concrete implementation is restClient; mocks are
// generated for tests.
type Client interface {
	// BaseURL returns the normalized root URL of the backend, without a
	// trailing slash.
	BaseURL() string

	// Login authenticates against POST /auth/login with the given
	// credentials. On success the client stores the access and refresh
	// tokens and, unless disabled, starts the background refresh job.
	// Returns an error wrapping ErrLogin if authentication fails.
	Login(ctx context.Context, username, password string) error

	// Refresh exchanges the held refresh token for a fresh token pair via
	// POST /auth/refresh. Returns an error wrapping ErrRefresh if the
	// client holds no refresh token or the exchange fails.
	Refresh(ctx context.Context) error

	// Logout invalidates the current session on the server via
	// POST /auth/logout, stops the refresh job, and clears all token
	// state. Token state is cleared even when the server call fails.
	Logout(ctx context.Context) error

	// StopRefreshing halts the background token refresh job and blocks
	// until it has exited. Safe to call at any time, including before
	// Login and repeatedly.
	StopRefreshing()

	// Token returns the access token currently held by the client, or an
	// empty string if none has been set.
	Token() string

	// SetToken stores token (whitespace-trimmed) for use in the
	// Authorization header of all subsequent requests. The token's expiry
	// is derived from its JWT claims; tokens that are not JWTs (such as
	// Directus static tokens) are treated as non-expiring.
	SetToken(token string)

	// TokenExpiresAt returns the expiry of the held access token. The
	// zero time means the token does not expire or no token is held.
	TokenExpiresAt() time.Time

	// Query executes a GraphQL query against POST /graphql. Execution
	// errors reported by the backend are joined and returned wrapping
	// ErrQuery. When out is non-nil the response's data object is
	// unmarshalled into it.
	Query(ctx context.Context, query string, variables map[string]any, out any) error

	// Request executes an arbitrary authenticated REST call against the
	// backend. body, when non-nil, is sent as JSON; when out is non-nil
	// the response body is unmarshalled into it.
	Request(ctx context.Context, method, path string, body, out any) error

	// Ping checks backend liveness via GET /server/ping. Returns an error
	// wrapping ErrPing unless the backend answers with "pong".
	Ping(ctx context.Context) error
}

// IsDirectusClient reports whether value provides the full Client
// capability set. It is a plain interface assertion, so nil values,
// primitives, and types missing any one method all report false.
func IsDirectusClient(value any) bool {
	_, ok := value.(Client)
	return ok
}
