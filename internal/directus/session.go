package directus

import (
	"context"
	"sync"
	"time"
)

// Session wraps an authenticated Client with an expiry check and explicit
// refresh/invalidate operations. The Provider consults the session before
// handing out the client, so callers never receive a connection whose token
// is about to lapse.
type Session struct {
	client Client
	margin time.Duration

	mu      sync.Mutex
	invalid bool
}

// NewSession wraps client in a Session. A token is considered expired margin
// before its actual expiry, leaving room for in-flight requests to complete
// with a still-valid token.
func NewSession(client Client, margin time.Duration) *Session {
	return &Session{client: client, margin: margin}
}

// Client returns the wrapped client.
func (s *Session) Client() Client {
	return s.client
}

// ExpiresAt returns the expiry of the client's current access token.
func (s *Session) ExpiresAt() time.Time {
	return s.client.TokenExpiresAt()
}

// Valid reports whether the session can still be used as-is. An invalidated
// session is never valid. A zero expiry means the token does not expire
// (static tokens), so the session stays valid until invalidated.
func (s *Session) Valid() bool {
	s.mu.Lock()
	invalid := s.invalid
	s.mu.Unlock()

	if invalid {
		return false
	}

	expiry := s.client.TokenExpiresAt()
	if expiry.IsZero() {
		return true
	}
	return time.Now().Before(expiry.Add(-s.margin))
}

// Refresh renews the client's token pair. On success any previous
// invalidation is cleared, making the session valid again.
func (s *Session) Refresh(ctx context.Context) error {
	if err := s.client.Refresh(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.invalid = false
	s.mu.Unlock()
	return nil
}

// Invalidate marks the session unusable regardless of token expiry. The next
// Valid call reports false until a successful Refresh.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.invalid = true
	s.mu.Unlock()
}
