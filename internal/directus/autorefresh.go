package directus

import (
	"context"
	"time"
)

// refreshRetryInterval is how long the refresh job waits before retrying
// after a failed refresh attempt.
const refreshRetryInterval = 15 * time.Second

// startRefreshJob launches the background goroutine that keeps the access
// token fresh. Any previously running job is stopped before the new one
// begins, so at most one refresh loop runs per client.
func (c *restClient) startRefreshJob() {
	c.StopRefreshing()

	c.jobMu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	c.jobMu.Unlock()

	go c.refreshLoop(jobCtx)
}

// refreshLoop sleeps until the margin before token expiry, refreshes, and
// reschedules from the new expiry. A failed refresh is retried on a short
// fixed interval. The loop exits when ctx is cancelled or when the token has
// no known expiry (static tokens never need refreshing).
func (c *restClient) refreshLoop(ctx context.Context) {
	defer c.wg.Done()

	for {
		expiry := c.TokenExpiresAt()
		if expiry.IsZero() {
			return
		}

		if !waitOrDone(ctx, time.Until(expiry.Add(-c.refreshMargin))) {
			return
		}

		if err := c.Refresh(ctx); err != nil {
			c.logger.Error().Err(err).Msg("background token refresh failed")
			if !waitOrDone(ctx, refreshRetryInterval) {
				return
			}
		}
	}
}

// StopRefreshing implements [Client]. It cancels the refresh goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (c *restClient) StopRefreshing() {
	c.jobMu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

// waitOrDone blocks for d or until ctx is cancelled. It reports false when
// the context ended first. A non-positive d fires immediately.
func waitOrDone(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
