// SPDX-License-Identifier: Apache-2.0

package directus

import (
	"context"
	"sync"

	"sitebridge/internal/config"
	"sitebridge/internal/logger"
)

// Option overrides a connection setting of a Provider at construction time.
type Option func(*options)

type options struct {
	url         string
	username    string
	password    string
	staticToken string
}

// WithURL overrides the backend URL from the configuration.
func WithURL(url string) Option {
	return func(o *options) { o.url = url }
}

// WithCredentials overrides the login credentials from the configuration.
func WithCredentials(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

// WithStaticToken makes the provider authenticate with a pre-issued static
// token instead of logging in with credentials.
func WithStaticToken(token string) Option {
	return func(o *options) { o.staticToken = token }
}

// Provider owns the single authenticated backend client shared by all
// fetchers. The first Get builds and authenticates the client; subsequent
// calls return the memoized instance, refreshing or rebuilding it when its
// token has expired. A failed authentication is never memoized, so callers
// can simply retry.
//
// Connection settings are fixed at construction from the configuration and
// any Options; arguments cannot change once a client has been handed out.
type Provider struct {
	api       config.API
	clientCfg config.Client
	logger    *logger.Logger

	mu      sync.Mutex
	session *Session
}

// NewProvider creates a Provider using the connection settings from cfg,
// overridden by any opts.
func NewProvider(cfg *config.StructuredConfig, log *logger.Logger, opts ...Option) *Provider {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	api := cfg.API
	if o.url != "" {
		api.URL = o.url
	}
	if o.username != "" {
		api.Username = o.username
	}
	if o.password != "" {
		api.Password = o.password
	}
	if o.staticToken != "" {
		api.StaticToken = o.staticToken
	}

	return &Provider{api: api, clientCfg: cfg.Client, logger: log}
}

// Get returns the shared authenticated client, building it on first use.
//
// The whole call runs under one mutex, so concurrent first calls perform a
// single login. When the memoized session has expired, Get refreshes it in
// place; if the refresh fails the session is discarded and a fresh client is
// built and authenticated from scratch.
func (p *Provider) Get(ctx context.Context) (Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session != nil {
		if p.session.Valid() {
			return p.session.Client(), nil
		}

		err := p.session.Refresh(ctx)
		if err == nil {
			return p.session.Client(), nil
		}

		p.logger.Warn().Err(err).Msg("session refresh failed, rebuilding client")
		p.session.Invalidate()
		p.session.Client().StopRefreshing()
		p.session = nil
	}

	client, err := NewClient(p.api, p.clientCfg, p.logger)
	if err != nil {
		return nil, err
	}

	if p.api.StaticToken != "" {
		client.SetToken(p.api.StaticToken)
	} else if err = client.Login(ctx, p.api.Username, p.api.Password); err != nil {
		return nil, err
	}

	p.session = NewSession(client, p.clientCfg.RefreshMargin)
	return client, nil
}

// Close releases the memoized client: the refresh job is stopped and the
// backend session is invalidated. The provider is reusable afterwards; the
// next Get builds a fresh client.
func (p *Provider) Close(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return nil
	}

	client := p.session.Client()
	p.session = nil
	return client.Logout(ctx)
}
