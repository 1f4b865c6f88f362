// SPDX-License-Identifier: Apache-2.0

// Package service implements the content fetchers of the backend access
// layer: the global site configuration and individual pages, both read from
// the Directus backend over GraphQL through a shared authenticated client.
package service

import (
	"context"

	"sitebridge/internal/directus"
	"sitebridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ClientSource hands out the shared authenticated backend client. The
// canonical implementation is directus.Provider; fetchers depend on this
// interface so tests can substitute a mock.
type ClientSource interface {
	// Get returns the shared client, building and authenticating it on
	// first use. Implementations must return the same client to all
	// callers for as long as its session is usable.
	Get(ctx context.Context) (directus.Client, error)
}

// SiteConfigService fetches the global site settings.
type SiteConfigService interface {
	// GetSiteConfig returns the global site configuration. When the
	// backend reports maintenance mode the result additionally carries
	// the maintenance page content; the Maintenance field is non-nil in
	// exactly that case.
	GetSiteConfig(ctx context.Context) (models.SiteConfig, error)
}

// PageService fetches individual site pages by slug.
type PageService interface {
	// GetPage returns the page stored under slug using the default query.
	// A slug with no matching page yields a zero-value Page and no error.
	GetPage(ctx context.Context, slug string) (models.Page, error)

	// GetPageWithQuery behaves like GetPage but runs the caller-supplied
	// query template instead of the default one. The template must
	// contain the literal placeholder {{slug}}, which is substituted with
	// slug before the query is sent.
	GetPageWithQuery(ctx context.Context, slug, queryTemplate string) (models.Page, error)
}
