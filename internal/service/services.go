package service

import (
	"sitebridge/internal/directus"
	"sitebridge/internal/logger"
)

// Services aggregates the content fetchers behind one constructor so the
// application wires a single object.
type Services struct {
	SiteConfig SiteConfigService
	Pages      PageService
}

// The provider is the canonical client source for production wiring.
var _ ClientSource = (*directus.Provider)(nil)

func NewServices(source ClientSource, log *logger.Logger) *Services {
	return &Services{
		SiteConfig: NewSiteConfigService(source, log),
		Pages:      NewPageService(source, log),
	}
}
