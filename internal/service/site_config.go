// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"sitebridge/internal/logger"
	"sitebridge/models"
)

const (
	siteConfigQuery  = `{ global { title description navbar_config service_mode date_updated } }`
	maintenanceQuery = `{ global { maintenance_page_title maintenance_page_body } }`
)

// globalEnvelope mirrors the data object of the settings query. A response
// without a global object decodes to a nil pointer.
type globalEnvelope struct {
	Global *globalConfig `json:"global"`
}

type globalConfig struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	NavbarConfig json.RawMessage `json:"navbar_config"`
	ServiceMode  string          `json:"service_mode"`
	DateUpdated  string          `json:"date_updated"`
}

type maintenanceEnvelope struct {
	Global *maintenanceConfig `json:"global"`
}

type maintenanceConfig struct {
	Title string `json:"maintenance_page_title"`
	Body  string `json:"maintenance_page_body"`
}

type siteConfigService struct {
	source ClientSource
	logger *logger.Logger
}

func NewSiteConfigService(source ClientSource, log *logger.Logger) SiteConfigService {
	return &siteConfigService{source: source, logger: log}
}

// GetSiteConfig implements SiteConfigService. It fetches the global site
// settings and, when the backend reports maintenance mode, fetches the
// maintenance page content with a second sequential query and merges it
// into the result.
//
// A response without a global object is downgraded to an empty config with
// a warning: a freshly provisioned backend has no settings record yet and
// the site must still render. The maintenance query has no such fallback;
// serving maintenance mode without its page content would show visitors a
// blank page, so failure there is an error.
func (s *siteConfigService) GetSiteConfig(ctx context.Context) (models.SiteConfig, error) {
	client, err := s.source.Get(ctx)
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("%w: %v", ErrSiteConfig, err)
	}

	var envelope globalEnvelope
	if err = client.Query(ctx, siteConfigQuery, nil, &envelope); err != nil {
		return models.SiteConfig{}, fmt.Errorf("%w: %v", ErrSiteConfig, err)
	}

	global := envelope.Global
	if global == nil {
		s.logger.Warn().Msg("backend returned no global site settings, using empty config")
		global = &globalConfig{}
	}

	cfg := models.SiteConfig{
		Title:       global.Title,
		Description: global.Description,
		Navbar:      global.NavbarConfig,
		ServiceMode: models.ServiceMode(global.ServiceMode),
		DateUpdated: global.DateUpdated,
	}

	if !cfg.InMaintenance() {
		return cfg, nil
	}

	var mEnvelope maintenanceEnvelope
	if err = client.Query(ctx, maintenanceQuery, nil, &mEnvelope); err != nil {
		return models.SiteConfig{}, fmt.Errorf("%w: %v", ErrMaintenanceConfig, err)
	}

	page := &models.MaintenancePage{}
	if mEnvelope.Global != nil {
		page.Title = mEnvelope.Global.Title
		page.Body = mEnvelope.Global.Body
	}
	cfg.Maintenance = page

	return cfg, nil
}
