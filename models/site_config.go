// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// ServiceMode describes the operating mode reported by the backend in the
// global site settings. Any value other than [ServiceModeMaintenance] is
// treated as normal operation.
type ServiceMode string

const (
	// ServiceModeNormal is the default operating mode.
	ServiceModeNormal ServiceMode = "normal"

	// ServiceModeMaintenance marks the site as under maintenance. When the
	// backend reports this mode the site config carries the maintenance page
	// fields alongside the regular settings.
	ServiceModeMaintenance ServiceMode = "maintenance"
)

// SiteConfig holds the global site settings fetched from the backend: the
// site identity, the navigation structure, the operating mode, and, in
// maintenance mode only, the maintenance page content.
type SiteConfig struct {
	// Title is the site title shown in headers and the browser tab.
	Title string `json:"title"`

	// Description is the site-wide description used for meta tags.
	Description string `json:"description"`

	// Navbar is the navigation structure exactly as the backend stores it.
	// Its shape is owned by the content editors, so it is kept opaque here
	// and interpreted by the rendering layer.
	Navbar json.RawMessage `json:"navbar_config,omitempty"`

	// ServiceMode is the operating mode reported by the backend.
	ServiceMode ServiceMode `json:"service_mode"`

	// DateUpdated is the last-modified timestamp of the global settings,
	// verbatim as reported by the backend.
	DateUpdated string `json:"date_updated"`

	// Maintenance carries the maintenance page content. It is non-nil if and
	// only if the backend reported [ServiceModeMaintenance].
	Maintenance *MaintenancePage `json:"maintenance,omitempty"`
}

// InMaintenance reports whether the backend declared the site to be in
// maintenance mode.
func (c SiteConfig) InMaintenance() bool {
	return c.ServiceMode == ServiceModeMaintenance
}

// MaintenancePage is the content shown to visitors while the site is in
// maintenance mode.
type MaintenancePage struct {
	Title string `json:"maintenance_page_title"`
	Body  string `json:"maintenance_page_body"`
}
