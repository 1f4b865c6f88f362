// SPDX-License-Identifier: Apache-2.0

package models

// ServerInfo is the subset of the backend's server info endpoint that this
// application consumes.
type ServerInfo struct {
	Project ProjectInfo `json:"project"`
}

// ProjectInfo describes the backend project as configured by its
// administrators.
type ProjectInfo struct {
	// Name is the human-readable project name.
	Name string `json:"project_name"`

	// Descriptor is an optional subtitle for the project.
	Descriptor string `json:"project_descriptor,omitempty"`

	// Color is the project accent color, when one is configured.
	Color string `json:"project_color,omitempty"`
}

// ServerInfoResponse is the REST envelope the backend wraps server info in.
type ServerInfoResponse struct {
	Data ServerInfo `json:"data"`
}
