// SPDX-License-Identifier: Apache-2.0

package models

// Page is a single site page record fetched from the backend by slug.
//
// ID is part of the record but the default page query does not select it, so
// it stays empty unless a caller-supplied query asks for it.
type Page struct {
	// ID is the backend identifier of the page.
	ID string `json:"id,omitempty"`

	// Slug is the URL path segment the page is addressed by (e.g. "about").
	Slug string `json:"slug"`

	// Title is the page title.
	Title string `json:"title"`

	// Script is an optional inline script attached to the page.
	Script string `json:"script,omitempty"`

	// Content is the page body.
	Content string `json:"content"`

	// Style is an optional inline stylesheet attached to the page.
	Style string `json:"style,omitempty"`
}

// IsZero reports whether the page is the zero record, which is what a fetch
// returns when no page matches the requested slug.
func (p Page) IsZero() bool {
	return p == Page{}
}
