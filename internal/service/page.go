// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"sitebridge/internal/logger"
	"sitebridge/models"
)

// slugPlaceholder is the literal token in a page query template that gets
// replaced with the requested slug.
const slugPlaceholder = "{{slug}}"

// defaultPageQuery selects the renderable fields of the page matching a
// slug.
const defaultPageQuery = `{ page(filter: { slug: { _eq: "{{slug}}" } }) { slug title script content style } }`

type pageEnvelope struct {
	Page []models.Page `json:"page"`
}

type pageService struct {
	source ClientSource
	logger *logger.Logger
}

func NewPageService(source ClientSource, log *logger.Logger) PageService {
	return &pageService{source: source, logger: log}
}

// GetPage implements PageService.
func (p *pageService) GetPage(ctx context.Context, slug string) (models.Page, error) {
	return p.GetPageWithQuery(ctx, slug, defaultPageQuery)
}

// GetPageWithQuery implements PageService. The first occurrence of
// {{slug}} in queryTemplate is replaced with slug and the resulting query
// is sent as-is. When several pages match, the first one wins; when none
// match, the zero Page is returned without an error so callers can render
// their own not-found state.
func (p *pageService) GetPageWithQuery(ctx context.Context, slug, queryTemplate string) (models.Page, error) {
	if err := validateSlug(slug); err != nil {
		return models.Page{}, err
	}

	client, err := p.source.Get(ctx)
	if err != nil {
		return models.Page{}, fmt.Errorf("%w: %v", ErrPage, err)
	}

	query := strings.Replace(queryTemplate, slugPlaceholder, slug, 1)

	var envelope pageEnvelope
	if err = client.Query(ctx, query, nil, &envelope); err != nil {
		return models.Page{}, fmt.Errorf("%w: %v", ErrPage, err)
	}

	if len(envelope.Page) == 0 {
		p.logger.Debug().Str("slug", slug).Msg("no page matched slug")
		return models.Page{}, nil
	}

	return envelope.Page[0], nil
}

// validateSlug rejects slugs that would break out of the quoted string in
// the query template. Slugs never legitimately contain quotes, backslashes,
// or control characters.
func validateSlug(slug string) error {
	for _, r := range slug {
		if r == '"' || r == '\\' || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
		}
	}
	return nil
}
