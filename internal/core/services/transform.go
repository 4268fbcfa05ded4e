package services

import (
	"time"

	"github.com/google/uuid"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

// transformArticle maps one wire result to a domain article. Wire timestamps
// are RFC3339 with a numeric offset; unparseable optional dates are left
// zero, but a missing updated date falls back to the published date so the
// upsert comparison always has something to work with.
func transformArticle(w ports.WireArticle) (*domain.Article, error) {
	a := &domain.Article{
		ID:                uuid.New(),
		URI:               w.URI,
		URL:               w.URL,
		SlugName:          w.SlugName,
		Section:           w.Section,
		Subsection:        w.Subsection,
		Title:             w.Title,
		Abstract:          w.Abstract,
		Byline:            w.Byline,
		ItemType:          w.ItemType,
		Source:            w.Source,
		MaterialTypeFacet: w.MaterialTypeFacet,
		Kicker:            w.Kicker,
		Keywords:          mergeFacets(w.DesFacet, w.OrgFacet, w.PerFacet, w.GeoFacet),
		ThumbnailURL:      w.ThumbnailURL,
		PublishedAt:       parseWireTime(w.PublishedDate),
		FirstPublishedAt:  parseWireTime(w.FirstPublished),
		ArticleCreatedAt:  parseWireTime(w.CreatedDate),
		ArticleUpdatedAt:  parseWireTime(w.UpdatedDate),
	}

	if a.ArticleUpdatedAt.IsZero() {
		a.ArticleUpdatedAt = a.PublishedAt
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func parseWireTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func mergeFacets(facets ...[]string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, facet := range facets {
		for _, kw := range facet {
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			merged = append(merged, kw)
		}
	}
	return merged
}
