package ports

import (
	"context"

	"newsfeed-service/internal/core/domain"
)

// WireArticle is an article exactly as the Times Wire reports it, before
// transformation into a domain.Article.
type WireArticle struct {
	SlugName          string
	Section           string
	Subsection        string
	Title             string
	Abstract          string
	URL               string
	URI               string
	Byline            string
	ItemType          string
	Source            string
	MaterialTypeFacet string
	Kicker            string
	DesFacet          []string
	OrgFacet          []string
	PerFacet          []string
	GeoFacet          []string
	ThumbnailURL      string
	UpdatedDate       string
	CreatedDate       string
	PublishedDate     string
	FirstPublished    string
}

// WireSection is a section-list entry from the wire.
type WireSection struct {
	Section     string
	DisplayName string
}

// WireClient abstracts the upstream news wire API.
type WireClient interface {
	// Content fetches up to limit articles for a source/section pair,
	// starting at offset, newest first.
	Content(ctx context.Context, source, section string, limit, offset int) ([]WireArticle, error)
	// Latest fetches the most recent articles across all sources and sections.
	Latest(ctx context.Context, limit int) ([]WireArticle, error)
	SectionList(ctx context.Context) ([]WireSection, error)
	MostPopular(ctx context.Context, kind string, period int) ([]domain.PopularArticle, error)
}

// RawStore archives raw upstream payloads before transformation.
type RawStore interface {
	// SaveSnapshot persists one raw response body under a name derived from
	// the label and the current time. A nil implementation is valid: callers
	// must treat archiving as best-effort.
	SaveSnapshot(label string, body []byte) (string, error)
}
