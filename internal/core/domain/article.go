package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Wire sources accepted by the Times Wire content endpoint.
const (
	SourceAll  = "all"
	SourceNYT  = "nyt"
	SourceINYT = "inyt"
)

// SectionAll requests content across every section.
const SectionAll = "all"

func ValidateSource(source string) error {
	switch strings.ToLower(source) {
	case SourceAll, SourceNYT, SourceINYT:
		return nil
	}
	return ErrInvalidSource
}

// Article is one published item from the news wire, keyed by its URI
// (nyt://article/<uuid>), which is stable even when the URL changes.
type Article struct {
	ID                uuid.UUID `json:"id"`
	URI               string    `json:"uri"`
	URL               string    `json:"url"`
	SlugName          string    `json:"slug_name"`
	Section           string    `json:"section"`
	Subsection        string    `json:"subsection"`
	Title             string    `json:"title"`
	Abstract          string    `json:"abstract"`
	Byline            string    `json:"byline"`
	ItemType          string    `json:"item_type"`
	Source            string    `json:"source"`
	MaterialTypeFacet string    `json:"material_type_facet"`
	Kicker            string    `json:"kicker"`
	Keywords          []string  `json:"keywords"`
	ThumbnailURL      string    `json:"thumbnail_url"`

	PublishedAt      time.Time `json:"published_at"`
	FirstPublishedAt time.Time `json:"first_published_at"`
	// Timestamps reported by the wire for the article itself, as opposed to
	// CreatedAt/UpdatedAt which track our own rows.
	ArticleCreatedAt time.Time `json:"article_created_at"`
	ArticleUpdatedAt time.Time `json:"article_updated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Article) Validate() error {
	if a.URI == "" {
		return ErrMissingURI
	}
	if a.URL == "" {
		return ErrMissingURL
	}
	if a.Title == "" {
		return ErrMissingTitle
	}
	return nil
}

// PopularArticle is a Most Popular result. It is served straight from the
// upstream API and never persisted.
type PopularArticle struct {
	Title       string    `json:"title"`
	Abstract    string    `json:"abstract"`
	URL         string    `json:"url"`
	Byline      string    `json:"byline"`
	Section     string    `json:"section"`
	Source      string    `json:"source"`
	ItemType    string    `json:"item_type"`
	PublishedAt time.Time `json:"published_at"`
}

// Most Popular list flavours.
const (
	PopularEmailed = "emailed"
	PopularShared  = "shared"
	PopularViewed  = "viewed"
)

func ValidatePopularKind(kind string) error {
	switch strings.ToLower(kind) {
	case PopularEmailed, PopularShared, PopularViewed:
		return nil
	}
	return ErrInvalidPopularKind
}

func ValidatePeriod(days int) error {
	switch days {
	case 1, 7, 30:
		return nil
	}
	return ErrInvalidPeriod
}
