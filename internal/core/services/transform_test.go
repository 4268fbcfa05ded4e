package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

func wireFixture() ports.WireArticle {
	return ports.WireArticle{
		SlugName:       "24arts-review",
		Section:        "arts",
		Subsection:     "music",
		Title:          "A Review",
		Abstract:       "Some abstract.",
		URL:            "https://www.nytimes.com/2026/08/24/arts/review.html",
		URI:            "nyt://article/0a1b2c3d-4e5f-6789-abcd-ef0123456789",
		Byline:         "By A. Critic",
		ItemType:       "Article",
		Source:         "New York Times",
		DesFacet:       []string{"Music", "Reviews"},
		OrgFacet:       []string{"Philharmonic"},
		PerFacet:       []string{"Music"},
		GeoFacet:       []string{"New York City"},
		ThumbnailURL:   "https://static01.nyt.com/images/thumb.jpg",
		UpdatedDate:    "2026-08-24T10:30:00-04:00",
		CreatedDate:    "2026-08-24T09:00:00-04:00",
		PublishedDate:  "2026-08-24T09:15:00-04:00",
		FirstPublished: "2026-08-24T09:15:00-04:00",
	}
}

func TestTransformArticle(t *testing.T) {
	a, err := transformArticle(wireFixture())
	assert.NoError(t, err)

	assert.Equal(t, "nyt://article/0a1b2c3d-4e5f-6789-abcd-ef0123456789", a.URI)
	assert.Equal(t, "arts", a.Section)
	assert.Equal(t, "A Review", a.Title)
	assert.NotEqual(t, time.Time{}, a.PublishedAt)
	assert.Equal(t, 14, a.ArticleUpdatedAt.UTC().Hour())
	assert.True(t, a.ArticleUpdatedAt.After(a.PublishedAt))

	// Duplicate facet entries collapse.
	assert.Equal(t, []string{"Music", "Reviews", "Philharmonic", "New York City"}, a.Keywords)
}

func TestTransformArticle_MissingUpdatedDateFallsBack(t *testing.T) {
	w := wireFixture()
	w.UpdatedDate = ""

	a, err := transformArticle(w)
	assert.NoError(t, err)
	assert.Equal(t, a.PublishedAt, a.ArticleUpdatedAt)
}

func TestTransformArticle_BadDatesLeftZero(t *testing.T) {
	w := wireFixture()
	w.FirstPublished = "not-a-date"

	a, err := transformArticle(w)
	assert.NoError(t, err)
	assert.True(t, a.FirstPublishedAt.IsZero())
}

func TestTransformArticle_MissingURI(t *testing.T) {
	w := wireFixture()
	w.URI = ""

	_, err := transformArticle(w)
	assert.ErrorIs(t, err, domain.ErrMissingURI)
}

func TestTransformArticle_MissingTitle(t *testing.T) {
	w := wireFixture()
	w.Title = ""

	_, err := transformArticle(w)
	assert.ErrorIs(t, err, domain.ErrMissingTitle)
}
