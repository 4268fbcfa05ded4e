package dto

import (
	"time"

	"github.com/google/uuid"

	"newsfeed-service/internal/core/domain"
)

type ArticleResponse struct {
	ID                uuid.UUID `json:"id"`
	URI               string    `json:"uri"`
	URL               string    `json:"url"`
	SlugName          string    `json:"slug_name"`
	Section           string    `json:"section"`
	Subsection        string    `json:"subsection,omitempty"`
	Title             string    `json:"title"`
	Abstract          string    `json:"abstract"`
	Byline            string    `json:"byline"`
	ItemType          string    `json:"item_type"`
	Source            string    `json:"source"`
	MaterialTypeFacet string    `json:"material_type_facet,omitempty"`
	Kicker            string    `json:"kicker,omitempty"`
	Keywords          []string  `json:"keywords"`
	ThumbnailURL      string    `json:"thumbnail_url,omitempty"`
	PublishedAt       string    `json:"published_at"`
	FirstPublishedAt  string    `json:"first_published_at,omitempty"`
	ArticleUpdatedAt  string    `json:"article_updated_at,omitempty"`
	CreatedAt         string    `json:"created_at"`
	UpdatedAt         string    `json:"updated_at"`
}

type ListArticlesResponse struct {
	Items      []ArticleResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

func ToArticleResponse(a *domain.Article) ArticleResponse {
	keywords := a.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return ArticleResponse{
		ID:                a.ID,
		URI:               a.URI,
		URL:               a.URL,
		SlugName:          a.SlugName,
		Section:           a.Section,
		Subsection:        a.Subsection,
		Title:             a.Title,
		Abstract:          a.Abstract,
		Byline:            a.Byline,
		ItemType:          a.ItemType,
		Source:            a.Source,
		MaterialTypeFacet: a.MaterialTypeFacet,
		Kicker:            a.Kicker,
		Keywords:          keywords,
		ThumbnailURL:      a.ThumbnailURL,
		PublishedAt:       formatTime(a.PublishedAt),
		FirstPublishedAt:  formatTime(a.FirstPublishedAt),
		ArticleUpdatedAt:  formatTime(a.ArticleUpdatedAt),
		CreatedAt:         formatTime(a.CreatedAt),
		UpdatedAt:         formatTime(a.UpdatedAt),
	}
}

type PopularArticleResponse struct {
	Title       string `json:"title"`
	Abstract    string `json:"abstract"`
	URL         string `json:"url"`
	Byline      string `json:"byline"`
	Section     string `json:"section"`
	Source      string `json:"source"`
	ItemType    string `json:"item_type"`
	PublishedAt string `json:"published_at"`
}

func ToPopularArticleResponse(a domain.PopularArticle) PopularArticleResponse {
	return PopularArticleResponse{
		Title:       a.Title,
		Abstract:    a.Abstract,
		URL:         a.URL,
		Byline:      a.Byline,
		Section:     a.Section,
		Source:      a.Source,
		ItemType:    a.ItemType,
		PublishedAt: formatTime(a.PublishedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
