package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/services"
	"newsfeed-service/internal/testutil"
)

type mocks struct {
	articles *testutil.MockArticleRepo
	sections *testutil.MockSectionRepo
	runs     *testutil.MockIngestRunRepo
	wire     *testutil.MockWireClient
}

func setupRouter(jwtSecret string) (*mocks, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	m := &mocks{
		articles: new(testutil.MockArticleRepo),
		sections: new(testutil.MockSectionRepo),
		runs:     new(testutil.MockIngestRunRepo),
		wire:     new(testutil.MockWireClient),
	}

	articleSvc := services.NewArticleService(m.articles)
	sectionSvc := services.NewSectionService(m.sections, m.wire)
	ingestSvc := services.NewIngestService(m.articles, m.runs, m.wire, nil, 100)
	popularSvc := services.NewPopularService(m.wire)

	h := New(articleSvc, sectionSvc, ingestSvc, popularSvc, jwtSecret)
	r := gin.New()
	api := r.Group("/api/v1/newsfeed")
	h.RegisterRoutes(api)

	return m, r
}

func TestListArticles(t *testing.T) {
	m, r := setupRouter("secret")

	articles := []*domain.Article{
		{
			ID:          uuid.New(),
			URI:         "nyt://article/0a1b2c3d-4e5f-6789-abcd-ef0123456789",
			URL:         "https://www.nytimes.com/2026/08/24/arts/review.html",
			Section:     "arts",
			Title:       "A Review",
			PublishedAt: time.Now(),
		},
	}
	m.articles.On("List", mock.Anything, mock.AnythingOfType("ports.ArticleListFilter")).Return(articles, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/articles?section=arts&limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), "A Review")
}

func TestListArticles_BadDateFilter(t *testing.T) {
	_, r := setupRouter("secret")

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/articles?published_from=yesterday", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArticle(t *testing.T) {
	m, r := setupRouter("secret")

	id := uuid.New()
	m.articles.On("GetByID", mock.Anything, id).Return(&domain.Article{ID: id, Title: "a1"}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/articles/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a1")
}

func TestGetArticle_InvalidID(t *testing.T) {
	_, r := setupRouter("secret")

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/articles/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArticle_NotFound(t *testing.T) {
	m, r := setupRouter("secret")

	id := uuid.New()
	m.articles.On("GetByID", mock.Anything, id).Return(nil, domain.ErrArticleNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/articles/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetArticleByURI(t *testing.T) {
	m, r := setupRouter("secret")

	uri := "nyt://article/0a1b2c3d-4e5f-6789-abcd-ef0123456789"
	m.articles.On("GetByURI", mock.Anything, uri).Return(&domain.Article{URI: uri, Title: "a1"}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/article?uri="+uri, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteArticle_RequiresAuth(t *testing.T) {
	_, r := setupRouter("secret")

	req, _ := http.NewRequest("DELETE", "/api/v1/newsfeed/articles/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
