package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
	"newsfeed-service/internal/testutil"
)

func TestArticleService_Get(t *testing.T) {
	repo := new(testutil.MockArticleRepo)
	svc := NewArticleService(repo)

	id := uuid.New()
	expected := &domain.Article{ID: id, Title: "a1"}
	repo.On("GetByID", mock.Anything, id).Return(expected, nil)

	article, err := svc.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "a1", article.Title)
}

func TestArticleService_Get_NotFound(t *testing.T) {
	repo := new(testutil.MockArticleRepo)
	svc := NewArticleService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrArticleNotFound)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestArticleService_GetByURI_Empty(t *testing.T) {
	repo := new(testutil.MockArticleRepo)
	svc := NewArticleService(repo)

	_, err := svc.GetByURI(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingURI)
}

func TestArticleService_List(t *testing.T) {
	repo := new(testutil.MockArticleRepo)
	svc := NewArticleService(repo)

	filter := ports.ArticleListFilter{Section: "arts", Limit: 10}
	articles := []*domain.Article{{ID: uuid.New(), Title: "a1"}}
	repo.On("List", mock.Anything, filter).Return(articles, 1, nil)

	result, total, err := svc.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, result, 1)
}

func TestArticleService_List_DefaultLimit(t *testing.T) {
	repo := new(testutil.MockArticleRepo)
	svc := NewArticleService(repo)

	expectedFilter := ports.ArticleListFilter{Limit: 20}
	repo.On("List", mock.Anything, expectedFilter).Return([]*domain.Article{}, 0, nil)

	_, _, err := svc.List(context.Background(), ports.ArticleListFilter{Limit: 0})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestArticleService_List_CapsLimit(t *testing.T) {
	repo := new(testutil.MockArticleRepo)
	svc := NewArticleService(repo)

	expectedFilter := ports.ArticleListFilter{Limit: 100}
	repo.On("List", mock.Anything, expectedFilter).Return([]*domain.Article{}, 0, nil)

	_, _, err := svc.List(context.Background(), ports.ArticleListFilter{Limit: 5000})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
