package services

import (
	"context"

	"github.com/google/uuid"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

type ArticleService struct {
	repo ports.ArticleRepository
}

func NewArticleService(repo ports.ArticleRepository) *ArticleService {
	return &ArticleService{repo: repo}
}

func (s *ArticleService) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArticleService) GetByURI(ctx context.Context, uri string) (*domain.Article, error) {
	if uri == "" {
		return nil, domain.ErrMissingURI
	}
	return s.repo.GetByURI(ctx, uri)
}

func (s *ArticleService) List(ctx context.Context, filter ports.ArticleListFilter) ([]*domain.Article, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *ArticleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
