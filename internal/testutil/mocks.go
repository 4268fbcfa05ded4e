package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

// MockArticleRepo is a mock of ArticleRepository.
type MockArticleRepo struct {
	mock.Mock
}

func (m *MockArticleRepo) Upsert(ctx context.Context, article *domain.Article) (ports.UpsertResult, error) {
	args := m.Called(ctx, article)
	return args.Get(0).(ports.UpsertResult), args.Error(1)
}

func (m *MockArticleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepo) GetByURI(ctx context.Context, uri string) (*domain.Article, error) {
	args := m.Called(ctx, uri)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepo) List(ctx context.Context, filter ports.ArticleListFilter) ([]*domain.Article, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Article), args.Int(1), args.Error(2)
}

func (m *MockArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSectionRepo is a mock of SectionRepository.
type MockSectionRepo struct {
	mock.Mock
}

func (m *MockSectionRepo) Upsert(ctx context.Context, section *domain.Section) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

func (m *MockSectionRepo) GetByName(ctx context.Context, name string) (*domain.Section, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Section), args.Error(1)
}

func (m *MockSectionRepo) List(ctx context.Context) ([]*domain.Section, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Section), args.Error(1)
}

// MockIngestRunRepo is a mock of IngestRunRepository.
type MockIngestRunRepo struct {
	mock.Mock
}

func (m *MockIngestRunRepo) Create(ctx context.Context, run *domain.IngestRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockIngestRunRepo) Update(ctx context.Context, run *domain.IngestRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockIngestRunRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.IngestRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IngestRun), args.Error(1)
}

func (m *MockIngestRunRepo) List(ctx context.Context, filter ports.RunListFilter) ([]*domain.IngestRun, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.IngestRun), args.Int(1), args.Error(2)
}

// MockWireClient is a mock of WireClient.
type MockWireClient struct {
	mock.Mock
}

func (m *MockWireClient) Content(ctx context.Context, source, section string, limit, offset int) ([]ports.WireArticle, error) {
	args := m.Called(ctx, source, section, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.WireArticle), args.Error(1)
}

func (m *MockWireClient) Latest(ctx context.Context, limit int) ([]ports.WireArticle, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.WireArticle), args.Error(1)
}

func (m *MockWireClient) SectionList(ctx context.Context) ([]ports.WireSection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.WireSection), args.Error(1)
}

func (m *MockWireClient) MostPopular(ctx context.Context, kind string, period int) ([]domain.PopularArticle, error) {
	args := m.Called(ctx, kind, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularArticle), args.Error(1)
}
