package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsfeed-service/internal/core/domain"
)

type ArticleListFilter struct {
	Section       string
	Source        string
	Search        string
	PublishedFrom time.Time
	PublishedTo   time.Time
	SortBy        string
	Order         string
	Limit         int
	Offset        int
}

type RunListFilter struct {
	Section string
	Status  string
	Limit   int
	Offset  int
}

// UpsertResult reports what an upsert actually did to the row.
type UpsertResult int

const (
	UpsertSkipped UpsertResult = iota
	UpsertInserted
	UpsertUpdated
)

type ArticleRepository interface {
	// Upsert inserts the article or updates the stored row when the incoming
	// wire timestamp is strictly newer. Older or identical payloads are
	// reported as UpsertSkipped and leave the row untouched.
	Upsert(ctx context.Context, article *domain.Article) (UpsertResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetByURI(ctx context.Context, uri string) (*domain.Article, error)
	List(ctx context.Context, filter ArticleListFilter) ([]*domain.Article, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SectionRepository interface {
	Upsert(ctx context.Context, section *domain.Section) error
	GetByName(ctx context.Context, name string) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
}

type IngestRunRepository interface {
	Create(ctx context.Context, run *domain.IngestRun) error
	Update(ctx context.Context, run *domain.IngestRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.IngestRun, error)
	List(ctx context.Context, filter RunListFilter) ([]*domain.IngestRun, int, error)
}
