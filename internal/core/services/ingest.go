package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

// IngestMetrics receives pipeline counters. A nil value disables reporting.
type IngestMetrics interface {
	RunCompleted(section, status string, seconds float64)
	ArticlesIngested(section, outcome string, n int)
}

type IngestService struct {
	articles  ports.ArticleRepository
	runs      ports.IngestRunRepository
	wire      ports.WireClient
	metrics   IngestMetrics
	pageLimit int

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewIngestService(articles ports.ArticleRepository, runs ports.IngestRunRepository, wire ports.WireClient, metrics IngestMetrics, pageLimit int) *IngestService {
	if pageLimit <= 0 {
		pageLimit = 100
	}
	return &IngestService{
		articles:  articles,
		runs:      runs,
		wire:      wire,
		metrics:   metrics,
		pageLimit: pageLimit,
		inFlight:  make(map[string]bool),
	}
}

// Run executes one extract-transform-load pass for a source/section pair.
// Exactly one ingest_run row is written per call and it is always finalised,
// including when extraction fails. Concurrent runs for the same section are
// rejected with ErrRunInProgress.
func (s *IngestService) Run(ctx context.Context, source, section string) (*domain.IngestRun, error) {
	if err := domain.ValidateSource(source); err != nil {
		return nil, err
	}
	if section == "" {
		section = domain.SectionAll
	}

	if !s.acquire(section) {
		return nil, domain.ErrRunInProgress
	}
	defer s.release(section)

	run := &domain.IngestRun{
		ID:        uuid.New(),
		Source:    source,
		Section:   section,
		Status:    domain.RunStatusRunning,
		StartedAt: time.Now(),
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return nil, err
	}

	err := s.execute(ctx, run)

	finished := time.Now()
	run.FinishedAt = &finished
	if err != nil {
		run.Status = domain.RunStatusFailed
		run.Error = err.Error()
	} else {
		run.Status = domain.RunStatusSucceeded
	}

	if uerr := s.runs.Update(ctx, run); uerr != nil {
		log.WithError(uerr).Error("finalize ingest run failed")
		if err == nil {
			err = uerr
		}
	}

	s.report(run)

	if err != nil {
		return run, err
	}
	return run, nil
}

func (s *IngestService) execute(ctx context.Context, run *domain.IngestRun) error {
	wireArticles, err := s.wire.Content(ctx, run.Source, run.Section, s.pageLimit, 0)
	if err != nil {
		return err
	}
	run.Fetched = len(wireArticles)

	for _, w := range wireArticles {
		article, err := transformArticle(w)
		if err != nil {
			log.WithFields(log.Fields{
				"slug": w.SlugName,
				"url":  w.URL,
			}).WithError(err).Warn("dropping malformed wire article")
			run.Skipped++
			continue
		}

		result, err := s.articles.Upsert(ctx, article)
		if err != nil {
			return err
		}
		switch result {
		case ports.UpsertInserted:
			run.Inserted++
		case ports.UpsertUpdated:
			run.Updated++
		default:
			run.Skipped++
		}
	}

	log.WithFields(log.Fields{
		"source":   run.Source,
		"section":  run.Section,
		"fetched":  run.Fetched,
		"inserted": run.Inserted,
		"updated":  run.Updated,
		"skipped":  run.Skipped,
	}).Info("ingest run completed")

	return nil
}

// RunAll ingests every configured section sequentially. The first failure is
// returned but later sections are still attempted.
func (s *IngestService) RunAll(ctx context.Context, source string, sections []string) ([]*domain.IngestRun, error) {
	if len(sections) == 0 {
		sections = []string{domain.SectionAll}
	}

	var runs []*domain.IngestRun
	var firstErr error
	for _, section := range sections {
		run, err := s.Run(ctx, source, section)
		if run != nil {
			runs = append(runs, run)
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if ctx.Err() != nil {
			break
		}
	}
	return runs, firstErr
}

func (s *IngestService) GetRun(ctx context.Context, id uuid.UUID) (*domain.IngestRun, error) {
	return s.runs.GetByID(ctx, id)
}

func (s *IngestService) ListRuns(ctx context.Context, filter ports.RunListFilter) ([]*domain.IngestRun, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.runs.List(ctx, filter)
}

func (s *IngestService) acquire(section string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[section] {
		return false
	}
	s.inFlight[section] = true
	return true
}

func (s *IngestService) release(section string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, section)
}

func (s *IngestService) report(run *domain.IngestRun) {
	if s.metrics == nil {
		return
	}
	s.metrics.RunCompleted(run.Section, string(run.Status), run.Duration().Seconds())
	s.metrics.ArticlesIngested(run.Section, "inserted", run.Inserted)
	s.metrics.ArticlesIngested(run.Section, "updated", run.Updated)
	s.metrics.ArticlesIngested(run.Section, "skipped", run.Skipped)
}
