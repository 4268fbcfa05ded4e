package services

import (
	"context"
	"time"

	"github.com/juju/clock"
	log "github.com/sirupsen/logrus"

	"newsfeed-service/internal/core/domain"
)

// Scheduler drives the ingest pipeline on a fixed interval. Each tick runs
// every configured section once; ticks that land while the previous pass is
// still running are absorbed because the loop only rearms the timer after a
// pass finishes.
type Scheduler struct {
	ingest   *IngestService
	sections *SectionService
	clock    clock.Clock
	interval time.Duration
	source   string
	targets  []string
}

func NewScheduler(ingest *IngestService, sections *SectionService, clk clock.Clock, interval time.Duration, source string, targets []string) *Scheduler {
	if clk == nil {
		clk = clock.WallClock
	}
	if len(targets) == 0 {
		targets = []string{domain.SectionAll}
	}
	return &Scheduler{
		ingest:   ingest,
		sections: sections,
		clock:    clk,
		interval: interval,
		source:   source,
		targets:  targets,
	}
}

// Start blocks until ctx is cancelled. The first pass runs immediately.
func (s *Scheduler) Start(ctx context.Context) {
	log.WithFields(log.Fields{
		"interval": s.interval.String(),
		"source":   s.source,
		"sections": s.targets,
	}).Info("ingest scheduler started")

	if _, err := s.sections.Sync(ctx); err != nil {
		log.WithError(err).Warn("initial section sync failed")
	}
	s.pass(ctx)

	timer := s.clock.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("ingest scheduler stopped")
			return
		case <-timer.Chan():
			s.pass(ctx)
			timer.Reset(s.interval)
		}
	}
}

func (s *Scheduler) pass(ctx context.Context) {
	if _, err := s.ingest.RunAll(ctx, s.source, s.targets); err != nil {
		log.WithError(err).Error("scheduled ingest pass failed")
	}
}
