package services

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"newsfeed-service/internal/core/ports/output"
	"newsfeed-service/internal/testutil"
)

func TestScheduler_RunsImmediatelyAndOnInterval(t *testing.T) {
	articles := new(testutil.MockArticleRepo)
	runs := new(testutil.MockIngestRunRepo)
	sections := new(testutil.MockSectionRepo)
	wire := new(testutil.MockWireClient)

	passCh := make(chan struct{}, 10)

	wire.On("SectionList", mock.Anything).Return([]ports.WireSection{}, nil)
	wire.On("Content", mock.Anything, "all", "arts", 100, 0).
		Run(func(args mock.Arguments) { passCh <- struct{}{} }).
		Return([]ports.WireArticle{}, nil)
	runs.On("Create", mock.Anything, mock.AnythingOfType("*domain.IngestRun")).Return(nil)
	runs.On("Update", mock.Anything, mock.AnythingOfType("*domain.IngestRun")).Return(nil)

	ingestSvc := NewIngestService(articles, runs, wire, nil, 100)
	sectionSvc := NewSectionService(sections, wire)

	clk := testclock.NewClock(time.Now())
	interval := time.Minute
	sched := NewScheduler(ingestSvc, sectionSvc, clk, interval, "all", []string{"arts"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		sched.Start(ctx)
	}()

	// First pass fires without waiting for the interval.
	select {
	case <-passCh:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for initial pass")
	}

	// The loop rearms its timer only after a pass, so a single waiter is
	// guaranteed once the first pass has been observed.
	err := clk.WaitAdvance(interval, 5*time.Second, 1)
	assert.NoError(t, err)

	select {
	case <-passCh:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for scheduled pass")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
}

func TestScheduler_DefaultsToAllSections(t *testing.T) {
	sched := NewScheduler(nil, nil, nil, time.Minute, "all", nil)
	assert.Equal(t, []string{"all"}, sched.targets)
}
