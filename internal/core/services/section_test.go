package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
	"newsfeed-service/internal/testutil"
)

func TestSectionService_Sync(t *testing.T) {
	repo := new(testutil.MockSectionRepo)
	wire := new(testutil.MockWireClient)
	svc := NewSectionService(repo, wire)

	wire.On("SectionList", mock.Anything).Return([]ports.WireSection{
		{Section: "arts", DisplayName: "Arts"},
		{Section: "", DisplayName: "Nameless"},
		{Section: "business", DisplayName: "Business"},
	}, nil)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Section")).Return(nil)

	synced, err := svc.Sync(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, synced)
	repo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestSectionService_Sync_WireFailure(t *testing.T) {
	repo := new(testutil.MockSectionRepo)
	wire := new(testutil.MockWireClient)
	svc := NewSectionService(repo, wire)

	wire.On("SectionList", mock.Anything).Return(nil, domain.ErrWireUnavailable)

	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, domain.ErrWireUnavailable)
}

func TestSectionService_Get_EmptyName(t *testing.T) {
	svc := NewSectionService(new(testutil.MockSectionRepo), new(testutil.MockWireClient))

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidSectionName)
}

func TestSectionService_List(t *testing.T) {
	repo := new(testutil.MockSectionRepo)
	svc := NewSectionService(repo, new(testutil.MockWireClient))

	sections := []*domain.Section{{Name: "arts", DisplayName: "Arts"}}
	repo.On("List", mock.Anything).Return(sections, nil)

	result, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}
