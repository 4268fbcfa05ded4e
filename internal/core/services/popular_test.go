package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/testutil"
)

func TestPopularService_Fetch(t *testing.T) {
	wire := new(testutil.MockWireClient)
	svc := NewPopularService(wire)

	articles := []domain.PopularArticle{{Title: "p1", URL: "https://example.com"}}
	wire.On("MostPopular", mock.Anything, "viewed", 7).Return(articles, nil)

	result, err := svc.Fetch(context.Background(), "viewed", 7)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestPopularService_Fetch_InvalidKind(t *testing.T) {
	svc := NewPopularService(new(testutil.MockWireClient))

	_, err := svc.Fetch(context.Background(), "liked", 7)
	assert.ErrorIs(t, err, domain.ErrInvalidPopularKind)
}

func TestPopularService_Fetch_InvalidPeriod(t *testing.T) {
	svc := NewPopularService(new(testutil.MockWireClient))

	_, err := svc.Fetch(context.Background(), "viewed", 3)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
