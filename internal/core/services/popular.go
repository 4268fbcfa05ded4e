package services

import (
	"context"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

// PopularService serves Most Popular lists straight from the wire. Results
// are not persisted.
type PopularService struct {
	wire ports.WireClient
}

func NewPopularService(wire ports.WireClient) *PopularService {
	return &PopularService{wire: wire}
}

func (s *PopularService) Fetch(ctx context.Context, kind string, period int) ([]domain.PopularArticle, error) {
	if err := domain.ValidatePopularKind(kind); err != nil {
		return nil, err
	}
	if err := domain.ValidatePeriod(period); err != nil {
		return nil, err
	}
	return s.wire.MostPopular(ctx, kind, period)
}
