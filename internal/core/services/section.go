package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

type SectionService struct {
	repo ports.SectionRepository
	wire ports.WireClient
}

func NewSectionService(repo ports.SectionRepository, wire ports.WireClient) *SectionService {
	return &SectionService{repo: repo, wire: wire}
}

func (s *SectionService) List(ctx context.Context) ([]*domain.Section, error) {
	return s.repo.List(ctx)
}

func (s *SectionService) Get(ctx context.Context, name string) (*domain.Section, error) {
	if name == "" {
		return nil, domain.ErrInvalidSectionName
	}
	return s.repo.GetByName(ctx, name)
}

// Sync fetches the wire section list and upserts every entry. Entries with
// an empty name are dropped. Returns the number of sections stored.
func (s *SectionService) Sync(ctx context.Context) (int, error) {
	wireSections, err := s.wire.SectionList(ctx)
	if err != nil {
		return 0, err
	}

	stored := 0
	for _, ws := range wireSections {
		section := &domain.Section{
			Name:        ws.Section,
			DisplayName: ws.DisplayName,
		}
		if err := section.Validate(); err != nil {
			log.WithField("display_name", ws.DisplayName).Warn("skipping section without a name")
			continue
		}
		if err := s.repo.Upsert(ctx, section); err != nil {
			return stored, err
		}
		stored++
	}

	log.WithField("count", stored).Info("section list synced")
	return stored, nil
}
