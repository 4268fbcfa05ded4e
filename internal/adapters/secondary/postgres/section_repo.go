package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

type sectionRepo struct {
	pool *pgxpool.Pool
}

func NewSectionRepository(pool *pgxpool.Pool) ports.SectionRepository {
	return &sectionRepo{pool: pool}
}

func (r *sectionRepo) Upsert(ctx context.Context, section *domain.Section) error {
	query := `
		INSERT INTO section (name, display_name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			updated_at = NOW()
	`
	if _, err := r.pool.Exec(ctx, query, section.Name, section.DisplayName); err != nil {
		return fmt.Errorf("upsert section: %w", err)
	}
	return nil
}

func (r *sectionRepo) GetByName(ctx context.Context, name string) (*domain.Section, error) {
	query := `
		SELECT name, display_name, created_at, updated_at
		FROM section
		WHERE name = $1
	`
	s := &domain.Section{}
	err := r.pool.QueryRow(ctx, query, name).Scan(&s.Name, &s.DisplayName, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSectionNotFound
		}
		return nil, fmt.Errorf("get section by name: %w", err)
	}
	return s, nil
}

func (r *sectionRepo) List(ctx context.Context) ([]*domain.Section, error) {
	query := `
		SELECT name, display_name, created_at, updated_at
		FROM section
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var sections []*domain.Section
	for rows.Next() {
		s := &domain.Section{}
		if err := rows.Scan(&s.Name, &s.DisplayName, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan section row: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate section rows: %w", err)
	}
	return sections, nil
}
