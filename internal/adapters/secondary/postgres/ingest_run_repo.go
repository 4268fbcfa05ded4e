package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

type ingestRunRepo struct {
	pool *pgxpool.Pool
}

func NewIngestRunRepository(pool *pgxpool.Pool) ports.IngestRunRepository {
	return &ingestRunRepo{pool: pool}
}

func (r *ingestRunRepo) Create(ctx context.Context, run *domain.IngestRun) error {
	query := `
		INSERT INTO ingest_run
			(id, source, section, status, started_at, finished_at,
			 fetched, inserted, updated, skipped, error)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	_, err := r.pool.Exec(ctx, query,
		run.ID, run.Source, run.Section, string(run.Status),
		run.StartedAt, run.FinishedAt,
		run.Fetched, run.Inserted, run.Updated, run.Skipped, run.Error,
	)
	if err != nil {
		return fmt.Errorf("create ingest run: %w", err)
	}
	return nil
}

func (r *ingestRunRepo) Update(ctx context.Context, run *domain.IngestRun) error {
	query := `
		UPDATE ingest_run
		SET status=$1, finished_at=$2, fetched=$3, inserted=$4,
			updated=$5, skipped=$6, error=$7
		WHERE id=$8
	`
	result, err := r.pool.Exec(ctx, query,
		string(run.Status), run.FinishedAt,
		run.Fetched, run.Inserted, run.Updated, run.Skipped, run.Error,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("update ingest run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrRunNotFound
	}
	return nil
}

func (r *ingestRunRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.IngestRun, error) {
	query := `
		SELECT id, source, section, status, started_at, finished_at,
			   fetched, inserted, updated, skipped, error
		FROM ingest_run
		WHERE id = $1
	`
	run, err := scanRun(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("get ingest run by id: %w", err)
	}
	return run, nil
}

func (r *ingestRunRepo) List(ctx context.Context, filter ports.RunListFilter) ([]*domain.IngestRun, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Section != "" {
		conditions = append(conditions, fmt.Sprintf("section = $%d", argPos))
		args = append(args, filter.Section)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM ingest_run WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ingest runs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, source, section, status, started_at, finished_at,
			   fetched, inserted, updated, skipped, error
		FROM ingest_run
		WHERE %s
		ORDER BY started_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ingest runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.IngestRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ingest run row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate ingest run rows: %w", err)
	}

	return runs, total, nil
}

func scanRun(row pgx.Row) (*domain.IngestRun, error) {
	run := &domain.IngestRun{}
	var status string

	err := row.Scan(
		&run.ID, &run.Source, &run.Section, &status,
		&run.StartedAt, &run.FinishedAt,
		&run.Fetched, &run.Inserted, &run.Updated, &run.Skipped, &run.Error,
	)
	if err != nil {
		return nil, err
	}
	run.Status = domain.RunStatus(status)
	return run, nil
}
