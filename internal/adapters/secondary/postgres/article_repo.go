package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

type articleRepo struct {
	pool *pgxpool.Pool
}

func NewArticleRepository(pool *pgxpool.Pool) ports.ArticleRepository {
	return &articleRepo{pool: pool}
}

const articleColumns = `
	id, uri, url, slug_name, section, subsection, title, abstract, byline,
	item_type, source, material_type_facet, kicker, keywords, thumbnail_url,
	published_at, first_published_at, article_created_at, article_updated_at,
	created_at, updated_at`

func (r *articleRepo) Upsert(ctx context.Context, article *domain.Article) (ports.UpsertResult, error) {
	keywordsJSON, err := json.Marshal(article.Keywords)
	if err != nil {
		return ports.UpsertSkipped, fmt.Errorf("marshal keywords: %w", err)
	}

	query := `
		INSERT INTO article
			(id, uri, url, slug_name, section, subsection, title, abstract,
			 byline, item_type, source, material_type_facet, kicker, keywords,
			 thumbnail_url, published_at, first_published_at,
			 article_created_at, article_updated_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,NOW(),NOW())
		ON CONFLICT (uri) DO UPDATE SET
			url = EXCLUDED.url,
			slug_name = EXCLUDED.slug_name,
			section = EXCLUDED.section,
			subsection = EXCLUDED.subsection,
			title = EXCLUDED.title,
			abstract = EXCLUDED.abstract,
			byline = EXCLUDED.byline,
			item_type = EXCLUDED.item_type,
			source = EXCLUDED.source,
			material_type_facet = EXCLUDED.material_type_facet,
			kicker = EXCLUDED.kicker,
			keywords = EXCLUDED.keywords,
			thumbnail_url = EXCLUDED.thumbnail_url,
			published_at = EXCLUDED.published_at,
			first_published_at = EXCLUDED.first_published_at,
			article_created_at = EXCLUDED.article_created_at,
			article_updated_at = EXCLUDED.article_updated_at,
			updated_at = NOW()
		WHERE article.article_updated_at < EXCLUDED.article_updated_at
		RETURNING (xmax = 0) AS inserted
	`
	var inserted bool
	err = r.pool.QueryRow(ctx, query,
		article.ID, article.URI, article.URL, article.SlugName,
		article.Section, article.Subsection, article.Title, article.Abstract,
		article.Byline, article.ItemType, article.Source,
		article.MaterialTypeFacet, article.Kicker, keywordsJSON,
		article.ThumbnailURL, article.PublishedAt, article.FirstPublishedAt,
		article.ArticleCreatedAt, article.ArticleUpdatedAt,
	).Scan(&inserted)
	if err != nil {
		// No row returned means the conflict row was newer: nothing changed.
		if errors.Is(err, pgx.ErrNoRows) {
			return ports.UpsertSkipped, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ports.UpsertSkipped, domain.ErrArticleConflict
		}
		return ports.UpsertSkipped, fmt.Errorf("upsert article: %w", err)
	}
	if inserted {
		return ports.UpsertInserted, nil
	}
	return ports.UpsertUpdated, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM article WHERE id = $1`, articleColumns)
	a, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article by id: %w", err)
	}
	return a, nil
}

func (r *articleRepo) GetByURI(ctx context.Context, uri string) (*domain.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM article WHERE uri = $1`, articleColumns)
	a, err := scanArticle(r.pool.QueryRow(ctx, query, uri))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article by uri: %w", err)
	}
	return a, nil
}

func (r *articleRepo) List(ctx context.Context, filter ports.ArticleListFilter) ([]*domain.Article, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Section != "" {
		conditions = append(conditions, fmt.Sprintf("section = $%d", argPos))
		args = append(args, filter.Section)
		argPos++
	}
	if filter.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", argPos))
		args = append(args, filter.Source)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR abstract ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if !filter.PublishedFrom.IsZero() {
		conditions = append(conditions, fmt.Sprintf("published_at >= $%d", argPos))
		args = append(args, filter.PublishedFrom)
		argPos++
	}
	if !filter.PublishedTo.IsZero() {
		conditions = append(conditions, fmt.Sprintf("published_at <= $%d", argPos))
		args = append(args, filter.PublishedTo)
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM article WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	orderBy := "published_at DESC"
	if filter.SortBy != "" {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("%s %s", sortColumn(filter.SortBy), dir)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM article
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, articleColumns, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate article rows: %w", err)
	}

	return articles, total, nil
}

func (r *articleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM article WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// sortColumn whitelists sortable columns so filter input never reaches SQL.
func sortColumn(sortBy string) string {
	switch sortBy {
	case "published_at", "article_updated_at", "section", "title", "created_at":
		return sortBy
	}
	return "published_at"
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	a := &domain.Article{}
	var keywordsJSON []byte

	err := row.Scan(
		&a.ID, &a.URI, &a.URL, &a.SlugName, &a.Section, &a.Subsection,
		&a.Title, &a.Abstract, &a.Byline, &a.ItemType, &a.Source,
		&a.MaterialTypeFacet, &a.Kicker, &keywordsJSON, &a.ThumbnailURL,
		&a.PublishedAt, &a.FirstPublishedAt, &a.ArticleCreatedAt,
		&a.ArticleUpdatedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(keywordsJSON) > 0 {
		if err := json.Unmarshal(keywordsJSON, &a.Keywords); err != nil {
			return nil, fmt.Errorf("unmarshal keywords: %w", err)
		}
	}
	return a, nil
}
