package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/db"
	"github.com/alumnet/backend/internal/pkg/logger"
)

// NewsRepository handles news database operations
type NewsRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(conn db.DBTX) *NewsRepository {
	return &NewsRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// Create inserts a news item; Date defaults to now
func (r *NewsRepository) Create(ctx context.Context, news *models.News) error {
	news.ID = newID()
	if news.Date.IsZero() {
		news.Date = nowUTC()
	}

	sql, args, err := r.sb.Insert("news").
		Columns("id", "title", "content", "author_id", "date").
		Values(news.ID, news.Title, news.Content, news.AuthorID, news.Date).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create news query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create news query")
		return fmt.Errorf("error creating news: %w", err)
	}
	return nil
}

// List returns news with the author's name, newest first
func (r *NewsRepository) List(ctx context.Context) ([]*models.News, error) {
	sql, args, err := r.sb.Select("n.id", "n.title", "n.content", "n.author_id", "COALESCE(u.name, '')", "n.date").
		From("news n").
		LeftJoin("users u ON u.id = n.author_id").
		OrderBy("n.date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing news: %w", err)
	}
	defer rows.Close()

	items := make([]*models.News, 0)
	for rows.Next() {
		var n models.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID, &n.AuthorName, &n.Date); err != nil {
			return nil, fmt.Errorf("error scanning news: %w", err)
		}
		items = append(items, &n)
	}
	return items, rows.Err()
}
