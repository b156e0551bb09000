package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/db"
	"github.com/alumnet/backend/internal/pkg/logger"
)

// GalleryRepository handles gallery database operations
type GalleryRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(conn db.DBTX) *GalleryRepository {
	return &GalleryRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// Create inserts a gallery item
func (r *GalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	item.ID = newID()
	item.Date = nowUTC()

	sql, args, err := r.sb.Insert("gallery").
		Columns("id", "url", "caption", "uploader_id", "date").
		Values(item.ID, item.URL, item.Caption, item.UploaderID, item.Date).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create gallery query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("url", item.URL).Msg("Error executing create gallery query")
		return fmt.Errorf("error creating gallery item: %w", err)
	}
	return nil
}

// List returns gallery items with the uploader's name, newest first
func (r *GalleryRepository) List(ctx context.Context) ([]*models.GalleryItem, error) {
	sql, args, err := r.sb.Select("g.id", "g.url", "g.caption", "g.uploader_id", "COALESCE(u.name, '')", "g.date").
		From("gallery g").
		LeftJoin("users u ON u.id = g.uploader_id").
		OrderBy("g.date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list gallery query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing gallery: %w", err)
	}
	defer rows.Close()

	items := make([]*models.GalleryItem, 0)
	for rows.Next() {
		var g models.GalleryItem
		if err := rows.Scan(&g.ID, &g.URL, &g.Caption, &g.UploaderID, &g.UploaderName, &g.Date); err != nil {
			return nil, fmt.Errorf("error scanning gallery item: %w", err)
		}
		items = append(items, &g)
	}
	return items, rows.Err()
}
