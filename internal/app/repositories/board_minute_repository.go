package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/db"
	"github.com/alumnet/backend/internal/pkg/logger"
)

// BoardMinuteRepository handles board minutes database operations
type BoardMinuteRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewBoardMinuteRepository creates a new BoardMinuteRepository
func NewBoardMinuteRepository(conn db.DBTX) *BoardMinuteRepository {
	return &BoardMinuteRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// Create inserts a board minute record
func (r *BoardMinuteRepository) Create(ctx context.Context, minute *models.BoardMinute) error {
	minute.ID = newID()
	minute.Date = nowUTC()

	sql, args, err := r.sb.Insert("board_minutes").
		Columns("id", "title", "file_url", "date").
		Values(minute.ID, minute.Title, minute.FileURL, minute.Date).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create board minute query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("title", minute.Title).Msg("Error executing create board minute query")
		return fmt.Errorf("error creating board minute: %w", err)
	}
	return nil
}

// List returns board minutes, newest first
func (r *BoardMinuteRepository) List(ctx context.Context) ([]*models.BoardMinute, error) {
	sql, args, err := r.sb.Select("id", "title", "file_url", "date").
		From("board_minutes").
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list board minutes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing board minutes: %w", err)
	}
	defer rows.Close()

	minutes := make([]*models.BoardMinute, 0)
	for rows.Next() {
		var m models.BoardMinute
		if err := rows.Scan(&m.ID, &m.Title, &m.FileURL, &m.Date); err != nil {
			return nil, fmt.Errorf("error scanning board minute: %w", err)
		}
		minutes = append(minutes, &m)
	}
	return minutes, rows.Err()
}
