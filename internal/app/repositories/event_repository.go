package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/db"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/dberrors"
	"github.com/alumnet/backend/internal/pkg/logger"
)

// EventRepository handles event database operations
type EventRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(conn db.DBTX) *EventRepository {
	return &EventRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// Create inserts an event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = newID()
	event.CreatedAt = nowUTC()

	sql, args, err := r.sb.Insert("events").
		Columns("id", "title", "description", "date", "location", "creator_id", "created_at").
		Values(event.ID, event.Title, event.Description, event.Date, event.Location, event.CreatorID, event.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// List returns events with the creator's name, latest date first
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.title", "e.description", "e.date", "e.location", "e.creator_id",
		"COALESCE(u.name, '')", "e.created_at",
	).
		From("events e").
		LeftJoin("users u ON u.id = e.creator_id").
		OrderBy("e.date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.CreatorID, &e.CreatorName, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}
