package services

import (
	"context"
	"strings"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/helpers"
)

// EventService defines event operations
type EventService interface {
	CreateEvent(ctx context.Context, creatorID string, req *dto.CreateEventRequest) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
}

type eventServiceImpl struct {
	eventRepo EventStore
}

// NewEventService creates a new EventService
func NewEventService(eventRepo EventStore) EventService {
	return &eventServiceImpl{eventRepo: eventRepo}
}

// CreateEvent stores an event owned by creatorID
func (s *eventServiceImpl) CreateEvent(ctx context.Context, creatorID string, req *dto.CreateEventRequest) (*models.Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewMissingFieldError("Title is required")
	}

	date, err := helpers.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid event date")
	}

	event := &models.Event{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		Location:    strings.TrimSpace(req.Location),
		CreatorID:   creatorID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents returns events, latest first
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.List(ctx)
}
