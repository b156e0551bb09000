package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/filestorage"
)

// BoardMinuteService defines board minute operations
type BoardMinuteService interface {
	Publish(ctx context.Context, title string, file *multipart.FileHeader) (*models.BoardMinute, error)
	ListMinutes(ctx context.Context) ([]*models.BoardMinute, error)
}

type boardMinuteServiceImpl struct {
	minuteRepo  BoardMinuteStore
	fileStorage filestorage.FileStorage
}

// NewBoardMinuteService creates a new BoardMinuteService
func NewBoardMinuteService(minuteRepo BoardMinuteStore, fileStorage filestorage.FileStorage) BoardMinuteService {
	return &boardMinuteServiceImpl{minuteRepo: minuteRepo, fileStorage: fileStorage}
}

// Publish uploads a PDF and records it under title
func (s *boardMinuteServiceImpl) Publish(ctx context.Context, title string, file *multipart.FileHeader) (*models.BoardMinute, error) {
	title = strings.TrimSpace(title)
	if title == "" || file == nil {
		return nil, apperrors.NewMissingFieldError("Title and file are required")
	}
	if !filestorage.IsPDF(file) {
		return nil, apperrors.NewValidationError("Only PDF files are allowed")
	}

	url, err := s.fileStorage.SaveFile(ctx, file, filestorage.FolderBoardMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: board minute upload: %v", apperrors.ErrExternalService, err)
	}

	minute := &models.BoardMinute{Title: title, FileURL: url}
	if err := s.minuteRepo.Create(ctx, minute); err != nil {
		return nil, err
	}
	return minute, nil
}

// ListMinutes returns board minutes, newest first
func (s *boardMinuteServiceImpl) ListMinutes(ctx context.Context) ([]*models.BoardMinute, error) {
	return s.minuteRepo.List(ctx)
}
