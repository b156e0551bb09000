package services

import (
	"context"
	"strings"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/pkg/apperrors"
)

// NewsService defines news operations
type NewsService interface {
	CreateNews(ctx context.Context, authorID string, req *dto.CreateNewsRequest) (*models.News, error)
	ListNews(ctx context.Context) ([]*models.News, error)
}

type newsServiceImpl struct {
	newsRepo NewsStore
}

// NewNewsService creates a new NewsService
func NewNewsService(newsRepo NewsStore) NewsService {
	return &newsServiceImpl{newsRepo: newsRepo}
}

// CreateNews stores an announcement authored by authorID
func (s *newsServiceImpl) CreateNews(ctx context.Context, authorID string, req *dto.CreateNewsRequest) (*models.News, error) {
	news := &models.News{
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		AuthorID: authorID,
	}
	if news.Title == "" || news.Content == "" {
		return nil, apperrors.NewMissingFieldError("Title and content are required")
	}
	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

// ListNews returns news, newest first
func (s *newsServiceImpl) ListNews(ctx context.Context) ([]*models.News, error) {
	return s.newsRepo.List(ctx)
}
