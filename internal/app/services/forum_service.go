package services

import (
	"context"
	"strings"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/pkg/apperrors"
)

// ForumService defines forum operations
type ForumService interface {
	CreateThread(ctx context.Context, authorID string, req *dto.CreateThreadRequest) (*models.ForumThread, error)
	ListThreads(ctx context.Context) ([]*models.ForumThread, error)
	GetThread(ctx context.Context, id string) (*models.ForumThread, error)
	Reply(ctx context.Context, threadID, authorID, content string) (*models.ForumThread, error)
}

type forumServiceImpl struct {
	forumRepo ForumStore
}

// NewForumService creates a new ForumService
func NewForumService(forumRepo ForumStore) ForumService {
	return &forumServiceImpl{forumRepo: forumRepo}
}

// CreateThread opens a thread authored by authorID
func (s *forumServiceImpl) CreateThread(ctx context.Context, authorID string, req *dto.CreateThreadRequest) (*models.ForumThread, error) {
	thread := &models.ForumThread{
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		AuthorID: authorID,
	}
	if thread.Title == "" || thread.Content == "" {
		return nil, apperrors.NewMissingFieldError("Title and content are required")
	}
	if err := s.forumRepo.Create(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// ListThreads returns threads, newest first
func (s *forumServiceImpl) ListThreads(ctx context.Context) ([]*models.ForumThread, error) {
	return s.forumRepo.List(ctx)
}

// GetThread returns one thread with its replies
func (s *forumServiceImpl) GetThread(ctx context.Context, id string) (*models.ForumThread, error) {
	return s.forumRepo.GetByID(ctx, id)
}

// Reply appends a reply to the thread and returns the updated thread
func (s *forumServiceImpl) Reply(ctx context.Context, threadID, authorID, content string) (*models.ForumThread, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewMissingFieldError("Content is required")
	}
	return s.forumRepo.AppendReply(ctx, threadID, models.Reply{Content: content, Author: authorID})
}
