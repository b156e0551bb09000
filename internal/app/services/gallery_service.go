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

// GalleryService defines gallery operations
type GalleryService interface {
	Upload(ctx context.Context, uploaderID string, image *multipart.FileHeader, caption string) (*models.GalleryItem, error)
	ListGallery(ctx context.Context) ([]*models.GalleryItem, error)
}

type galleryServiceImpl struct {
	galleryRepo GalleryStore
	fileStorage filestorage.FileStorage
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(galleryRepo GalleryStore, fileStorage filestorage.FileStorage) GalleryService {
	return &galleryServiceImpl{galleryRepo: galleryRepo, fileStorage: fileStorage}
}

// Upload stores the image in the upload sink and records it
func (s *galleryServiceImpl) Upload(ctx context.Context, uploaderID string, image *multipart.FileHeader, caption string) (*models.GalleryItem, error) {
	if image == nil {
		return nil, apperrors.NewMissingFieldError("Image is required")
	}

	url, err := s.fileStorage.SaveFile(ctx, image, filestorage.FolderGallery)
	if err != nil {
		return nil, fmt.Errorf("%w: gallery upload: %v", apperrors.ErrExternalService, err)
	}

	item := &models.GalleryItem{
		URL:        url,
		Caption:    strings.TrimSpace(caption),
		UploaderID: uploaderID,
	}
	if err := s.galleryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListGallery returns gallery items, newest first
func (s *galleryServiceImpl) ListGallery(ctx context.Context) ([]*models.GalleryItem, error) {
	return s.galleryRepo.List(ctx)
}
