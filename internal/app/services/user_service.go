package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/email"
	"github.com/alumnet/backend/internal/pkg/filestorage"
	"github.com/alumnet/backend/internal/pkg/helpers"
)

// UserService covers profile, directory and user administration
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, profilePic *multipart.FileHeader) (*models.User, error)
	Directory(ctx context.Context, filter models.DirectoryFilter) ([]*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	SetApproval(ctx context.Context, userID string, approved bool) (*models.User, bool, error)
}

type userServiceImpl struct {
	userRepo     UserStore
	fileStorage  filestorage.FileStorage
	emailService email.EmailService
	emailTimeout time.Duration
	logger       zerolog.Logger
	now          func() time.Time
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo UserStore,
	fileStorage filestorage.FileStorage,
	emailService email.EmailService,
	emailTimeout time.Duration,
	logger zerolog.Logger,
) UserService {
	if emailTimeout <= 0 {
		emailTimeout = 10 * time.Second
	}
	return &userServiceImpl{
		userRepo:     userRepo,
		fileStorage:  fileStorage,
		emailService: emailService,
		emailTimeout: emailTimeout,
		logger:       logger,
		now:          time.Now,
	}
}

// GetProfile returns the current user
func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile validates the supplied fields, stores the picture if one was
// sent, then writes the changes.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, profilePic *multipart.FileHeader) (*models.User, error) {
	var upd models.ProfileUpdate
	if req != nil {
		if req.Name != nil {
			upd.Name = helpers.StringPtr(*req.Name)
			if *upd.Name == "" {
				return nil, apperrors.NewValidationError("Name cannot be empty")
			}
		}
		if req.Bio != nil {
			upd.Bio = helpers.StringPtr(*req.Bio)
		}
		if req.Location != nil {
			upd.Location = helpers.StringPtr(*req.Location)
		}
		if req.GraduationYear != nil {
			if !helpers.ValidGraduationYear(*req.GraduationYear, s.now()) {
				return nil, invalidYearError(s.now())
			}
			year := *req.GraduationYear
			upd.GraduationYear = &year
		}
	}

	if profilePic != nil {
		url, err := s.fileStorage.SaveFile(ctx, profilePic, filestorage.FolderProfiles)
		if err != nil {
			return nil, fmt.Errorf("%w: profile picture upload: %v", apperrors.ErrExternalService, err)
		}
		upd.ProfilePic = &url
	}

	return s.userRepo.UpdateProfile(ctx, userID, upd)
}

// Directory lists approved alumni
func (s *userServiceImpl) Directory(ctx context.Context, filter models.DirectoryFilter) ([]*models.User, error) {
	filter.Location = strings.TrimSpace(filter.Location)
	return s.userRepo.ListDirectory(ctx, filter)
}

// ListUsers lists every account for administrators
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListAll(ctx)
}

// SetApproval writes the flag. On a false->true transition the approval
// email is sent; a send failure is logged and reported, and the approval
// stands.
func (s *userServiceImpl) SetApproval(ctx context.Context, userID string, approved bool) (*models.User, bool, error) {
	user, wasApproved, err := s.userRepo.SetApproved(ctx, userID, approved)
	if err != nil {
		return nil, false, err
	}

	s.logger.Info().Str("userID", userID).Bool("isApproved", approved).Bool("wasApproved", wasApproved).Msg("User approval updated")

	if !approved || wasApproved {
		return user, false, nil
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.emailTimeout)
	defer cancel()

	if err := s.emailService.SendApprovalEmail(sendCtx, user.Email, user.Name); err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Str("email", user.Email).Msg("Failed to send approval email")
		return user, false, nil
	}
	return user, true, nil
}
