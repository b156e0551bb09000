package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/auth"
	"github.com/alumnet/backend/internal/pkg/helpers"
)

// AuthService handles signup and login
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	userRepo   UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// invalidYearError carries the accepted range in its message
func invalidYearError(now time.Time) error {
	return apperrors.NewCustomError(apperrors.ErrInvalidYear,
		fmt.Sprintf("Graduation year must be between %d and %d", helpers.MinGraduationYear, helpers.MaxGraduationYear(now)))
}

// Signup registers an unapproved alumni account
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || req.Password == "" || name == "" {
		return nil, apperrors.NewMissingFieldError("Email, password, name and graduation year are required")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "User already exists")
	}

	if !helpers.ValidGraduationYear(req.GraduationYear, s.now()) {
		return nil, invalidYearError(s.now())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          email,
		Password:       hash,
		Name:           name,
		GraduationYear: req.GraduationYear,
		Role:           models.RoleAlumni,
		IsApproved:     false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index decides races between concurrent signups
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "User already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Str("userID", user.ID).Str("email", email).Msg("User registered, awaiting approval")
	return &dto.SignupResponse{Msg: "Registration successful. Your account is awaiting admin approval."}, nil
}

// Login checks the password before the approval flag, so a wrong password
// never reveals whether an account is approved.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	invalid := apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, invalid
	}

	if !user.IsApproved {
		return nil, apperrors.NewCustomError(apperrors.ErrPendingApproval, "Account pending approval")
	}

	token, expiresAt, err := s.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      dto.NewUserSummary(user),
	}, nil
}
