package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/auth"
	"github.com/alumnet/backend/internal/pkg/logger"
)

// UserLookup loads the stored account behind a token
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   UserLookup
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo UserLookup) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the bearer token and stores the caller's identity on the
// request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No token, authorization denied"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Token is not valid"))
			return
		}

		identity, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				logger.Debug().Str("path", c.FullPath()).Msg("Expired token rejected")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Token is not valid"))
			return
		}

		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// AdminOnly re-reads the caller's stored role; a token minted before a
// demotion grants nothing. Must run after JWTAuth.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.IdentityFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No token, authorization denied"))
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), identity.UserID)
		if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
			HandleAPIError(c, fmt.Errorf("admin check for %s: %w", identity.UserID, err))
			return
		}

		if err != nil || !user.IsAdmin() {
			HandleAPIError(c, apperrors.NewForbiddenError("Access denied"))
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated caller, or "" outside JWTAuth
func CurrentUserID(c *gin.Context) string {
	identity, ok := auth.IdentityFromContext(c.Request.Context())
	if !ok {
		return ""
	}
	return identity.UserID
}
