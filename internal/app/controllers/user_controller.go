package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/app/services"
	"github.com/alumnet/backend/internal/middleware"
	"github.com/alumnet/backend/internal/pkg/apperrors"
)

// UserController handles profile, directory and user administration
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary Get current user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "No token, authorization denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, err := c.userService.GetProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateProfile updates the authenticated user's profile
// @Summary Update current user's profile
// @Description Accepts JSON, or multipart/form-data with an optional profilePic file. Absent fields are unchanged.
// @Tags profile
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string false "Display name"
// @Param bio formData string false "Short biography"
// @Param location formData string false "Location"
// @Param graduationYear formData int false "Graduation year"
// @Param profilePic formData file false "Profile picture"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "No token, authorization denied"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	isMultipart := strings.HasPrefix(ctx.ContentType(), gin.MIMEMultipartPOSTForm)

	switch {
	case isMultipart:
		if err := ctx.ShouldBind(&req); err != nil {
			middleware.HandleAPIError(ctx, middleware.BindingError(err))
			return
		}
	case ctx.Request.ContentLength != 0:
		if err := ctx.ShouldBindJSON(&req); err != nil {
			middleware.HandleAPIError(ctx, middleware.BindingError(err))
			return
		}
	}

	pic, err := optionalFile(ctx, "profilePic", isMultipart)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req, pic)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Directory lists approved alumni
// @Summary Alumni directory
// @Description Approved alumni, optionally filtered by exact graduation year and a case-insensitive location substring
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param year query int false "Graduation year"
// @Param location query string false "Location contains"
// @Success 200 {array} dto.DirectoryEntry
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 401 {object} dto.ErrorResponse "No token, authorization denied"
// @Router /directory [get]
func (c *UserController) Directory(ctx *gin.Context) {
	var q dto.DirectoryQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	filter := models.DirectoryFilter{Location: q.Location}
	if y := strings.TrimSpace(q.Year); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid year"))
			return
		}
		filter.Year = &year
	}

	users, err := c.userService.Directory(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDirectoryEntries(users))
}

// ListUsers lists every account
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "No token, authorization denied"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// SetApproval approves or un-approves a user
// @Summary Set a user's approval
// @Description Approving a previously unapproved user sends the approval email. A failed send is reported as emailSent=false; the approval stands.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body dto.ApprovalRequest true "Approval flag"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 400 {object} dto.ErrorResponse "isApproved is required"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id} [put]
func (c *UserController) SetApproval(ctx *gin.Context) {
	var req dto.ApprovalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	id := ctx.Param("id")
	user, sent, err := c.userService.SetApproval(ctx.Request.Context(), id, *req.IsApproved)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			c.logger.Error().Err(err).Str("userID", id).Msg("Failed to update approval")
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ApprovalResponse{
		User:      dto.NewUserResponse(user),
		EmailSent: sent,
	})
}
