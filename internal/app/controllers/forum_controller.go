package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/app/services"
	"github.com/alumnet/backend/internal/middleware"
)

// ForumController handles forum endpoints
type ForumController struct {
	forumService services.ForumService
	logger       zerolog.Logger
}

// NewForumController creates a new ForumController
func NewForumController(forumService services.ForumService, logger zerolog.Logger) *ForumController {
	return &ForumController{forumService: forumService, logger: logger}
}

// ListThreads returns all threads
// @Summary List forum threads
// @Tags forums
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ForumThread
// @Failure 401 {object} dto.ErrorResponse "No token, authorization denied"
// @Router /forums [get]
func (c *ForumController) ListThreads(ctx *gin.Context) {
	threads, err := c.forumService.ListThreads(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, threads)
}

// GetThread returns one thread with its replies
// @Summary Get forum thread
// @Tags forums
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Success 200 {object} models.ForumThread
// @Failure 404 {object} dto.ErrorResponse "Thread not found"
// @Router /forums/{id} [get]
func (c *ForumController) GetThread(ctx *gin.Context) {
	thread, err := c.forumService.GetThread(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, thread)
}

// CreateThread starts a thread
// @Summary Create forum thread
// @Tags forums
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateThreadRequest true "Thread"
// @Success 201 {object} models.ForumThread
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /forums [post]
func (c *ForumController) CreateThread(ctx *gin.Context) {
	var req dto.CreateThreadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	thread, err := c.forumService.CreateThread(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, thread)
}

// Reply appends a reply to a thread
// @Summary Reply to forum thread
// @Tags forums
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Param request body dto.ReplyRequest true "Reply"
// @Success 200 {object} models.ForumThread
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Thread not found"
// @Router /forums/{id}/reply [post]
func (c *ForumController) Reply(ctx *gin.Context) {
	var req dto.ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	thread, err := c.forumService.Reply(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUserID(ctx), req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, thread)
}
