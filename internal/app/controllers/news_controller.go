package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/app/services"
	"github.com/alumnet/backend/internal/middleware"
)

// NewsController handles news endpoints
type NewsController struct {
	newsService services.NewsService
	logger      zerolog.Logger
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService, logger zerolog.Logger) *NewsController {
	return &NewsController{newsService: newsService, logger: logger}
}

// ListNews returns all news items
// @Summary List news
// @Tags news
// @Produce json
// @Success 200 {array} models.News
// @Router /news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	news, err := c.newsService.ListNews(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, news)
}

// CreateNews publishes an announcement
// @Summary Create news
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsRequest true "News item"
// @Success 201 {object} models.News
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	news, err := c.newsService.CreateNews(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("newsID", news.ID).Msg("News published")
	ctx.JSON(http.StatusCreated, news)
}
