package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/app/services"
	"github.com/alumnet/backend/internal/middleware"
)

// BoardMinuteController handles board minute endpoints
type BoardMinuteController struct {
	minuteService services.BoardMinuteService
	logger        zerolog.Logger
}

// NewBoardMinuteController creates a new BoardMinuteController
func NewBoardMinuteController(minuteService services.BoardMinuteService, logger zerolog.Logger) *BoardMinuteController {
	return &BoardMinuteController{minuteService: minuteService, logger: logger}
}

// ListMinutes returns all board minutes
// @Summary List board minutes
// @Tags board-minutes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BoardMinute
// @Failure 401 {object} dto.ErrorResponse "No token, authorization denied"
// @Router /board-minutes [get]
func (c *BoardMinuteController) ListMinutes(ctx *gin.Context) {
	minutes, err := c.minuteService.ListMinutes(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, minutes)
}

// Publish uploads a board minute PDF
// @Summary Publish board minutes
// @Tags board-minutes
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param file formData file true "PDF document"
// @Success 201 {object} models.BoardMinute
// @Failure 400 {object} dto.ErrorResponse "Title and file are required"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /board-minutes [post]
func (c *BoardMinuteController) Publish(ctx *gin.Context) {
	isMultipart := strings.HasPrefix(ctx.ContentType(), gin.MIMEMultipartPOSTForm)
	file, err := optionalFile(ctx, "file", isMultipart)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	minute, err := c.minuteService.Publish(ctx.Request.Context(), ctx.PostForm("title"), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("minuteID", minute.ID).Msg("Board minutes published")
	ctx.JSON(http.StatusCreated, minute)
}
