package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/app/services"
	"github.com/alumnet/backend/internal/middleware"
)

// GalleryController handles gallery endpoints
type GalleryController struct {
	galleryService services.GalleryService
	logger         zerolog.Logger
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService services.GalleryService, logger zerolog.Logger) *GalleryController {
	return &GalleryController{galleryService: galleryService, logger: logger}
}

// ListGallery returns all gallery items
// @Summary List gallery
// @Tags gallery
// @Produce json
// @Success 200 {array} models.GalleryItem
// @Router /gallery [get]
func (c *GalleryController) ListGallery(ctx *gin.Context) {
	items, err := c.galleryService.ListGallery(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Upload stores an image
// @Summary Upload gallery image
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image"
// @Param caption formData string false "Caption"
// @Success 201 {object} models.GalleryItem
// @Failure 400 {object} dto.ErrorResponse "Image is required"
// @Failure 401 {object} dto.ErrorResponse "No token, authorization denied"
// @Router /gallery [post]
func (c *GalleryController) Upload(ctx *gin.Context) {
	isMultipart := strings.HasPrefix(ctx.ContentType(), gin.MIMEMultipartPOSTForm)
	image, err := optionalFile(ctx, "image", isMultipart)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	item, err := c.galleryService.Upload(ctx.Request.Context(), middleware.CurrentUserID(ctx), image, ctx.PostForm("caption"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("itemID", item.ID).Str("url", item.URL).Msg("Gallery image uploaded")
	ctx.JSON(http.StatusCreated, item)
}
