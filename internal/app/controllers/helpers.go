package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/backend/internal/middleware"
	"github.com/alumnet/backend/internal/pkg/apperrors"
)

// maxUploadMemory bounds the in-memory part of a multipart form
const maxUploadMemory = 10 << 20

// optionalFile returns the named multipart file, or nil when the request
// carries none.
func optionalFile(ctx *gin.Context, field string, isMultipart bool) (*multipart.FileHeader, error) {
	if !isMultipart {
		return nil, nil
	}
	if err := ctx.Request.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		if tooLarge := middleware.BodyTooLarge(err); tooLarge != nil {
			return nil, tooLarge
		}
		return nil, apperrors.NewBadRequestError("Invalid multipart form")
	}
	fh, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperrors.NewBadRequestError("Invalid file upload")
	}
	return fh, nil
}
