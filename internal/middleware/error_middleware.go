package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/logger"
)

type errorMapping struct {
	target  error
	status  int
	message string // fallback when err carries no public message
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, "User already exists"},
	{apperrors.ErrInvalidYear, http.StatusBadRequest, "Invalid graduation year"},
	{apperrors.ErrInvalidAmount, http.StatusBadRequest, "Amount must be at least 1"},
	{apperrors.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
	{apperrors.ErrPaymentVerificationFailed, http.StatusBadRequest, "Payment verification failed"},
	{apperrors.ErrMissingField, http.StatusBadRequest, "Missing required fields"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, "Bad request"},
	{apperrors.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, "Request body too large"},
	{apperrors.ErrUnauthenticated, http.StatusUnauthorized, "No token, authorization denied"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, "Token is not valid"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, "Token is not valid"},
	{apperrors.ErrPendingApproval, http.StatusForbidden, "Account pending approval"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, "Access denied"},
	{apperrors.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{apperrors.ErrThreadNotFound, http.StatusNotFound, "Thread not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},
}

// StatusFor returns the HTTP status and client message for err
func StatusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if msg, ok := apperrors.PublicMessage(err); ok {
				return m.status, msg
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Server error"
}

// HandleAPIError writes the {msg} body for err. Unmapped errors are logged
// and reported as a generic server error.
func HandleAPIError(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Unhandled error")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(msg))
}
