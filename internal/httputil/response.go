// Package httputil provides the JSON envelope and error mapping shared by all handlers.
package httputil

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/social/internal/errors"
)

// internalErrorMessage is shown for every unclassified failure.
const internalErrorMessage = "An internal error occurred, please try again later"

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK writes a successful envelope around data.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// Fail writes a failed envelope.
func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{Success: false, Error: code, Message: message})
}

// HandleErrorGin maps error categories to status codes and writes a failed envelope.
// Messages of errors declared with apperrors.Define are passed to the client,
// anything unclassified is logged and hidden behind a generic message.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var code, message string

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode, code, message = http.StatusNotFound, "not_found", "The requested resource was not found"
	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode, code, message = http.StatusConflict, "conflict", "A conflict occurred with existing data"
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode, code, message = http.StatusUnprocessableEntity, "invalid_input", err.Error()
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode, code, message = http.StatusUnauthorized, "unauthorized", "Authentication is required"
	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode, code, message = http.StatusForbidden, "forbidden", "You don't have permission to access this resource"
	case apperrors.Is(err, apperrors.ErrTooManyRequests):
		statusCode, code, message = http.StatusTooManyRequests, "rate_limit_exceeded", "Too many requests, please try again later"
	default:
		statusCode, code, message = http.StatusInternalServerError, "internal_error", internalErrorMessage
	}

	var domainErr *apperrors.DomainError
	if statusCode != http.StatusInternalServerError && apperrors.As(err, &domainErr) {
		message = domainErr.Message
	}

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", code),
			slog.Any("error", err),
		)
	}

	Fail(c, statusCode, code, message)
}

// HandleBadRequestGin writes a 400 for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}
	Fail(c, http.StatusBadRequest, "bad_request", err.Error())
}

// HandleValidationErrorGin writes a 422 for request validation failures.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}
	Fail(c, http.StatusUnprocessableEntity, "validation_error", err.Error())
}

// ParseIDParam reads a positive int64 path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter: must be a positive integer", name)
	}
	return id, nil
}
