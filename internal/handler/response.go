package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hanae/tripplanner/internal/domain"
)

// errorResponse is the flat error body every failure path returns.
type errorResponse struct {
	Error string `json:"error"`
}

// HTTPErrorHandler is the global error handler for echo.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := mapError(err)
	if jsonErr := c.JSON(status, errorResponse{Error: message}); jsonErr != nil {
		slog.Error("failed to send error response", "error", jsonErr)
	}
}

func mapError(err error) (int, string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	// Handle echo's own HTTP errors (unknown routes, 405, etc.)
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		msg, _ := echoErr.Message.(string)
		if msg == "" {
			msg = http.StatusText(echoErr.Code)
		}
		return echoErr.Code, msg
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Job not found"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "The request body is invalid"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "The resource conflicts with current state"
	default:
		slog.Error("unhandled error", "error", err)
		return http.StatusInternalServerError, "An unexpected error occurred"
	}
}
