package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hanae/tripplanner/internal/domain"
	"github.com/hanae/tripplanner/internal/service"
)

// TripHandler handles trip-planning job endpoints.
type TripHandler struct {
	planner *service.PlannerService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(planner *service.PlannerService) *TripHandler {
	return &TripHandler{planner: planner}
}

type submitResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Submit accepts a trip-planning request and responds with the job id
// without waiting for generation to finish.
func (h *TripHandler) Submit(c echo.Context) error {
	var req domain.TripRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.planner.Submit(req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, submitResponse{
		JobID:   id,
		Status:  "started",
		Message: "Successfully initiated trip planning",
	})
}

// Status returns the polled snapshot of a job.
func (h *TripHandler) Status(c echo.Context) error {
	job, err := h.planner.Status(c.Param("job_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// bindError turns body-decoding failures into client errors, naming the
// offending field when the payload gave it a non-string value.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &domain.ValidationError{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be a string",
		}
	}
	return fmt.Errorf("%w: malformed request body", domain.ErrInvalidInput)
}
