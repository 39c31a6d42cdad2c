package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hanae/tripplanner/internal/domain"
	"github.com/hanae/tripplanner/internal/format"
	"github.com/hanae/tripplanner/internal/repository"
)

// Generator produces raw itinerary text from trip parameters. Calls may
// take seconds to minutes and may fail; the planner contains both.
type Generator interface {
	GenerateItinerary(ctx context.Context, req domain.TripRequest) (string, error)
}

// PlannerService accepts trip-planning submissions and drives each job
// from pending to a terminal state on its own goroutine.
type PlannerService struct {
	store     *repository.JobStore
	generator Generator
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(store *repository.JobStore, generator Generator) *PlannerService {
	return &PlannerService{store: store, generator: generator}
}

// Submit validates the date range, registers a new pending job, and
// dispatches generation without waiting for it. It returns the job id.
func (s *PlannerService) Submit(req domain.TripRequest) (string, error) {
	if _, _, err := req.DateSpan(); err != nil {
		return "", &domain.ValidationError{
			Field:   "date_range",
			Message: "Invalid date range format. Expected 'DD/MM/YYYY to DD/MM/YYYY'",
		}
	}

	id := uuid.NewString()
	if err := s.store.Create(id); err != nil {
		return "", err
	}

	go s.run(id, req)
	return id, nil
}

// Status returns the current snapshot of a job for pollers.
func (s *PlannerService) Status(id string) (domain.Job, error) {
	return s.store.Get(id)
}

// run drives one job to a terminal state. Every failure, panics
// included, ends up recorded on the job rather than escaping.
func (s *PlannerService) run(id string, req domain.TripRequest) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(id, fmt.Errorf("panic during generation: %v", r))
		}
	}()

	slog.Info("trip planning started",
		"job_id", id,
		"location", req.Location,
		"cities", req.Cities,
		"date_range", req.DateRange,
	)

	if err := s.store.Update(id, func(job *domain.Job) {
		job.Status = domain.JobStatusRunning
		job.Events = append(job.Events, domain.JobEvent{
			Timestamp: time.Now(),
			Data:      "Trip planning in progress",
		})
	}); err != nil {
		slog.Error("mark job running", "job_id", id, "error", err)
		return
	}

	result, err := s.generator.GenerateItinerary(context.Background(), req)
	if err != nil {
		s.fail(id, err)
		return
	}

	// An empty result is not an error.
	if strings.TrimSpace(result) == "" {
		result = "No result generated"
	}
	cleaned := format.Itinerary(result)

	if err := s.store.Update(id, func(job *domain.Job) {
		job.Status = domain.JobStatusCompleted
		job.Result = &domain.JobResult{Text: cleaned}
		job.Events = append(job.Events, domain.JobEvent{
			Timestamp: time.Now(),
			Data:      "Trip planning completed successfully",
		})
	}); err != nil {
		slog.Error("record job completion", "job_id", id, "error", err)
		return
	}

	slog.Info("trip planning completed", "job_id", id)
}

func (s *PlannerService) fail(id string, cause error) {
	slog.Error("trip planning failed", "job_id", id, "error", cause)

	if err := s.store.Update(id, func(job *domain.Job) {
		job.Status = domain.JobStatusFailed
		job.Result = &domain.JobResult{Err: cause.Error()}
		job.Events = append(job.Events, domain.JobEvent{
			Timestamp: time.Now(),
			Data:      "Error occurred: " + cause.Error(),
		})
	}); err != nil {
		slog.Error("record job failure", "job_id", id, "error", err)
	}
}
