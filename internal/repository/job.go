package repository

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hanae/tripplanner/internal/domain"
)

// JobStore owns every job record and serializes all access to them.
// Callers never hold a reference into the store: reads return snapshots
// and writes go through Update, so the mutex is only ever held for the
// duration of a single operation.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*domain.Job
}

// NewJobStore creates an empty in-memory job store.
func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]*domain.Job)}
}

// Create inserts a new pending job with its creation event. It fails
// with ErrConflict if the id is already taken.
func (s *JobStore) Create(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; ok {
		return fmt.Errorf("job %s: %w", id, domain.ErrConflict)
	}

	s.jobs[id] = &domain.Job{
		ID:     id,
		Status: domain.JobStatusPending,
		Events: []domain.JobEvent{{Timestamp: time.Now(), Data: "Job started"}},
	}
	return nil
}

// Get returns a snapshot of the job's current state.
func (s *JobStore) Get(id string) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return domain.Job{}, fmt.Errorf("job %s: %w", id, domain.ErrNotFound)
	}
	return snapshot(job), nil
}

// Update applies one atomic state transition. Jobs already in a terminal
// status are never mutated again; such attempts fail with ErrConflict.
func (s *JobStore) Update(id string, mutate func(*domain.Job)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return fmt.Errorf("job %s: %w", id, domain.ErrNotFound)
	}
	if job.Status.Terminal() {
		return fmt.Errorf("job %s already %s: %w", id, job.Status, domain.ErrConflict)
	}

	mutate(job)
	return nil
}

// Len reports the number of jobs held.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func snapshot(job *domain.Job) domain.Job {
	snap := *job
	snap.Events = slices.Clone(job.Events)
	if job.Result != nil {
		result := *job.Result
		snap.Result = &result
	}
	return snap
}
