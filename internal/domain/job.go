package domain

import (
	"encoding/json"
	"time"
)

// JobStatus represents the lifecycle state of a trip-planning job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Terminal reports whether the status admits no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobEvent is a timestamped progress note appended to a job's history.
type JobEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Data      string    `json:"data"`
}

// JobResult holds the outcome of a finished job: the formatted itinerary
// text on success, or an error message on failure.
type JobResult struct {
	Text string
	Err  string
}

// MarshalJSON renders the result the way pollers expect: a plain string
// for completed jobs, an {"error": ...} object for failed ones.
func (r JobResult) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(map[string]string{"error": r.Err})
	}
	return json.Marshal(r.Text)
}

// Job is one tracked unit of itinerary generation. Result stays nil until
// the job reaches a terminal status.
type Job struct {
	ID     string     `json:"job_id"`
	Status JobStatus  `json:"status"`
	Result *JobResult `json:"result"`
	Events []JobEvent `json:"events"`
}
