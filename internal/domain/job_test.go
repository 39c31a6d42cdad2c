package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatusTerminal(t *testing.T) {
	assert.False(t, JobStatusPending.Terminal())
	assert.False(t, JobStatusRunning.Terminal())
	assert.True(t, JobStatusCompleted.Terminal())
	assert.True(t, JobStatusFailed.Terminal())
}

func TestJobResultMarshalJSON(t *testing.T) {
	success, err := json.Marshal(JobResult{Text: "Day 1\n\nDay 2"})
	require.NoError(t, err)
	assert.JSONEq(t, `"Day 1\n\nDay 2"`, string(success))

	failure, err := json.Marshal(JobResult{Err: "backend unavailable"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "backend unavailable"}`, string(failure))
}

func TestJobMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Job{ID: "abc", Status: JobStatusPending})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.JSONEq(t, `"abc"`, string(decoded["job_id"]))
	assert.JSONEq(t, `"pending"`, string(decoded["status"]))
	assert.JSONEq(t, `null`, string(decoded["result"]))
}
