package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanae/tripplanner/internal/domain"
)

type scriptedCompleter struct {
	prompts   []string
	responses []string
	err       error
	failAt    int
}

func (s *scriptedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	call := len(s.prompts)
	s.prompts = append(s.prompts, prompt)
	if s.err != nil && call == s.failAt {
		return "", s.err
	}
	return s.responses[call], nil
}

func testRequest() domain.TripRequest {
	return domain.TripRequest{
		Location:  "London",
		Cities:    "Paris, Rome",
		DateRange: "03/11/2024 to 05/11/2024",
		Interests: "museums, food",
	}
}

func TestPipelineChainsStages(t *testing.T) {
	completer := &scriptedCompleter{
		responses: []string{"city report", "city guide", "final itinerary"},
	}
	p := &Pipeline{client: completer}

	itinerary, err := p.GenerateItinerary(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "final itinerary", itinerary)

	require.Len(t, completer.prompts, 3)

	// Each stage carries the trip parameters.
	for _, prompt := range completer.prompts {
		assert.Contains(t, prompt, "London")
		assert.Contains(t, prompt, "03/11/2024 to 05/11/2024")
		assert.Contains(t, prompt, "museums, food")
	}
	assert.Contains(t, completer.prompts[0], "Paris, Rome")

	// Each stage feeds the previous stage's output forward.
	assert.Contains(t, completer.prompts[1], "city report")
	assert.Contains(t, completer.prompts[2], "city guide")

	// The final stage asks for the separator the formatter splits on.
	assert.Contains(t, completer.prompts[2], "'---'")
}

func TestPipelinePropagatesStageErrors(t *testing.T) {
	tests := []struct {
		failAt int
		want   string
	}{
		{failAt: 0, want: "city selection"},
		{failAt: 1, want: "city guide"},
		{failAt: 2, want: "itinerary"},
	}

	for _, tt := range tests {
		completer := &scriptedCompleter{
			responses: []string{"report", "guide", "plan"},
			err:       errors.New("rate limited"),
			failAt:    tt.failAt,
		}
		p := &Pipeline{client: completer}

		_, err := p.GenerateItinerary(context.Background(), testRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), tt.want)
		assert.Contains(t, err.Error(), "rate limited")
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("", "gpt-4o-mini", 0)
	require.ErrorIs(t, err, ErrAPIKeyNotSet)

	client, err := NewClient("sk-test", "", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, client.model)
	assert.Equal(t, DefaultTimeout, client.timeout)
}
