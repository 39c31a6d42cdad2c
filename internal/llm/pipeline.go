package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hanae/tripplanner/internal/domain"
)

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Pipeline generates an itinerary in three chained stages: pick the best
// city, compile a local guide for it, then expand the guide into a
// day-by-day plan. Each stage feeds its output into the next prompt.
type Pipeline struct {
	client completer
}

// NewPipeline creates a Pipeline backed by the given client.
func NewPipeline(client *Client) *Pipeline {
	return &Pipeline{client: client}
}

// GenerateItinerary runs the full pipeline and returns the raw itinerary
// text of the final stage.
func (p *Pipeline) GenerateItinerary(ctx context.Context, req domain.TripRequest) (string, error) {
	slog.Debug("selecting city", "cities", req.Cities)
	report, err := p.client.Complete(ctx, citySelectionPrompt(req))
	if err != nil {
		return "", fmt.Errorf("city selection: %w", err)
	}

	slog.Debug("compiling city guide")
	guide, err := p.client.Complete(ctx, cityGuidePrompt(req, report))
	if err != nil {
		return "", fmt.Errorf("city guide: %w", err)
	}

	slog.Debug("building itinerary")
	itinerary, err := p.client.Complete(ctx, itineraryPrompt(req, guide))
	if err != nil {
		return "", fmt.Errorf("itinerary: %w", err)
	}

	return itinerary, nil
}
