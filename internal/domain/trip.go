package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateRangeSeparator splits the two endpoints of a trip's date range.
const DateRangeSeparator = " to "

// TripRequest carries the parameters of a trip-planning submission.
type TripRequest struct {
	Location  string `json:"location" validate:"required"`
	Cities    string `json:"cities" validate:"required"`
	DateRange string `json:"date_range" validate:"required"`
	Interests string `json:"interests" validate:"required"`
}

// DateSpan parses the request's date range into its two endpoints. Each
// side may use any recognizable calendar layout; no single day/month
// ordering is enforced.
func (r TripRequest) DateSpan() (time.Time, time.Time, error) {
	first, second, found := strings.Cut(r.DateRange, DateRangeSeparator)
	if !found {
		return time.Time{}, time.Time{}, fmt.Errorf("date range %q is missing the %q separator", r.DateRange, DateRangeSeparator)
	}

	start, err := dateparse.ParseAny(strings.TrimSpace(first))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start date: %w", err)
	}

	end, err := dateparse.ParseAny(strings.TrimSpace(second))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse end date: %w", err)
	}

	return start, end, nil
}
