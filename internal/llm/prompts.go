package llm

import (
	"fmt"

	"github.com/hanae/tripplanner/internal/domain"
)

func citySelectionPrompt(req domain.TripRequest) string {
	return fmt.Sprintf(`You are a city selection expert, skilled at analyzing
travel data to pick ideal destinations.

Analyze and select the best city for the trip based on specific criteria
such as weather patterns, seasonal events, and travel costs. Compare the
candidate cities considering current weather conditions, upcoming cultural
or seasonal events, and overall travel expenses.

Your final answer must be a detailed report on the chosen city, including
flight costs, the weather forecast, and attractions.

Traveling from: %s
City Options: %s
Trip Date: %s
Traveler Interests: %s`,
		req.Location, req.Cities, req.DateRange, req.Interests)
}

func cityGuidePrompt(req domain.TripRequest, cityReport string) string {
	return fmt.Sprintf(`You are a knowledgeable local guide with extensive
information about the selected city, its attractions and customs.

Using the city report below, compile an in-depth guide for someone
traveling there and wanting to have the best trip ever. Gather key
attractions, local customs, special events, and daily activity
recommendations, including hidden gems and cultural hotspots, with weather
forecasts and high-level costs.

The final answer must be a comprehensive city guide, rich in cultural
insights and practical tips.

Trip Date: %s
Traveling from: %s
Traveler Interests: %s

City report:
%s`,
		req.DateRange, req.Location, req.Interests, cityReport)
}

func itineraryPrompt(req domain.TripRequest, guide string) string {
	return fmt.Sprintf(`You are an amazing travel concierge, a specialist in
travel planning and logistics.

Expand the city guide below into a full travel itinerary covering every
day of the given date range, with detailed per-day plans including weather
forecasts, places to eat, packing suggestions, and a budget breakdown. You
must suggest actual places to visit, actual hotels to stay at, actual
restaurants to go to, and transportation options from %s to the
destination and within the city.

Your final answer must start with a brief "Daily Overview" of the whole
trip, followed by the complete expanded travel plan with each day in its
own paragraph. Use '---' to separate days and sections. After the daily
itinerary, add an "Accommodation Options" section listing accommodations
with prices and booking URLs, a "Logistics Options" section with
transportation suggestions and costs, and a "Detailed Budget Breakdown"
section with day-by-day and category totals.

Trip Date: %s
Traveling from: %s
Traveler Interests: %s

City guide:
%s`,
		req.Location, req.DateRange, req.Location, req.Interests, guide)
}
