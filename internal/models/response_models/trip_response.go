package response_models

import "time"

// TripCardResponse is one entry of the listing grid.
type TripCardResponse struct {
	ID             string    `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Waypoints      []string  `json:"waypoints"`
	Via            string    `json:"via,omitempty"`
	ActiveDays     []string  `json:"active_days"`
	DaysLabel      string    `json:"days_label"`
	SeatsAvailable int       `json:"seats_available"`
	PricePerSeat   int       `json:"price_per_seat"`
	Description    string    `json:"description,omitempty"`
	OwnerSummary   string    `json:"owner_summary"`
	PublishedAt    time.Time `json:"published_at"`
}

type TripDetailResponse struct {
	TripCardResponse
	DayLabels []string `json:"day_labels"`
}

// TripSearchResponse carries the filtered view plus the query string an
// explicit search submission writes back to the URL.
type TripSearchResponse struct {
	Count int                `json:"count"`
	Query string             `json:"query"`
	Trips []TripCardResponse `json:"trips"`
}
