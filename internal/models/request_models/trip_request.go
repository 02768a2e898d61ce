package request_models

// PublishTripRequest mirrors the publish form. Waypoints left empty or set
// to "_none" are ignored.
type PublishTripRequest struct {
	Origin         string   `json:"origin" binding:"required"`
	Destination    string   `json:"destination" binding:"required"`
	ActiveDays     []string `json:"active_days" binding:"required,min=1"`
	SeatsAvailable int      `json:"seats_available" binding:"min=1,max=8"`
	PricePerSeat   int      `json:"price_per_seat" binding:"min=100"`
	Waypoints      []string `json:"waypoints" binding:"max=3"`
	Description    string   `json:"description"`
}
