package response_models

import "time"

type AdminStatsResponse struct {
	Users    int64 `json:"users"`
	Trips    int64 `json:"trips"`
	Messages int64 `json:"messages"`
}

type AdminUserResponse struct {
	ID         string    `json:"id"`
	FamilyName string    `json:"family_name"`
	GivenName  string    `json:"given_name"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type AdminTripResponse struct {
	ID             string    `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	OwnerID        string    `json:"owner_id"`
	OwnerName      string    `json:"owner_name"`
	Days           string    `json:"days"`
	SeatsAvailable int       `json:"seats_available"`
	PricePerSeat   int       `json:"price_per_seat"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// AdminTripCSVRow is one line of the trips export.
type AdminTripCSVRow struct {
	ID             string `csv:"id"`
	Origin         string `csv:"depart"`
	Destination    string `csv:"arrivee"`
	OwnerName      string `csv:"conducteur"`
	Days           string `csv:"jours"`
	SeatsAvailable int    `csv:"places"`
	PricePerSeat   int    `csv:"prix"`
	PublishedOn    string `csv:"date_publication"`
}

type AdminMessageResponse struct {
	ContactMessageResponse
	TripRoute string `json:"trip_route,omitempty"`
	OwnerName string `json:"owner_name,omitempty"`
}
