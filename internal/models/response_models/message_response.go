package response_models

import "time"

type ContactMessageResponse struct {
	ID          string    `json:"id"`
	TripID      string    `json:"trip_id"`
	SenderName  string    `json:"sender_name"`
	SenderPhone string    `json:"sender_phone"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
