package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Trip is a published recurring commute. CreatedAt is the publication date.
type Trip struct {
	BaseModel
	OwnerID        uuid.UUID      `gorm:"type:uuid;index;not null"`
	Origin         string         `gorm:"not null;index"`
	Destination    string         `gorm:"not null;index"`
	Waypoint1      *string
	Waypoint2      *string
	Waypoint3      *string
	ActiveDays     pq.StringArray `gorm:"type:text[];not null"`
	SeatsAvailable int            `gorm:"not null;check:seats_available > 0"`
	PricePerSeat   int            `gorm:"not null;check:price_per_seat >= 0"`
	Description    *string        `gorm:"type:text"`
	IsActive       bool           `gorm:"not null;default:true;index"`
}

// Waypoints returns the set waypoint columns in order.
func (t *Trip) Waypoints() []string {
	out := make([]string, 0, 3)
	for _, w := range []*string{t.Waypoint1, t.Waypoint2, t.Waypoint3} {
		if w != nil && *w != "" {
			out = append(out, *w)
		}
	}
	return out
}

// SetWaypoints fills the waypoint columns from up to three values.
func (t *Trip) SetWaypoints(waypoints []string) {
	slots := []**string{&t.Waypoint1, &t.Waypoint2, &t.Waypoint3}
	for i, slot := range slots {
		if i < len(waypoints) {
			w := waypoints[i]
			*slot = &w
			continue
		}
		*slot = nil
	}
}
