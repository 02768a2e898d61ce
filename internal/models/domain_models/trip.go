package domain_models

import (
	"strings"
	"time"
)

// Trip is a recurring commute offer as seen by the listing pages.
type Trip struct {
	ID             string
	OwnerID        string
	Origin         District
	Destination    District
	Waypoints      []District
	ActiveDays     []Weekday
	SeatsAvailable int
	PricePerSeat   int
	Description    string
	OwnerSummary   string
	PublishedAt    time.Time
}

// RunsOn reports whether the trip runs on at least one of days.
func (t Trip) RunsOn(days []Weekday) bool {
	for _, want := range days {
		for _, have := range t.ActiveDays {
			if want == have {
				return true
			}
		}
	}
	return false
}

// DisplayName renders "Jean K." from a given and family name.
func DisplayName(givenName, familyName string) string {
	givenName = strings.TrimSpace(givenName)
	familyName = strings.TrimSpace(familyName)
	if familyName == "" {
		return givenName
	}
	initial := []rune(familyName)[0]
	if givenName == "" {
		return string(initial) + "."
	}
	return givenName + " " + string(initial) + "."
}
