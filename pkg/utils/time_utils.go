package utils

import "time"

// Abidjan time location (GMT, +00:00)
var ciLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Abidjan"); err == nil {
		return loc
	}
	return time.FixedZone("GMT", 0)
}()

// FormatDateFR renders a date the way the listing pages do (15/01/2024).
func FormatDateFR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(ciLoc).Format("02/01/2006")
}
