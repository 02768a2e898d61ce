package domain_models

import "strings"

// Weekday identifies a day of the week a recurring trip runs on.
type Weekday string

const (
	Lundi    Weekday = "lundi"
	Mardi    Weekday = "mardi"
	Mercredi Weekday = "mercredi"
	Jeudi    Weekday = "jeudi"
	Vendredi Weekday = "vendredi"
	Samedi   Weekday = "samedi"
	Dimanche Weekday = "dimanche"
)

type WeekdayInfo struct {
	ID    Weekday `json:"id"`
	Label string  `json:"label"`
	Short string  `json:"short"`
}

// Weekdays lists the week starting on Monday.
var Weekdays = []WeekdayInfo{
	{ID: Lundi, Label: "Lundi", Short: "Lun"},
	{ID: Mardi, Label: "Mardi", Short: "Mar"},
	{ID: Mercredi, Label: "Mercredi", Short: "Mer"},
	{ID: Jeudi, Label: "Jeudi", Short: "Jeu"},
	{ID: Vendredi, Label: "Vendredi", Short: "Ven"},
	{ID: Samedi, Label: "Samedi", Short: "Sam"},
	{ID: Dimanche, Label: "Dimanche", Short: "Dim"},
}

func lookupWeekday(id Weekday) (WeekdayInfo, bool) {
	for _, w := range Weekdays {
		if w.ID == id {
			return w, true
		}
	}
	return WeekdayInfo{}, false
}

func IsWeekday(v string) bool {
	_, ok := lookupWeekday(Weekday(v))
	return ok
}

func WeekdayLabel(id Weekday) string {
	w, _ := lookupWeekday(id)
	return w.Label
}

func WeekdayShort(id Weekday) string {
	w, _ := lookupWeekday(id)
	return w.Short
}

// WeekdayLabels maps ids to full labels, skipping unknown ids.
func WeekdayLabels(days []Weekday) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		if l := WeekdayLabel(d); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// ShortDays renders days as "Lun, Mar, Mer".
func ShortDays(days []Weekday) string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		if s := WeekdayShort(d); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ", ")
}

// ParseWeekdays keeps the known ids of raw, in order and without duplicates.
func ParseWeekdays(raw []string) []Weekday {
	out := make([]Weekday, 0, len(raw))
	seen := make(map[Weekday]struct{}, len(raw))
	for _, r := range raw {
		d := Weekday(strings.ToLower(strings.TrimSpace(r)))
		if !IsWeekday(string(d)) {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
