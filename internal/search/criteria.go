package search

import (
	"net/url"
	"strings"

	"covoit/internal/models/domain_models"
)

// AnyDistrict is the selector value meaning "toutes les communes".
const AnyDistrict = "_all"

const (
	ParamOrigin      = "depart"
	ParamDestination = "arrivee"
	ParamDays        = "jours"
)

// Criteria is the active origin/destination/day filter. A zero Origin or
// Destination means any district; empty Days means no day constraint.
type Criteria struct {
	Origin      domain_models.District
	Destination domain_models.District
	Days        []domain_models.Weekday
}

// NewCriteria normalises raw selector values. Unknown districts and the
// "_all" sentinel both become "any"; unknown days are dropped.
func NewCriteria(origin, destination string, days []string) Criteria {
	return Criteria{
		Origin:      parseDistrict(origin),
		Destination: parseDistrict(destination),
		Days:        domain_models.ParseWeekdays(days),
	}
}

// CriteriaFromQuery reads depart, arrivee and jours from a listing URL.
// jours may be repeated or comma separated.
func CriteriaFromQuery(q url.Values) Criteria {
	var days []string
	for _, v := range q[ParamDays] {
		days = append(days, strings.Split(v, ",")...)
	}
	return NewCriteria(q.Get(ParamOrigin), q.Get(ParamDestination), days)
}

// Query is what an explicit search submission writes back to the URL.
// Days are not part of it.
func (c Criteria) Query() url.Values {
	params := url.Values{}
	if isConstraint(c.Origin) {
		params.Set(ParamOrigin, c.Origin.String())
	}
	if isConstraint(c.Destination) {
		params.Set(ParamDestination, c.Destination.String())
	}
	return params
}

// IsEmpty reports whether no constraint is active. Values Matches would
// ignore do not count.
func (c Criteria) IsEmpty() bool {
	return !isConstraint(c.Origin) && !isConstraint(c.Destination) && len(knownDays(c.Days)) == 0
}

// Matches applies the three conditions of the listing filter to one trip.
func (c Criteria) Matches(t domain_models.Trip) bool {
	if isConstraint(c.Origin) && t.Origin != c.Origin {
		return false
	}
	if isConstraint(c.Destination) && t.Destination != c.Destination {
		return false
	}
	if days := knownDays(c.Days); len(days) > 0 && !t.RunsOn(days) {
		return false
	}
	return true
}

func parseDistrict(v string) domain_models.District {
	v = strings.TrimSpace(v)
	if v == "" || v == AnyDistrict {
		return ""
	}
	d, ok := domain_models.ParseDistrict(v)
	if !ok {
		return ""
	}
	return d
}

func isConstraint(d domain_models.District) bool {
	return d != "" && domain_models.IsDistrict(string(d))
}

func knownDays(days []domain_models.Weekday) []domain_models.Weekday {
	out := days[:0:0]
	for _, d := range days {
		if domain_models.IsWeekday(string(d)) {
			out = append(out, d)
		}
	}
	return out
}
