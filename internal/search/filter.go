// Package search narrows the listed trip set down to the ones matching the
// criteria chosen on the search page.
package search

import "covoit/internal/models/domain_models"

// Filter returns the trips matching c, in their original order. It never
// mutates trips and always returns a non-nil slice.
func Filter(trips []domain_models.Trip, c Criteria) []domain_models.Trip {
	out := make([]domain_models.Trip, 0, len(trips))
	if c.IsEmpty() {
		return append(out, trips...)
	}
	for _, t := range trips {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
