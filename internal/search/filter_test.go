package search

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dm "covoit/internal/models/domain_models"
)

func trip(id string, origin, destination dm.District, days ...dm.Weekday) dm.Trip {
	return dm.Trip{ID: id, Origin: origin, Destination: destination, ActiveDays: days, SeatsAvailable: 1}
}

func ids(trips []dm.Trip) []string {
	out := make([]string, 0, len(trips))
	for _, t := range trips {
		out = append(out, t.ID)
	}
	return out
}

// randomTrips builds a deterministic mixed working set.
func randomTrips(n int, seed int64) []dm.Trip {
	r := rand.New(rand.NewSource(seed))
	out := make([]dm.Trip, 0, n)
	for i := 0; i < n; i++ {
		var days []dm.Weekday
		for _, w := range dm.Weekdays {
			if r.Intn(3) == 0 {
				days = append(days, w.ID)
			}
		}
		if len(days) == 0 {
			days = []dm.Weekday{dm.Weekdays[r.Intn(len(dm.Weekdays))].ID}
		}
		out = append(out, trip(
			fmt.Sprintf("t%d", i),
			dm.Districts[r.Intn(len(dm.Districts))],
			dm.Districts[r.Intn(len(dm.Districts))],
			days...,
		))
	}
	return out
}

func TestFilterCocodyOrigin(t *testing.T) {
	input := []dm.Trip{
		trip("1", dm.Cocody, dm.Plateau, dm.Lundi, dm.Mardi),
		trip("2", dm.Yopougon, dm.Cocody, dm.Lundi),
	}

	got := Filter(input, NewCriteria("Cocody", AnyDistrict, nil))

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterNoTripOnSaturday(t *testing.T) {
	input := []dm.Trip{
		trip("1", dm.Cocody, dm.Plateau, dm.Lundi, dm.Mardi),
		trip("2", dm.Yopougon, dm.Cocody, dm.Lundi, dm.Vendredi),
	}

	got := Filter(input, NewCriteria(AnyDistrict, AnyDistrict, []string{"samedi"}))

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDayIntersectionNotSubset(t *testing.T) {
	input := []dm.Trip{
		trip("1", dm.Abobo, dm.Marcory, dm.Mardi, dm.Jeudi, dm.Samedi),
		trip("2", dm.Abobo, dm.Marcory, dm.Lundi),
	}

	got := Filter(input, NewCriteria("", "", []string{"samedi", "dimanche"}))

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterAllCriteriaCombined(t *testing.T) {
	input := []dm.Trip{
		trip("1", dm.Cocody, dm.Plateau, dm.Lundi),
		trip("2", dm.Cocody, dm.Plateau, dm.Mardi),
		trip("3", dm.Cocody, dm.Adjame, dm.Lundi),
		trip("4", dm.Yopougon, dm.Plateau, dm.Lundi),
	}

	got := Filter(input, NewCriteria("Cocody", "Plateau", []string{"lundi"}))

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterTreatsMalformedCriteriaAsUnconstrained(t *testing.T) {
	input := randomTrips(20, 7)

	got := Filter(input, NewCriteria("Riviera", "  ", []string{"funday", ""}))
	assert.Equal(t, input, got)

	raw := Criteria{Origin: "Riviera", Days: []dm.Weekday{"funday"}}
	assert.Equal(t, input, Filter(input, raw))
}

func TestFilterIdentityWithEmptyCriteria(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		input := randomTrips(40, seed)
		assert.Equal(t, input, Filter(input, Criteria{}), "seed %d", seed)
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, NewCriteria("Cocody", "", nil))
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterProperties(t *testing.T) {
	input := randomTrips(200, 42)
	criteria := []Criteria{
		NewCriteria("Cocody", "", nil),
		NewCriteria("", "Plateau", nil),
		NewCriteria("", "", []string{"lundi"}),
		NewCriteria("Yopougon", "Adjamé", []string{"mardi", "jeudi"}),
		NewCriteria("Port-Bouët", "", []string{"dimanche"}),
	}

	for _, c := range criteria {
		c := c
		t.Run(fmt.Sprintf("%s-%s-%v", c.Origin, c.Destination, c.Days), func(t *testing.T) {
			got := Filter(input, c)

			for _, tr := range got {
				if c.Origin != "" {
					assert.Equal(t, c.Origin, tr.Origin)
				}
				if c.Destination != "" {
					assert.Equal(t, c.Destination, tr.Destination)
				}
				if len(c.Days) > 0 {
					assert.True(t, tr.RunsOn(c.Days))
				}
			}

			// every excluded trip fails at least one condition
			kept := make(map[string]bool, len(got))
			for _, tr := range got {
				kept[tr.ID] = true
			}
			for _, tr := range input {
				if !kept[tr.ID] {
					assert.False(t, c.Matches(tr), "trip %s wrongly excluded", tr.ID)
				}
			}

			assert.Equal(t, got, Filter(got, c), "filter must be idempotent")

			pos := make(map[string]int, len(input))
			for i, tr := range input {
				pos[tr.ID] = i
			}
			for i := 1; i < len(got); i++ {
				assert.Less(t, pos[got[i-1].ID], pos[got[i].ID], "input order must be preserved")
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	input := randomTrips(30, 3)
	snapshot := append([]dm.Trip(nil), input...)

	_ = Filter(input, NewCriteria("Cocody", "", []string{"lundi"}))

	assert.Equal(t, snapshot, input)
}
