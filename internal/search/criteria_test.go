package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	dm "covoit/internal/models/domain_models"
)

func TestCriteriaFromQuery(t *testing.T) {
	q, _ := url.ParseQuery("depart=Cocody&arrivee=_all&jours=lundi,mardi&jours=lundi&jours=vendredi")

	c := CriteriaFromQuery(q)

	assert.Equal(t, dm.Cocody, c.Origin)
	assert.Equal(t, dm.District(""), c.Destination)
	assert.Equal(t, []dm.Weekday{dm.Lundi, dm.Mardi, dm.Vendredi}, c.Days)
	assert.False(t, c.IsEmpty())
}

func TestCriteriaFromQueryAccentedDistrict(t *testing.T) {
	q := url.Values{}
	q.Set("arrivee", "Port-Bouët")

	c := CriteriaFromQuery(q)

	assert.Equal(t, dm.PortBouet, c.Destination)
}

func TestCriteriaFromEmptyQuery(t *testing.T) {
	c := CriteriaFromQuery(url.Values{})
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Query())
}

func TestCriteriaQueryOmitsDays(t *testing.T) {
	c := NewCriteria("Yopougon", "Plateau", []string{"samedi"})

	q := c.Query()

	assert.Equal(t, "Yopougon", q.Get(ParamOrigin))
	assert.Equal(t, "Plateau", q.Get(ParamDestination))
	assert.False(t, q.Has(ParamDays))
}

func TestCriteriaQueryRoundTrip(t *testing.T) {
	c := NewCriteria("Attécoubé", "", nil)
	assert.Equal(t, c, CriteriaFromQuery(c.Query()))
}

func TestCriteriaIgnoredValuesAreEmpty(t *testing.T) {
	c := Criteria{Origin: "Riviera", Destination: AnyDistrict, Days: []dm.Weekday{"funday"}}

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Query())
	assert.True(t, c.Matches(dm.Trip{Origin: dm.Cocody, Destination: dm.Plateau, ActiveDays: []dm.Weekday{dm.Lundi}}))

	c.Days = append(c.Days, dm.Samedi)
	assert.False(t, c.IsEmpty())
	assert.Empty(t, c.Query())
}
