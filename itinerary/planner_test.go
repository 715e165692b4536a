package itinerary

import (
	"fmt"
	"testing"

	"nilenavigator/catalog"
	"nilenavigator/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(h float64) *float64 { return &h }

func smallCatalog() *catalog.Catalog {
	return catalog.New([]models.Attraction{
		{ID: "a", Name: "A", Type: "museum", City: "Cairo", Governorate: "Cairo", BestTransport: []string{"Metro"}, EstimatedHours: hours(1.5)},
		{ID: "b", Name: "B", Type: "heritage", City: "Cairo", Governorate: "Cairo"},
		{ID: "c", Name: "C", Type: "heritage", City: "Giza", Governorate: "Giza", BestTransport: []string{"Uber"}, EstimatedHours: hours(3)},
		{ID: "d", Name: "D", Type: "historical", City: "Luxor", Governorate: "Luxor", BestTransport: []string{"Tour Bus"}, EstimatedHours: hours(4)},
	}, nil)
}

func slot(time, name, city string) models.Slot {
	return models.Slot{Time: time, Name: name, City: city}
}

func TestGenerateEmptySelection(t *testing.T) {
	p := NewPlanner(smallCatalog())
	for days := 1; days <= MaxDays; days++ {
		plan := p.Generate(days, NewSelectionSet())
		assert.NotNil(t, plan)
		assert.Empty(t, plan, "days=%d", days)
	}
	// ids the catalog does not know behave like no selection
	assert.Empty(t, p.Generate(3, NewSelectionSet("nope")))
}

func TestGenerateTwoDays(t *testing.T) {
	plan := NewPlanner(smallCatalog()).Generate(2, NewSelectionSet("d", "c", "b", "a"))
	assert.Equal(t, models.TripPlan{
		{slot("09:00", "A", "Cairo"), slot("12:30", "B", "Cairo")},
		{slot("09:00", "C", "Giza"), slot("12:30", "D", "Luxor")},
	}, plan)
}

func TestGenerateSingleDayReusesLastLabel(t *testing.T) {
	plan := NewPlanner(smallCatalog()).Generate(1, NewSelectionSet("a", "b", "c", "d"))
	assert.Equal(t, models.TripPlan{{
		slot("09:00", "A", "Cairo"),
		slot("12:30", "B", "Cairo"),
		slot("15:30", "C", "Giza"),
		slot("15:30", "D", "Luxor"),
	}}, plan)
}

func TestGenerateKeepsTrailingEmptyDays(t *testing.T) {
	plan := NewPlanner(smallCatalog()).Generate(3, NewSelectionSet("a"))
	require.Len(t, plan, 3)
	assert.Equal(t, models.DayPlan{slot("09:00", "A", "Cairo")}, plan[0])
	assert.Equal(t, models.DayPlan{}, plan[1])
	assert.Equal(t, models.DayPlan{}, plan[2])
}

func TestGeneratePartitionsSelection(t *testing.T) {
	c := catalog.Default()
	all := c.ListAttractions()
	p := NewPlanner(c)

	for _, n := range []int{1, 2, 5, 13, 40, len(all)} {
		var ids []string
		for _, a := range all[:n] {
			ids = append(ids, a.ID)
		}
		for days := MinDays; days <= MaxDays; days++ {
			name := fmt.Sprintf("n=%d/days=%d", n, days)
			plan := p.Generate(days, NewSelectionSet(ids...))
			require.Len(t, plan, days, name)

			perDay := PerDay(n, days)
			seen := map[string]int{}
			for _, day := range plan {
				assert.LessOrEqual(t, len(day), perDay, name)
				for i, s := range day {
					seen[s.Name]++
					if i >= 2 {
						assert.Equal(t, "15:30", s.Time, name)
					}
				}
			}
			assert.Len(t, seen, n, name)
			for _, a := range all[:n] {
				assert.Equal(t, 1, seen[a.Name], name)
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	ids := []string{"karnak", "valley-kings", "egyptian-museum", "luxor-temple"}
	assert.Equal(t, Generate(2, ids), Generate(2, ids))
}

func TestGenerateTreatsNonPositiveDaysAsOne(t *testing.T) {
	plan := NewPlanner(smallCatalog()).Generate(0, NewSelectionSet("a", "b"))
	assert.Len(t, plan, 1)
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, 1, ClampDays(-4))
	assert.Equal(t, 1, ClampDays(0))
	assert.Equal(t, 7, ClampDays(7))
	assert.Equal(t, 14, ClampDays(40))
}

func TestPerDay(t *testing.T) {
	assert.Equal(t, 2, PerDay(4, 2))
	assert.Equal(t, 3, PerDay(5, 2))
	assert.Equal(t, 1, PerDay(1, 3))
	assert.Equal(t, 1, PerDay(0, 3))
}
