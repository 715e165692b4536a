package itinerary

import (
	"nilenavigator/catalog"
	"nilenavigator/models"
)

// Day bounds accepted from callers.
const (
	MinDays     = 1
	MaxDays     = 14
	DefaultDays = 3
)

// timeLabels are handed out per slot within a day; slots past the end
// reuse the last label.
var timeLabels = [...]string{"09:00", "12:30", "15:30"}

// ClampDays limits a requested trip length to [MinDays, MaxDays].
func ClampDays(days int) int {
	return max(MinDays, min(MaxDays, days))
}

// PerDay is how many visits each day takes when n visits are spread over
// days days.
func PerDay(n, days int) int {
	if days < 1 {
		days = 1
	}
	return max(1, (n+days-1)/days)
}

// Planner builds trip plans from a catalog.
type Planner struct {
	Catalog *catalog.Catalog
}

func NewPlanner(c *catalog.Catalog) *Planner {
	return &Planner{Catalog: c}
}

// Generate distributes the selected attractions over days day plans in
// catalog order. Every selected attraction known to the catalog lands in
// exactly one slot. An empty selection yields an empty plan; otherwise
// the plan always has exactly days entries, trailing ones possibly
// empty. days below 1 is treated as 1.
func (p *Planner) Generate(days int, selected SelectionSet) models.TripPlan {
	var chosen []models.Attraction
	for _, a := range p.Catalog.ListAttractions() {
		if selected.Contains(a.ID) {
			chosen = append(chosen, a)
		}
	}
	if len(chosen) == 0 {
		return models.TripPlan{}
	}

	days = max(days, 1)
	perDay := PerDay(len(chosen), days)

	plan := make(models.TripPlan, days)
	idx := 0
	for d := range plan {
		plan[d] = models.DayPlan{}
		for i := 0; i < perDay && idx < len(chosen); i++ {
			a := chosen[idx]
			plan[d] = append(plan[d], models.Slot{
				Time: timeLabels[min(i, len(timeLabels)-1)],
				Name: a.Name,
				City: a.City,
			})
			idx++
		}
	}
	return plan
}

// Generate plans the selected ids against the built-in catalog.
func Generate(days int, selected []string) models.TripPlan {
	return NewPlanner(catalog.Default()).Generate(days, NewSelectionSet(selected...))
}
