package itinerary

import (
	"testing"
	"time"

	"nilenavigator/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDataFillsGaps(t *testing.T) {
	p := NewPlanner(smallCatalog())
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	d := p.ExportData(models.SavedItinerary{Days: 2, Selected: []string{"c", "x", "a"}}, now, "https://nile.example/")

	require.Len(t, d.Selections, 2)
	assert.Equal(t, "C", d.Selections[0].Name)
	assert.Equal(t, "A", d.Selections[1].Name)
	assert.Len(t, d.Plan, 2)
	assert.Equal(t, now, d.GeneratedAt)
	assert.Equal(t, "https://nile.example/planner", d.ShareURL)
}

func TestExportDataKeepsSavedValues(t *testing.T) {
	p := NewPlanner(smallCatalog())
	plan := models.TripPlan{{slot("09:00", "B", "Cairo")}}

	d := p.ExportData(models.SavedItinerary{
		Selected:    []string{"b"},
		Plan:        plan,
		Answers:     &models.Answers{Pace: "relaxed"},
		GeneratedAt: "2024-12-31T08:00:00Z",
	}, time.Now(), "")

	assert.Equal(t, plan, d.Plan)
	assert.Equal(t, "relaxed", d.Answers.Pace)
	assert.Equal(t, 2024, d.GeneratedAt.Year())
	assert.Empty(t, d.ShareURL)
}
