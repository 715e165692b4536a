package itinerary

import (
	"strings"
	"time"

	"nilenavigator/export"
	"nilenavigator/models"
)

// ExportData prepares a saved itinerary for export. Missing selections are
// resolved from the catalog and a missing plan is regenerated.
func (p *Planner) ExportData(it models.SavedItinerary, now time.Time, shareBaseURL string) export.Data {
	d := export.Data{
		Selections:  it.Selections,
		Plan:        it.Plan,
		GeneratedAt: now,
	}
	if t, err := time.Parse(time.RFC3339, it.GeneratedAt); err == nil {
		d.GeneratedAt = t
	}
	if it.Answers != nil {
		d.Answers = *it.Answers
	}
	if len(d.Selections) == 0 {
		d.Selections = p.Selections(it.Selected)
	}
	if d.Plan == nil && len(it.Selected) > 0 {
		d.Plan = p.Generate(ClampDays(it.Days), NewSelectionSet(it.Selected...))
	}
	if shareBaseURL != "" {
		d.ShareURL = strings.TrimRight(shareBaseURL, "/") + "/planner"
	}
	return d
}

// Selections resolves ids against the catalog, dropping unknown ones.
func (p *Planner) Selections(ids []string) []models.Selection {
	var out []models.Selection
	for _, id := range ids {
		a, ok := p.Catalog.Get(id)
		if !ok {
			continue
		}
		out = append(out, models.Selection{
			ID:          a.ID,
			Name:        a.Name,
			Type:        a.Type,
			Governorate: a.Governorate,
			City:        a.City,
		})
	}
	return out
}
