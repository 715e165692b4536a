package export

import (
	"encoding/json"
	"io"
	"time"

	"nilenavigator/models"
)

// Summary holds the totals included in a JSON export.
type Summary struct {
	TotalDays       int      `json:"totalDays"`
	TotalActivities int      `json:"totalActivities"`
	Cities          []string `json:"cities"`
	Governorates    []string `json:"governorates"`
}

// Document is the JSON export shape.
type Document struct {
	GeneratedAt string             `json:"generatedAt"`
	Selections  []models.Selection `json:"selections"`
	Answers     models.Answers     `json:"answers"`
	Itinerary   models.TripPlan    `json:"itinerary"`
	Summary     Summary            `json:"summary"`
}

// NewDocument builds the JSON export for d.
func NewDocument(d Data) Document {
	doc := Document{
		GeneratedAt: d.GeneratedAt.UTC().Format(time.RFC3339),
		Selections:  d.Selections,
		Answers:     d.Answers,
		Itinerary:   d.Plan,
		Summary: Summary{
			TotalDays:    len(d.Plan),
			Cities:       []string{},
			Governorates: []string{},
		},
	}
	if doc.Selections == nil {
		doc.Selections = []models.Selection{}
	}
	if doc.Itinerary == nil {
		doc.Itinerary = models.TripPlan{}
	}

	seen := map[string]bool{}
	for _, day := range d.Plan {
		doc.Summary.TotalActivities += len(day)
		for _, s := range day {
			if s.City != "" && !seen[s.City] {
				seen[s.City] = true
				doc.Summary.Cities = append(doc.Summary.Cities, s.City)
			}
		}
	}
	seen = map[string]bool{}
	for _, s := range d.Selections {
		if s.Governorate != "" && !seen[s.Governorate] {
			seen[s.Governorate] = true
			doc.Summary.Governorates = append(doc.Summary.Governorates, s.Governorate)
		}
	}
	return doc
}

// WriteJSON writes the indented JSON export to w.
func WriteJSON(w io.Writer, d Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(d))
}
