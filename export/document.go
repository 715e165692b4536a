package export

import (
	"fmt"
	"strings"
	"time"

	"nilenavigator/models"
)

// Data is everything an export needs.
type Data struct {
	Selections  []models.Selection
	Answers     models.Answers
	Plan        models.TripPlan
	GeneratedAt time.Time
	ShareURL    string // optional, printed as a QR code on the first page
}

const (
	colorPrimary = "#2980b9"
	colorDay     = "#34495e"
	colorMuted   = "#7f8c8d"
	colorText    = "#000000"

	FreeDayText = "Free day for rest or personal exploration"
)

func text(s string, size float64, bold bool, color string) Line {
	return Line{Text: s, Size: size, Bold: bold, Color: color}
}

// Build lays the trip out as blocks: the summary, one block per
// governorate of the selections, and one block per day of the plan.
func Build(d Data) []Block {
	var blocks []Block

	a := d.Answers
	summary := Block{Kind: "summary", SpaceAfter: 15}
	summary.Lines = append(summary.Lines, text("TRIP SUMMARY", 16, true, colorPrimary))
	for _, item := range []string{
		"Duration: " + a.Days,
		"Group Size: " + strings.TrimSpace(a.GroupSize+" "+a.TravelWith),
		"Budget: " + a.Budget,
		"Travel Pace: " + a.Pace,
		"Primary Interest: " + a.Interests,
		"Accommodation: " + a.Accommodation,
		"Transportation: " + a.Transportation,
		"Dining Preference: " + a.Dining,
	} {
		summary.Lines = append(summary.Lines, text("• "+item, 10, false, colorText))
	}
	if strings.TrimSpace(a.SpecialRequests) != "" {
		summary.Lines = append(summary.Lines,
			text("Special Requests:", 12, true, colorText),
			text(a.SpecialRequests, 10, false, colorText))
	}
	blocks = append(blocks, summary)

	blocks = append(blocks, Block{Kind: "heading", Lines: []Line{text("SELECTED DESTINATIONS", 16, true, colorPrimary)}})
	for _, g := range GroupByGovernorate(d.Selections) {
		b := Block{Kind: "governorate"}
		b.Lines = append(b.Lines, text(g.Governorate, 12, true, colorText))
		for _, s := range g.Items {
			b.Lines = append(b.Lines, text(fmt.Sprintf("  • %s (%s)", s.Name, s.City), 10, false, colorText))
		}
		blocks = append(blocks, b)
	}
	if n := len(blocks); n > 0 {
		blocks[n-1].SpaceAfter += 15
	}

	blocks = append(blocks, Block{Kind: "heading", Lines: []Line{text("DAILY ITINERARY", 16, true, colorPrimary)}})
	for i, day := range d.Plan {
		b := Block{Kind: "day", SpaceAfter: 10}
		b.Lines = append(b.Lines, text(fmt.Sprintf("Day %d", i+1), 14, true, colorDay))
		if len(day) == 0 {
			b.Lines = append(b.Lines, text(FreeDayText, 10, false, colorMuted))
		}
		for _, slot := range day {
			b.Lines = append(b.Lines, text(slot.Time+" - "+slot.Name, 11, true, colorText))

			var details []string
			if slot.City != "" {
				details = append(details, "Location: "+slot.City)
			}
			if slot.Duration != "" {
				details = append(details, "Duration: "+slot.Duration)
			}
			if slot.Transport != "" {
				details = append(details, "Transport: "+slot.Transport)
			}
			if len(details) > 0 {
				b.Lines = append(b.Lines, text("  "+strings.Join(details, " | "), 9, false, colorMuted))
			}
			if slot.Description != "" {
				b.Lines = append(b.Lines, text("  "+slot.Description, 9, false, colorMuted))
			}
		}
		blocks = append(blocks, b)
	}

	return blocks
}

// GovernorateGroup is a run of selections sharing a governorate.
type GovernorateGroup struct {
	Governorate string
	Items       []models.Selection
}

// GroupByGovernorate groups selections keeping first-seen governorate order.
func GroupByGovernorate(selections []models.Selection) []GovernorateGroup {
	var groups []GovernorateGroup
	index := map[string]int{}
	for _, s := range selections {
		i, ok := index[s.Governorate]
		if !ok {
			i = len(groups)
			index[s.Governorate] = i
			groups = append(groups, GovernorateGroup{Governorate: s.Governorate})
		}
		groups[i].Items = append(groups[i].Items, s)
	}
	return groups
}

// FileName is the download name for an export made at t.
func FileName(format string, t time.Time) string {
	day := t.Format("2006-01-02")
	if format == "pdf" {
		return "Egypt-Itinerary-" + day + ".pdf"
	}
	return "egypt-itinerary-" + day + ".json"
}
