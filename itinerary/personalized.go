package itinerary

import (
	"strconv"
	"strings"
	"unicode"

	"nilenavigator/models"
)

// Pace is the questionnaire's activity level.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PaceActive   Pace = "active"
)

// ParsePace maps a questionnaire answer to a pace; unknown answers are
// moderate.
func ParsePace(answer string) Pace {
	switch Pace(answer) {
	case PaceRelaxed, PaceActive:
		return Pace(answer)
	}
	return PaceModerate
}

// ActivitiesPerDay is the number of activities scheduled per day at this pace.
func (p Pace) ActivitiesPerDay() int {
	switch p {
	case PaceRelaxed:
		return 2
	case PaceActive:
		return 4
	}
	return 3
}

const (
	defaultQuestionnaireDays = 7
	maxQuestionnaireDays     = 30
)

// ParseDays turns the questionnaire's trip-length answer into a day
// count. Range answers map to a representative length, a leading integer
// is taken as is, and anything else falls back to a week.
func ParseDays(answer string) int {
	switch {
	case strings.Contains(answer, "3-5"):
		return 4
	case strings.Contains(answer, "6-10"):
		return 7
	case strings.Contains(answer, "11-14"):
		return 12
	case strings.Contains(answer, "15+"):
		return 15
	}
	if n, ok := leadingInt(answer); ok {
		return n
	}
	return defaultQuestionnaireDays
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

var personalizedLabels = [...]string{"09:00", "11:30", "14:00", "16:30", "19:00"}

const (
	lateLabel        = "18:00"
	travelLabel      = "08:00"
	defaultDuration  = "2h"
	defaultTransport = "Taxi"
)

func personalizedLabel(i int) string {
	if i < len(personalizedLabels) {
		return personalizedLabels[i]
	}
	return lateLabel
}

// GeneratePersonalized schedules selections in the order they were
// picked, fitting the number of activities per day to the chosen pace.
// Selections unknown to the catalog still take their turn but produce
// no slot. When a day starts in a different city from where the
// previous day ended, a travel slot opens the day.
func (p *Planner) GeneratePersonalized(selections []models.Selection, answers models.Answers) models.TripPlan {
	days := min(ParseDays(answers.Days), maxQuestionnaireDays)
	perDay := ParsePace(answers.Pace).ActivitiesPerDay()

	plan := models.TripPlan{}
	idx := 0
	for d := 0; d < days; d++ {
		day := models.DayPlan{}
		for i := 0; i < perDay && idx < len(selections); i++ {
			if a, ok := p.Catalog.Get(selections[idx].ID); ok {
				duration := defaultDuration
				if a.EstimatedHours != nil && *a.EstimatedHours != 0 {
					duration = strconv.FormatFloat(*a.EstimatedHours, 'f', -1, 64) + "h"
				}
				transport := defaultTransport
				if len(a.BestTransport) > 0 && a.BestTransport[0] != "" {
					transport = a.BestTransport[0]
				}
				day = append(day, models.Slot{
					Time:        personalizedLabel(i),
					Name:        a.Name,
					City:        a.City,
					Type:        a.Type,
					Description: a.Description,
					Duration:    duration,
					Transport:   transport,
				})
			}
			idx++
		}

		if d > 0 && len(day) > 0 {
			prev := plan[d-1]
			if len(prev) > 0 {
				from, to := prev[len(prev)-1].City, day[0].City
				if from != "" && to != "" && from != to {
					day = append(models.DayPlan{travelSlot(from, to, answers.Transportation)}, day...)
				}
			}
		}
		plan = append(plan, day)
	}
	return plan
}

func travelSlot(from, to, transportation string) models.Slot {
	transport := "Train/Bus"
	if transportation == "private" {
		transport = "Private Car"
	}
	return models.Slot{
		Time:      travelLabel,
		Name:      "Travel from " + from + " to " + to,
		City:      to,
		Type:      "transport",
		Duration:  defaultDuration,
		Transport: transport,
	}
}
