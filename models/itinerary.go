package models

// Slot is one scheduled visit within a day.
type Slot struct {
	Time string `json:"time" bson:"time"`
	Name string `json:"name" bson:"name"`
	City string `json:"city" bson:"city"`

	// only filled by the personalised planner
	Type        string `json:"type,omitempty" bson:"type,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Duration    string `json:"duration,omitempty" bson:"duration,omitempty"`
	Transport   string `json:"transport,omitempty" bson:"transport,omitempty"`
}

// DayPlan is the ordered list of visits for one day.
type DayPlan []Slot

// TripPlan is the full ordered sequence of day plans.
type TripPlan []DayPlan

// Selection is an attraction picked in the trip wizard, carried with
// enough metadata to group it by governorate in exports.
type Selection struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Type        string `json:"type" bson:"type"`
	Governorate string `json:"governorate" bson:"governorate"`
	City        string `json:"city" bson:"city"`
}

// Answers holds the free-form trip questionnaire.
type Answers struct {
	Days            string `json:"days" bson:"days"`
	Budget          string `json:"budget" bson:"budget"`
	GroupSize       string `json:"groupSize" bson:"groupSize"`
	TravelWith      string `json:"travelWith" bson:"travelWith"`
	Interests       string `json:"interests" bson:"interests"`
	Pace            string `json:"pace" bson:"pace"`
	Accommodation   string `json:"accommodation" bson:"accommodation"`
	Transportation  string `json:"transportation" bson:"transportation"`
	Dining          string `json:"dining" bson:"dining"`
	SpecialRequests string `json:"specialRequests" bson:"specialRequests"`
}

// SavedItinerary is what gets persisted under the itinerary key.
type SavedItinerary struct {
	Days        int         `json:"days" bson:"days"`
	Selected    []string    `json:"selected" bson:"selected"`
	Plan        TripPlan    `json:"plan" bson:"plan"`
	Selections  []Selection `json:"selections,omitempty" bson:"selections,omitempty"`
	Answers     *Answers    `json:"answers,omitempty" bson:"answers,omitempty"`
	GeneratedAt string      `json:"generatedAt,omitempty" bson:"generatedAt,omitempty"`
}
