package models

// Attraction is a single point of interest in the catalog.
type Attraction struct {
	ID             string   `json:"id" bson:"id" yaml:"id"`
	Name           string   `json:"name" bson:"name" yaml:"name"`
	Type           string   `json:"type" bson:"type" yaml:"type"` // heritage, museum, historical, hotel, activity, coastal, landmark
	City           string   `json:"city" bson:"city" yaml:"city"`
	Governorate    string   `json:"governorate" bson:"governorate" yaml:"governorate"`
	BestTransport  []string `json:"bestTransport" bson:"bestTransport" yaml:"bestTransport"`
	EstimatedHours *float64 `json:"estHours,omitempty" bson:"estHours,omitempty" yaml:"estHours,omitempty"`
	Description    string   `json:"description,omitempty" bson:"description,omitempty" yaml:"description,omitempty"`
	Rating         float64  `json:"rating,omitempty" bson:"rating,omitempty" yaml:"rating,omitempty"`
	PriceRange     string   `json:"priceRange,omitempty" bson:"priceRange,omitempty" yaml:"priceRange,omitempty"`
}

// GovernorateInfo is the descriptive blurb shown for a governorate.
type GovernorateInfo struct {
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Highlights      []string `json:"highlights" yaml:"highlights"`
	BestTimeToVisit string   `json:"bestTimeToVisit" yaml:"bestTimeToVisit"`
	Climate         string   `json:"climate" yaml:"climate"`
	Cities          []string `json:"cities" yaml:"cities"`
}
