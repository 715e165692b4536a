package models

// Variations lists the options a buyer can pick for a product.
type Variations struct {
	Type    string   `json:"type"` // color or size
	Options []string `json:"options"`
}

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Images      []string    `json:"images"`
	Category    string      `json:"category"`
	LocationID  string      `json:"locationId"`
	ArtisanName string      `json:"artisanName"`
	Variations  *Variations `json:"variations,omitempty"`
	InStock     bool        `json:"inStock"`
	Rating      float64     `json:"rating"`
	ReviewCount int         `json:"reviewCount"`
}

// ArtisanLocation is a workshop or bazaar that sells products.
type ArtisanLocation struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Governorate  string     `json:"governorate"`
	Description  string     `json:"description"`
	History      string     `json:"history"`
	Images       []string   `json:"images"`
	VideoURL     string     `json:"videoUrl,omitempty"`
	OpeningHours string     `json:"openingHours"`
	Coordinates  [2]float64 `json:"coordinates"`
	Specialties  []string   `json:"specialties"`
	Products     []Product  `json:"products"`
}

// ProductWithLocation is the product detail payload.
type ProductWithLocation struct {
	Product
	Location *ArtisanLocation `json:"location,omitempty"`
}
