// Package marketplace serves the artisan shop: workshop locations, their
// products and the filters used to browse them.
package marketplace

import (
	_ "embed"
	"log"
	"sync"

	"nilenavigator/models"
	"nilenavigator/utils"
)

//go:embed scraped.json
var scrapedSeed []byte

var (
	defaultOnce sync.Once
	defaultShop *Marketplace
)

// Default returns the sample workshops followed by the imported scraped
// ones. It is built once.
func Default() *Marketplace {
	defaultOnce.Do(func() {
		scraped, err := Import(scrapedSeed)
		if err != nil {
			log.Fatalf("marketplace: bad embedded seed: %v", err)
		}
		defaultShop = New(append(sampleLocations(), scraped...))
	})
	return defaultShop
}

// Marketplace is a read-only index over artisan locations and products.
type Marketplace struct {
	locations []models.ArtisanLocation
	products  []models.Product
	location  map[string]int
	product   map[string]int
}

// New indexes locations. On duplicate ids the first occurrence wins.
func New(locations []models.ArtisanLocation) *Marketplace {
	m := &Marketplace{
		locations: locations,
		location:  make(map[string]int, len(locations)),
		product:   make(map[string]int),
	}
	for i, loc := range locations {
		if _, dup := m.location[loc.ID]; !dup {
			m.location[loc.ID] = i
		}
		for _, p := range loc.Products {
			if _, dup := m.product[p.ID]; dup {
				continue
			}
			m.product[p.ID] = len(m.products)
			m.products = append(m.products, p)
		}
	}
	return m
}

func (m *Marketplace) Locations() []models.ArtisanLocation {
	out := make([]models.ArtisanLocation, len(m.locations))
	copy(out, m.locations)
	return out
}

func (m *Marketplace) Location(id string) (models.ArtisanLocation, bool) {
	i, ok := m.location[id]
	if !ok {
		return models.ArtisanLocation{}, false
	}
	return m.locations[i], true
}

func (m *Marketplace) Products() []models.Product {
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out
}

// Product returns a product joined with its location.
func (m *Marketplace) Product(id string) (models.ProductWithLocation, bool) {
	i, ok := m.product[id]
	if !ok {
		return models.ProductWithLocation{}, false
	}
	p := models.ProductWithLocation{Product: m.products[i]}
	if loc, ok := m.Location(p.LocationID); ok {
		p.Location = &loc
	}
	return p, true
}

// Governorates lists the distinct location governorates in first-seen
// order.
func (m *Marketplace) Governorates() []string {
	seen := map[string]bool{}
	var out []string
	for _, loc := range m.locations {
		if !seen[loc.Governorate] {
			seen[loc.Governorate] = true
			out = append(out, loc.Governorate)
		}
	}
	return out
}

// Filter narrows the product list. Empty fields and "all" match
// everything.
type Filter struct {
	Category    string
	Governorate string
	MinPrice    *float64
	MaxPrice    *float64
	Search      string
}

// Search applies category, governorate, price bounds and the text query
// in that order.
func (m *Marketplace) Search(f Filter) []models.Product {
	out := []models.Product{}
	for _, p := range m.products {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if f.Governorate != "" && f.Governorate != "all" {
			loc, ok := m.Location(p.LocationID)
			if !ok || loc.Governorate != f.Governorate {
				continue
			}
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.Search != "" &&
			!utils.ContainsIgnoreCase(p.Name, f.Search) &&
			!utils.ContainsIgnoreCase(p.Description, f.Search) &&
			!utils.ContainsIgnoreCase(p.Category, f.Search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
