// Package catalog holds the static attraction catalog. It is parsed once
// from the embedded seed and never mutated afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"log"
	"strings"
	"sync"

	"nilenavigator/models"

	"gopkg.in/yaml.v3"
)

//go:embed attractions.yaml
var seed []byte

type seedFile struct {
	Governorates []models.GovernorateInfo `yaml:"governorates"`
	Attractions  []models.Attraction      `yaml:"attractions"`
}

// Catalog is a read-only attraction repository. Attractions keep their
// declaration order, which the itinerary planner relies on.
type Catalog struct {
	attractions  []models.Attraction
	byID         map[string]int
	governorates []models.GovernorateInfo
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded seed.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(seed)
		if err != nil {
			log.Fatalf("catalog: embedded seed is invalid: %v", err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse builds a catalog from a YAML document shaped like the embedded seed.
func Parse(data []byte) (*Catalog, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return build(f.Attractions, f.Governorates)
}

// New builds a catalog from in-memory data. It panics on duplicate or
// empty ids; use Parse for untrusted input.
func New(attractions []models.Attraction, governorates []models.GovernorateInfo) *Catalog {
	c, err := build(attractions, governorates)
	if err != nil {
		panic(err)
	}
	return c
}

func build(attractions []models.Attraction, governorates []models.GovernorateInfo) (*Catalog, error) {
	c := &Catalog{
		attractions:  make([]models.Attraction, len(attractions)),
		byID:         make(map[string]int, len(attractions)),
		governorates: make([]models.GovernorateInfo, len(governorates)),
	}
	copy(c.attractions, attractions)
	copy(c.governorates, governorates)

	for i, a := range c.attractions {
		if a.ID == "" {
			return nil, fmt.Errorf("attraction %d (%q) has no id", i, a.Name)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate attraction id %q", a.ID)
		}
		c.byID[a.ID] = i
	}
	return c, nil
}

// ListAttractions returns every attraction in declaration order.
func (c *Catalog) ListAttractions() []models.Attraction {
	out := make([]models.Attraction, len(c.attractions))
	copy(out, c.attractions)
	return out
}

// Get looks up one attraction by id.
func (c *Catalog) Get(id string) (models.Attraction, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Attraction{}, false
	}
	return c.attractions[i], true
}

func (c *Catalog) Len() int { return len(c.attractions) }

// Query narrows ListAttractions. Empty fields match everything.
type Query struct {
	Governorate string
	City        string
	Type        string
}

func (c *Catalog) Filter(q Query) []models.Attraction {
	out := []models.Attraction{}
	for _, a := range c.attractions {
		if q.Governorate != "" && !strings.EqualFold(a.Governorate, q.Governorate) {
			continue
		}
		if q.City != "" && !strings.EqualFold(a.City, q.City) {
			continue
		}
		if q.Type != "" && a.Type != q.Type {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (c *Catalog) ByCity(city string) []models.Attraction {
	return c.Filter(Query{City: city})
}

func (c *Catalog) ByGovernorate(governorate string) []models.Attraction {
	return c.Filter(Query{Governorate: governorate})
}

// ByTab returns the attractions shown under a governorate page tab.
func (c *Catalog) ByTab(governorate, tab string) []models.Attraction {
	all := c.ByGovernorate(governorate)
	switch tab {
	case "about":
		return []models.Attraction{}
	case "museums":
		return keepType(all, "museum")
	case "historical":
		return keepType(all, "historical")
	case "hotels":
		return keepType(all, "hotel")
	case "activities":
		return keepType(all, "activity")
	case "overview":
		if len(all) > 3 {
			return all[:3]
		}
		return all
	default:
		return all
	}
}

func keepType(in []models.Attraction, t string) []models.Attraction {
	out := []models.Attraction{}
	for _, a := range in {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// Governorates returns governorate info in seed order.
func (c *Catalog) Governorates() []models.GovernorateInfo {
	out := make([]models.GovernorateInfo, len(c.governorates))
	copy(out, c.governorates)
	return out
}

func (c *Catalog) Governorate(name string) (models.GovernorateInfo, bool) {
	for _, g := range c.governorates {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return models.GovernorateInfo{}, false
}

// Cities lists the cities of a governorate, or nil if it is unknown.
func (c *Catalog) Cities(governorate string) []string {
	g, ok := c.Governorate(governorate)
	if !ok {
		return nil
	}
	return append([]string(nil), g.Cities...)
}
