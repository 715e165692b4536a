// Package maps serves the illustrated Egypt map: projection settings,
// outline and river paths, and governorate or attraction markers.
package maps

import (
	"math"
	"net/http"
	"strconv"

	"nilenavigator/catalog"
	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

// Native grid the client scales from.
const (
	nativeMapWidth  = 1200
	nativeMapHeight = 600
	maxMapSide      = 10000
)

// Attractions have no coordinates of their own; they are fanned out on a
// ring around their governorate centroid.
const markerRing = 14.0

// Marker is a single map pin in grid coordinates.
type Marker struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	City  string  `json:"city,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Count int     `json:"count,omitempty"`
}

type Paths struct {
	Outline    string `json:"outline"`
	Nile       string `json:"nile"`
	DeltaLeft  string `json:"deltaLeft"`
	DeltaRight string `json:"deltaRight"`
	Suez       string `json:"suezCanal"`
	LakeNasser string `json:"lakeNasser"`
}

type MapConfig struct {
	MapWidth     int      `json:"mapWidth"`
	MapHeight    int      `json:"mapHeight"`
	Bounds       Bounds   `json:"bounds"`
	Paths        Paths    `json:"paths"`
	Oases        []Marker `json:"oases"`
	Governorates []Marker `json:"governorates"`
}

type Handler struct {
	Catalog *catalog.Catalog
}

// Config builds the map for a canvas size.
func (h *Handler) Config(width, height int) MapConfig {
	w, ht := float64(width), float64(height)
	cfg := MapConfig{
		MapWidth:  width,
		MapHeight: height,
		Bounds:    EgyptBounds,
		Paths: Paths{
			Outline:    OutlinePath(egyptOutline, w, ht),
			Nile:       PolylinePath(nilePath, w, ht),
			DeltaLeft:  PolylinePath(nileDeltaLeft, w, ht),
			DeltaRight: PolylinePath(nileDeltaRight, w, ht),
			Suez:       PolylinePath(suezCanal, w, ht),
			LakeNasser: PolylinePath(lakeNasser, w, ht),
		},
		Oases:        make([]Marker, 0, len(oases)),
		Governorates: []Marker{},
	}
	for _, o := range oases {
		x, y := Project(o.Lng, o.Lat, w, ht)
		cfg.Oases = append(cfg.Oases, Marker{ID: utils.Slugify(o.Name), Name: o.Name, Type: "oasis", X: round2(x), Y: round2(y)})
	}
	for _, g := range h.Catalog.Governorates() {
		c, ok := Centroid(g.Name)
		if !ok {
			continue
		}
		x, y := Project(c[0], c[1], w, ht)
		cfg.Governorates = append(cfg.Governorates, Marker{
			ID:    utils.Slugify(g.Name),
			Name:  g.Name,
			Type:  "governorate",
			X:     round2(x),
			Y:     round2(y),
			Count: len(h.Catalog.ByGovernorate(g.Name)),
		})
	}
	return cfg
}

// AttractionMarkers places every attraction of a governorate around its
// centroid. The second result is false for governorates without a
// centroid.
func (h *Handler) AttractionMarkers(governorate string, width, height int) ([]Marker, bool) {
	c, ok := Centroid(governorate)
	if !ok {
		return nil, false
	}
	cx, cy := Project(c[0], c[1], float64(width), float64(height))
	list := h.Catalog.ByGovernorate(governorate)
	markers := make([]Marker, 0, len(list))
	for i, a := range list {
		x, y := cx, cy
		if len(list) > 1 {
			angle := 2 * math.Pi * float64(i) / float64(len(list))
			x += markerRing * math.Cos(angle)
			y += markerRing * math.Sin(angle)
		}
		markers = append(markers, Marker{ID: a.ID, Name: a.Name, Type: a.Type, City: a.City, X: round2(x), Y: round2(y)})
	}
	return markers, true
}

// GET /api/map/config?width=&height=
func (h *Handler) GetMapConfig(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	width, height := canvasSize(r)
	utils.RespondWithJSON(w, http.StatusOK, h.Config(width, height))
}

// GET /api/map/markers/:governorate
func (h *Handler) GetMapMarkers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("governorate")
	width, height := canvasSize(r)
	markers, ok := h.AttractionMarkers(name, width, height)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Governorate not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"governorate": name, "markers": markers})
}

// canvasSize reads width and height, falling back to the native grid for
// missing or out of range values.
func canvasSize(r *http.Request) (int, int) {
	return dimension(r, "width", nativeMapWidth), dimension(r, "height", nativeMapHeight)
}

func dimension(r *http.Request, name string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n <= 0 || n > maxMapSide {
		return fallback
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
