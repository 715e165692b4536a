package maps

import (
	"fmt"
	"strings"
)

// LngLat is a [longitude, latitude] pair.
type LngLat [2]float64

// Bounds is the geographic box the map projects onto.
type Bounds struct {
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
}

var EgyptBounds = Bounds{MinLng: 24.7, MaxLng: 36.9, MinLat: 22.0, MaxLat: 31.6}

// Simplified outline including Sinai, clockwise from Sallum.
var egyptOutline = []LngLat{
	{25.0, 31.6},
	{29.9, 31.3},
	{32.3, 31.3},
	{34.2, 31.2},
	{34.9, 28.0},
	{36.9, 22.0},
	{25.0, 22.0},
}

// Aswan to Cairo.
var nilePath = []LngLat{
	{32.8998, 24.0889},
	{32.65, 25.2},
	{32.6396, 25.6872},
	{32.0, 26.5},
	{31.5, 27.2},
	{31.1, 28.1},
	{31.09, 29.07},
	{31.2357, 30.0444},
}

var nileDeltaLeft = []LngLat{
	{31.2357, 30.0444},
	{30.8, 30.6},
	{30.3, 31.0},
	{29.9187, 31.2001},
}

var nileDeltaRight = []LngLat{
	{31.2357, 30.0444},
	{31.8, 30.7},
	{32.2, 31.0},
	{32.3, 31.3},
}

var suezCanal = []LngLat{
	{32.3, 31.3},
	{32.35, 30.8},
	{32.4, 30.3},
	{32.55, 29.97},
}

var lakeNasser = []LngLat{
	{32.9, 24.1},
	{32.7, 23.6},
	{32.55, 23.2},
	{32.4, 22.7},
	{32.3, 22.3},
}

type Place struct {
	Name string  `json:"name"`
	Lng  float64 `json:"lng"`
	Lat  float64 `json:"lat"`
}

var oases = []Place{
	{"Siwa", 25.5, 29.2},
	{"Bahariya", 28.3, 28.3},
	{"Farafra", 27.1, 27.1},
	{"Dakhla", 29.0, 25.5},
	{"Kharga", 30.5, 25.4},
}

// Centroids of the governorates the catalog covers.
var governorateCentroids = map[string]LngLat{
	"Alexandria":  {29.9, 31.2},
	"Cairo":       {31.25, 30.05},
	"Giza":        {30.9, 29.9},
	"Luxor":       {32.65, 25.7},
	"Aswan":       {32.9, 24.1},
	"South Sinai": {33.8, 28.5},
	"Red Sea":     {33.5, 26.5},
	"New Valley":  {27.0, 25.0},
	"Fayoum":      {30.6, 29.3},
	"Suez":        {32.5, 30.0},
}

// Centroid reports the map centre of a governorate.
func Centroid(governorate string) (LngLat, bool) {
	c, ok := governorateCentroids[governorate]
	return c, ok
}

// Project maps a coordinate linearly onto a width x height canvas with
// the origin at the top left (north-west).
func Project(lng, lat, width, height float64) (x, y float64) {
	b := EgyptBounds
	x = (lng - b.MinLng) / (b.MaxLng - b.MinLng) * width
	y = (1 - (lat-b.MinLat)/(b.MaxLat-b.MinLat)) * height
	return x, y
}

// PolylinePath renders an SVG path through the points.
func PolylinePath(points []LngLat, width, height float64) string {
	if len(points) == 0 {
		return ""
	}
	parts := make([]string, 0, len(points))
	for i, p := range points {
		x, y := Project(p[0], p[1], width, height)
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		parts = append(parts, fmt.Sprintf("%s %.2f,%.2f", cmd, x, y))
	}
	return strings.Join(parts, " ")
}

// OutlinePath is PolylinePath closed with Z.
func OutlinePath(points []LngLat, width, height float64) string {
	if len(points) == 0 {
		return ""
	}
	return PolylinePath(points, width, height) + " Z"
}
