package marketplace

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"nilenavigator/models"
	"nilenavigator/utils"
)

const (
	placeholderImage    = "/api/placeholder/600/400"
	defaultOpeningHours = "9:00 AM - 6:00 PM"
)

// Imported locations have no surveyed position yet.
var defaultCoordinates = [2]float64{31.2357, 30.0131}

var (
	phoneJunk    = regexp.MustCompile(`[^\d+\-\s()]`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// craftList accepts either a single string or a list of strings.
type craftList []string

func (c *craftList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*c = craftList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("handicraft_types: %w", err)
	}
	if many == nil {
		many = []string{}
	}
	*c = many
	return nil
}

// RawLocation is one record of the handicrafts scraper output.
type RawLocation struct {
	Name            string    `json:"name"`
	Governorate     string    `json:"governorate"`
	City            string    `json:"city"`
	HandicraftTypes craftList `json:"handicraft_types"`
	Description     string    `json:"description"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Website         string    `json:"website"`
	ImageURL        string    `json:"image_url"`
	OpeningHours    string    `json:"opening_hours"`
	Specialties     []string  `json:"specialties"`
}

// Clean drops records without a name, governorate or craft list,
// normalises contact details and fills in defaults for empty fields.
func Clean(raw []RawLocation) []RawLocation {
	cleaned := make([]RawLocation, 0, len(raw))
	for _, r := range raw {
		if r.Name == "" || r.Governorate == "" || r.HandicraftTypes == nil {
			continue
		}

		r.Phone = phoneJunk.ReplaceAllString(r.Phone, "")
		if r.Email != "" && !emailPattern.MatchString(r.Email) {
			r.Email = ""
		}

		if r.Description == "" {
			r.Description = fmt.Sprintf("Traditional %s workshop in %s.", crafts(r.HandicraftTypes), r.Governorate)
		}
		if r.Address == "" {
			r.Address = fmt.Sprintf("%s, %s Governorate", r.City, r.Governorate)
		}
		if r.ImageURL == "" {
			r.ImageURL = placeholderImage
		}
		if r.OpeningHours == "" {
			r.OpeningHours = defaultOpeningHours
		}
		if len(r.Specialties) == 0 {
			r.Specialties = append([]string(nil), r.HandicraftTypes...)
		}
		cleaned = append(cleaned, r)
	}
	return cleaned
}

func crafts(types []string) string {
	return strings.ToLower(strings.Join(types, ", "))
}

// LocationID derives a stable id from a location name.
func LocationID(name string) string {
	return utils.Slugify(name)
}

// ToLocation converts a cleaned record into an artisan location without
// products.
func (r RawLocation) ToLocation() models.ArtisanLocation {
	return models.ArtisanLocation{
		ID:           LocationID(r.Name),
		Name:         r.Name,
		Governorate:  r.Governorate,
		Description:  r.Description,
		History:      fmt.Sprintf("Traditional %s craftsmanship with deep cultural roots.", crafts(r.HandicraftTypes)),
		Images:       []string{r.ImageURL, placeholderImage},
		OpeningHours: r.OpeningHours,
		Coordinates:  defaultCoordinates,
		Specialties:  r.Specialties,
		Products:     []models.Product{},
	}
}

// Import decodes scraper JSON, cleans it and returns the locations.
func Import(data []byte) ([]models.ArtisanLocation, error) {
	var raw []RawLocation
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding scraped locations: %w", err)
	}
	cleaned := Clean(raw)
	out := make([]models.ArtisanLocation, 0, len(cleaned))
	for _, r := range cleaned {
		out = append(out, r.ToLocation())
	}
	return out, nil
}
