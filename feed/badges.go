package feed

import (
	"strings"

	"nilenavigator/models"
)

// Badges is the catalogue of travel badges.
var Badges = []models.TravelBadge{
	{ID: "pyramid-explorer", Name: "Pyramid Explorer", Description: "Visited the Great Pyramids of Giza", Icon: "🏛️", Category: "historical", Rarity: "common", Requirements: "Visit the Giza Pyramids complex", Location: "Giza Pyramids", Governorate: "Giza"},
	{ID: "pharaoh-seeker", Name: "Pharaoh Seeker", Description: "Explored the Valley of the Kings", Icon: "👑", Category: "historical", Rarity: "rare", Requirements: "Visit Valley of the Kings in Luxor", Location: "Valley of the Kings", Governorate: "Luxor"},
	{ID: "mediterranean-wanderer", Name: "Mediterranean Wanderer", Description: "Enjoyed the beaches of Alexandria", Icon: "🏖️", Category: "coastal", Rarity: "common", Requirements: "Visit any beach in Alexandria", Location: "Alexandria Beaches", Governorate: "Alexandria"},
	{ID: "nile-navigator", Name: "Nile Navigator", Description: "Sailed the eternal Nile River", Icon: "⛵", Category: "adventure", Rarity: "rare", Requirements: "Take a Nile cruise or felucca ride", Location: "Nile River", Governorate: "Multiple"},
	{ID: "temple-guardian", Name: "Temple Guardian", Description: "Visited 5 ancient temples", Icon: "🏛️", Category: "historical", Rarity: "epic", Requirements: "Visit 5 different ancient temples", Location: "Multiple Temples", Governorate: "Multiple"},
	{ID: "desert-nomad", Name: "Desert Nomad", Description: "Survived a desert safari adventure", Icon: "🐪", Category: "adventure", Rarity: "rare", Requirements: "Complete a desert safari experience", Location: "Western Desert", Governorate: "Multiple"},
	{ID: "culture-enthusiast", Name: "Culture Enthusiast", Description: "Experienced authentic Egyptian culture", Icon: "🎭", Category: "cultural", Rarity: "common", Requirements: "Attend a cultural event or visit local markets", Location: "Cultural Sites", Governorate: "Multiple"},
	{ID: "egypt-master", Name: "Egypt Master", Description: "Visited all 5 major governorates", Icon: "🏆", Category: "milestone", Rarity: "legendary", Requirements: "Visit Cairo, Giza, Alexandria, Luxor, and Aswan", Location: "All Egypt", Governorate: "Multiple"},
}

func BadgeByID(id string) (models.TravelBadge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return models.TravelBadge{}, false
}

// FilterBadges returns badges matching category and rarity; empty
// arguments match everything.
func FilterBadges(category, rarity string) []models.TravelBadge {
	out := []models.TravelBadge{}
	for _, b := range Badges {
		if category != "" && b.Category != category {
			continue
		}
		if rarity != "" && b.Rarity != rarity {
			continue
		}
		out = append(out, b)
	}
	return out
}

// CheckBadgeEligibility reports whether any visited location mentions the
// badge's location, ignoring case. Unknown badges are never earned.
func CheckBadgeEligibility(visited []string, badgeID string) bool {
	b, ok := BadgeByID(badgeID)
	if !ok {
		return false
	}
	want := strings.ToLower(b.Location)
	for _, v := range visited {
		if strings.Contains(strings.ToLower(v), want) {
			return true
		}
	}
	return false
}

// EarnedBadges lists the ids of every badge the visited locations qualify
// for.
func EarnedBadges(visited []string) []string {
	var ids []string
	for _, b := range Badges {
		if CheckBadgeEligibility(visited, b.ID) {
			ids = append(ids, b.ID)
		}
	}
	return ids
}
