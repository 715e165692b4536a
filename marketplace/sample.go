package marketplace

import "nilenavigator/models"

// Categories are the handicraft categories shown in the shop filters.
var Categories = []string{
	"Pottery",
	"Textiles",
	"Woodwork",
	"Jewelry",
	"Metalwork",
	"Glasswork",
	"Leather",
	"Carpets",
	"Papyrus",
	"Perfumes",
}

func sampleLocations() []models.ArtisanLocation {
	return []models.ArtisanLocation{
		{
			ID:           "fustat-pottery",
			Name:         "Potters Village, Fustat",
			Governorate:  "Cairo",
			Description:  "Ancient pottery village where traditional Egyptian ceramics are crafted using techniques passed down through generations.",
			History:      "Fustat pottery has been produced for over 1,000 years, representing one of Egypt's oldest continuous craft traditions.",
			Images:       []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=600&h=400&fit=crop", "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?w=600&h=400&fit=crop"},
			OpeningHours: "9:00 AM - 6:00 PM",
			Coordinates:  [2]float64{31.2357, 30.0131},
			Specialties:  []string{"Traditional pottery", "Decorative ceramics", "Functional kitchenware"},
			Products: []models.Product{{
				ID:          "pottery-vase-1",
				Name:        "Traditional Egyptian Vase",
				Description: "Handcrafted ceramic vase with traditional Islamic patterns",
				Price:       45,
				Images:      []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop", "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?w=400&h=400&fit=crop"},
				Category:    "Pottery",
				LocationID:  "fustat-pottery",
				ArtisanName: "Ahmed Hassan",
				Variations:  &models.Variations{Type: "size", Options: []string{"Small", "Medium", "Large"}},
				InStock:     true,
				Rating:      4.8,
				ReviewCount: 23,
			}},
		},
		{
			ID:           "khan-khalili",
			Name:         "Khan el-Khalili Bazaar",
			Governorate:  "Cairo",
			Description:  "Historic bazaar featuring traditional crafts, jewelry, and textiles from master artisans.",
			History:      "Established in the 14th century, Khan el-Khalili has been Cairo's premier marketplace for over 600 years.",
			Images:       []string{"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=600&h=400&fit=crop", "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=600&h=400&fit=crop"},
			OpeningHours: "10:00 AM - 10:00 PM",
			Coordinates:  [2]float64{31.2621, 30.0472},
			Specialties:  []string{"Gold jewelry", "Silver crafts", "Traditional textiles"},
			Products: []models.Product{{
				ID:          "jewelry-necklace-1",
				Name:        "Pharaonic Gold Necklace",
				Description: "Handcrafted gold necklace inspired by ancient Egyptian designs",
				Price:       120,
				Images:      []string{"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=400&fit=crop"},
				Category:    "Jewelry",
				LocationID:  "khan-khalili",
				ArtisanName: "Mahmoud Ali",
				InStock:     true,
				Rating:      4.9,
				ReviewCount: 15,
			}},
		},
		{
			ID:           "siwa-textiles",
			Name:         "Siwa Oasis Weavers",
			Governorate:  "Matrouh",
			Description:  "Traditional Berber textiles and embroidery from the remote Siwa Oasis.",
			History:      "Siwa's textile tradition dates back centuries, featuring unique Berber patterns and techniques.",
			Images:       []string{"https://images.unsplash.com/photo-1571781926291-c477ebfd024b?w=600&h=400&fit=crop"},
			OpeningHours: "8:00 AM - 5:00 PM",
			Coordinates:  [2]float64{25.5197, 29.2033},
			Specialties:  []string{"Berber textiles", "Traditional embroidery", "Handwoven carpets"},
			Products: []models.Product{{
				ID:          "textile-scarf-1",
				Name:        "Berber Embroidered Scarf",
				Description: "Traditional handwoven scarf with authentic Berber patterns",
				Price:       35,
				Images:      []string{"https://images.unsplash.com/photo-1571781926291-c477ebfd024b?w=400&h=400&fit=crop"},
				Category:    "Textiles",
				LocationID:  "siwa-textiles",
				ArtisanName: "Fatima Osman",
				Variations:  &models.Variations{Type: "color", Options: []string{"Blue", "Red", "Green", "Purple"}},
				InStock:     true,
				Rating:      4.7,
				ReviewCount: 31,
			}},
		},
	}
}
