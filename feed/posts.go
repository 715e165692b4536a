package feed

import (
	"time"

	"nilenavigator/models"
)

func at(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// samplePosts seed the feed until something has been stored.
func samplePosts() []models.Post {
	return []models.Post{
		{
			ID:           "1",
			UserID:       "user1",
			Username:     "sarah_explorer",
			UserFullName: "Sarah Johnson",
			Content:      "Just witnessed the breathtaking sunrise over the Great Pyramids! The ancient wonder never fails to amaze me. Earned my Pyramid Explorer badge! 🏛️✨ #Egypt #Pyramids #TravelGoals",
			Images:       []string{"/api/placeholder/400/300", "/api/placeholder/400/300"},
			Location:     &models.PostLocation{Name: "Great Pyramids of Giza", Governorate: "Giza"},
			Badges:       []string{"pyramid-explorer"},
			Likes:        127,
			Comments: []models.Comment{
				{ID: "c1", Username: "mike_traveler", Content: "Incredible shot! I'm planning my trip there next month.", CreatedAt: at("2024-01-15T10:30:00Z")},
			},
			Shares:    23,
			CreatedAt: at("2024-01-15T06:00:00Z"),
		},
		{
			ID:           "2",
			UserID:       "user3",
			Username:     "ahmed_local",
			UserFullName: "Ahmed Hassan",
			Content:      "Exploring the vibrant Khan el-Khalili bazaar in Cairo! The colors, sounds, and aromas are absolutely mesmerizing. Perfect place to find authentic souvenirs and experience local culture. 🛍️",
			Images:       []string{"/api/placeholder/400/300"},
			Location:     &models.PostLocation{Name: "Khan el-Khalili Bazaar", Governorate: "Cairo"},
			Badges:       []string{"culture-enthusiast"},
			Likes:        89,
			Liked:        true,
			Comments: []models.Comment{
				{ID: "c2", Username: "sarah_explorer", Content: "Love this place! Did you try the traditional tea?", CreatedAt: at("2024-01-14T15:45:00Z")},
			},
			Shares:    12,
			CreatedAt: at("2024-01-14T14:20:00Z"),
		},
		{
			ID:           "3",
			UserID:       "user4",
			Username:     "emma_wanderlust",
			UserFullName: "Emma Rodriguez",
			Content:      "Sailing on a traditional felucca along the Nile in Aswan. The peaceful waters and Nubian villages create such a magical atmosphere. Just earned my Nile Navigator badge! ⛵🌅",
			Images:       []string{"/api/placeholder/400/300", "/api/placeholder/400/300"},
			Location:     &models.PostLocation{Name: "Nile River, Aswan", Governorate: "Aswan"},
			Badges:       []string{"nile-navigator"},
			Likes:        156,
			Comments: []models.Comment{
				{ID: "c3", Username: "travel_photographer", Content: "The golden hour lighting is perfect! Great composition.", CreatedAt: at("2024-01-13T18:20:00Z")},
			},
			Shares:    34,
			CreatedAt: at("2024-01-13T17:30:00Z"),
		},
	}
}

// ToggleLike flips the liked state of post id and adjusts its count. It
// reports whether the post was found.
func ToggleLike(posts []models.Post, id string) (models.Post, bool) {
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		p := &posts[i]
		if p.Liked {
			p.Likes = max(0, p.Likes-1)
		} else {
			p.Likes++
		}
		p.Liked = !p.Liked
		return *p, true
	}
	return models.Post{}, false
}
