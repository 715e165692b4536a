package models

import "time"

// PostLocation tags a post with where it was taken.
type PostLocation struct {
	Name        string `json:"name"`
	Governorate string `json:"governorate,omitempty"`
}

type Comment struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Post struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Username     string        `json:"username"`
	UserFullName string        `json:"userFullName,omitempty"`
	Content      string        `json:"content"`
	Images       []string      `json:"images"`
	Location     *PostLocation `json:"location,omitempty"`
	Badges       []string      `json:"badges,omitempty"`
	Likes        int           `json:"likes"`
	Liked        bool          `json:"isLiked"`
	Comments     []Comment     `json:"comments"`
	Shares       int           `json:"shares"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// TravelBadge is awarded for visiting places.
type TravelBadge struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Category     string `json:"category"` // historical, coastal, cultural, adventure, milestone
	Rarity       string `json:"rarity"`   // common, rare, epic, legendary
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Governorate  string `json:"governorate"`
}

// Profile is the locally stored traveller profile.
type Profile struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}
