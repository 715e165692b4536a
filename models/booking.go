package models

import "time"

// Experience is a bookable hands-on workshop.
type Experience struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price"` // EGP per participant
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Includes    []string `json:"includes"`
	Schedule    []string `json:"schedule"` // e.g. "9:00 AM - 1:00 PM"
	Capacity    int      `json:"capacity"` // seats per time slot
}

// Guest holds the contact details collected on the booking form.
type Guest struct {
	FirstName       string `json:"firstName" bson:"firstName"`
	LastName        string `json:"lastName" bson:"lastName"`
	Email           string `json:"email" bson:"email"`
	Phone           string `json:"phone" bson:"phone"`
	SpecialRequests string `json:"specialRequests,omitempty" bson:"specialRequests,omitempty"`
}

type Booking struct {
	ID             string     `json:"id" bson:"id"`
	SessionID      string     `json:"sessionId" bson:"sessionId"`
	ExperienceID   string     `json:"experienceId" bson:"experienceId"`
	ExperienceName string     `json:"experienceName" bson:"experienceName"`
	Location       string     `json:"location" bson:"location"`
	Date           string     `json:"date" bson:"date"` // YYYY-MM-DD
	Time           string     `json:"time" bson:"time"`
	Participants   int        `json:"participants" bson:"participants"`
	PricePerPerson float64    `json:"pricePerPerson" bson:"pricePerPerson"`
	TotalPrice     float64    `json:"totalPrice" bson:"totalPrice"`
	Guest          Guest      `json:"guest" bson:"guest"`
	PaymentMethod  string     `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	Status         string     `json:"status" bson:"status"` // confirmed, cancelled
	CreatedAt      time.Time  `json:"createdAt" bson:"createdAt"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
}
