package booking

import (
	"errors"
	"strings"
	"time"

	"nilenavigator/models"
	"nilenavigator/utils"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	MaxParticipants  = 6
	FreeCancellation = 24 * time.Hour

	dateLayout = "2006-01-02"
	slotLayout = "2006-01-02 3:04 PM"
)

var (
	ErrUnknownExperience = errors.New("experience not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidDate       = errors.New("invalid date")
	ErrUnknownSlot       = errors.New("time slot not offered")
	ErrPastSlot          = errors.New("time slot already started")
	ErrParticipants      = errors.New("participants out of range")
	ErrMissingGuest      = errors.New("missing guest details")
	ErrDuplicate         = errors.New("time slot already booked by this session")
	ErrSlotFull          = errors.New("time slot full")
	ErrCancelWindow      = errors.New("free cancellation window closed")
)

// Schedule times are Cairo local, read at a fixed EET offset.
var cairo = time.FixedZone("EET", 2*60*60)

var experiences = []models.Experience{
	{
		ID:          "pottery",
		Name:        "Pottery Village - Fustat",
		Description: "Learn traditional pottery making techniques from master craftsmen in Old Cairo",
		Location:    "Old Cairo",
		Duration:    "3-4 hours",
		Price:       150,
		Rating:      4.8,
		Image:       "/placeholder.svg",
		Includes: []string{
			"Professional pottery instructor",
			"All materials and tools",
			"Take home your creation",
			"Traditional Egyptian tea",
			"Certificate of completion",
		},
		Schedule: []string{"9:00 AM - 1:00 PM", "2:00 PM - 6:00 PM"},
		Capacity: 10,
	},
	{
		ID:          "carpet",
		Name:        "Traditional Carpet Weaving",
		Description: "Master the ancient art of Egyptian carpet weaving with local artisans",
		Location:    "Khan El Khalili",
		Duration:    "2-3 hours",
		Price:       200,
		Rating:      4.7,
		Image:       "/placeholder.svg",
		Includes: []string{
			"Expert weaving instructor",
			"Traditional loom access",
			"Quality materials",
			"Small carpet to take home",
			"History of Egyptian textiles",
		},
		Schedule: []string{"10:00 AM - 1:00 PM", "3:00 PM - 6:00 PM"},
		Capacity: 8,
	},
	{
		ID:          "jewelry",
		Name:        "Silver Jewelry Workshop",
		Description: "Create your own Egyptian-inspired silver jewelry pieces",
		Location:    "Islamic Cairo",
		Duration:    "4-5 hours",
		Price:       300,
		Rating:      4.9,
		Image:       "/placeholder.svg",
		Includes: []string{
			"Master silversmith guidance",
			"Silver materials included",
			"Professional tools",
			"Custom jewelry piece",
			"Jewelry care instructions",
		},
		Schedule: []string{"9:00 AM - 2:00 PM", "2:30 PM - 7:30 PM"},
		Capacity: 6,
	},
}

// Experiences returns the bookable workshops.
func Experiences() []models.Experience {
	out := make([]models.Experience, len(experiences))
	copy(out, experiences)
	return out
}

// Find looks an experience up by id.
func Find(id string) (models.Experience, bool) {
	for _, e := range experiences {
		if e.ID == id {
			return e, true
		}
	}
	return models.Experience{}, false
}

func offers(e models.Experience, slot string) bool {
	for _, s := range e.Schedule {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotStart is the Cairo start time of a schedule entry such as
// "2:00 PM - 6:00 PM" on date.
func SlotStart(date, slot string) (time.Time, error) {
	start, _, _ := strings.Cut(slot, "-")
	t, err := time.ParseInLocation(slotLayout, date+" "+strings.TrimSpace(start), cairo)
	if err != nil {
		return time.Time{}, ErrUnknownSlot
	}
	return t, nil
}

// Seats counts the participants already holding a place in a slot.
func Seats(bookings []models.Booking, experienceID, date, slot string) int {
	n := 0
	for _, b := range bookings {
		if b.ExperienceID == experienceID && b.Date == date && b.Time == slot && b.Status != StatusCancelled {
			n += b.Participants
		}
	}
	return n
}

// Slot is the availability of one schedule entry on a date.
type Slot struct {
	Time      string `json:"time"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}

// Availability lists every schedule entry of e on date with its free seats.
func Availability(e models.Experience, bookings []models.Booking, date string) []Slot {
	slots := make([]Slot, 0, len(e.Schedule))
	for _, s := range e.Schedule {
		left := e.Capacity - Seats(bookings, e.ID, date, s)
		if left < 0 {
			left = 0
		}
		slots = append(slots, Slot{Time: s, Capacity: e.Capacity, Remaining: left})
	}
	return slots
}

// Request is the booking form payload.
type Request struct {
	ExperienceID  string       `json:"experienceId"`
	Date          string       `json:"date"`
	Time          string       `json:"time"`
	Participants  int          `json:"participants"`
	Guest         models.Guest `json:"guest"`
	PaymentMethod string       `json:"paymentMethod"`
}

// Book validates req against the existing bookings and returns the new
// confirmed booking. The caller persists it.
func Book(bookings []models.Booking, session string, req Request, now time.Time) (models.Booking, error) {
	e, ok := Find(req.ExperienceID)
	if !ok {
		return models.Booking{}, ErrUnknownExperience
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return models.Booking{}, ErrInvalidDate
	}
	if !offers(e, req.Time) {
		return models.Booking{}, ErrUnknownSlot
	}
	start, err := SlotStart(req.Date, req.Time)
	if err != nil {
		return models.Booking{}, err
	}
	if !start.After(now) {
		return models.Booking{}, ErrPastSlot
	}

	participants := req.Participants
	if participants == 0 {
		participants = 1
	}
	if participants < 1 || participants > MaxParticipants {
		return models.Booking{}, ErrParticipants
	}

	g := req.Guest
	g.FirstName = strings.TrimSpace(g.FirstName)
	g.LastName = strings.TrimSpace(g.LastName)
	g.Email = strings.TrimSpace(g.Email)
	g.Phone = strings.TrimSpace(g.Phone)
	if g.FirstName == "" || g.LastName == "" || g.Email == "" || g.Phone == "" {
		return models.Booking{}, ErrMissingGuest
	}

	for _, b := range bookings {
		if b.SessionID == session && b.ExperienceID == e.ID && b.Date == req.Date && b.Time == req.Time && b.Status != StatusCancelled {
			return models.Booking{}, ErrDuplicate
		}
	}
	if Seats(bookings, e.ID, req.Date, req.Time)+participants > e.Capacity {
		return models.Booking{}, ErrSlotFull
	}

	return models.Booking{
		ID:             "EXP-" + utils.GenerateID(10),
		SessionID:      session,
		ExperienceID:   e.ID,
		ExperienceName: e.Name,
		Location:       e.Location,
		Date:           req.Date,
		Time:           req.Time,
		Participants:   participants,
		PricePerPerson: e.Price,
		TotalPrice:     e.Price * float64(participants),
		Guest:          g,
		PaymentMethod:  req.PaymentMethod,
		Status:         StatusConfirmed,
		CreatedAt:      now,
	}, nil
}

// Cancel marks the session's booking id as cancelled in place. Cancelling
// twice is a no-op; the bool reports whether bookings was modified.
func Cancel(bookings []models.Booking, session, id string, now time.Time) (models.Booking, bool, error) {
	for i := range bookings {
		if bookings[i].ID != id || bookings[i].SessionID != session {
			continue
		}
		if bookings[i].Status == StatusCancelled {
			return bookings[i], false, nil
		}
		start, err := SlotStart(bookings[i].Date, bookings[i].Time)
		if err != nil {
			return models.Booking{}, false, err
		}
		if start.Sub(now) < FreeCancellation {
			return bookings[i], false, ErrCancelWindow
		}
		bookings[i].Status = StatusCancelled
		bookings[i].CancelledAt = &now
		return bookings[i], true, nil
	}
	return models.Booking{}, false, ErrBookingNotFound
}

// ForSession returns the bookings made by session, oldest first.
func ForSession(bookings []models.Booking, session string) []models.Booking {
	mine := []models.Booking{}
	for _, b := range bookings {
		if b.SessionID == session {
			mine = append(mine, b)
		}
	}
	return mine
}
