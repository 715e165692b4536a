package booking

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"nilenavigator/models"
	"nilenavigator/store"
	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

const storeTimeout = 5 * time.Second

// Handler serves the experience catalog and session bookings. All
// bookings are stored as one list under the bookings key.
type Handler struct {
	Store store.KV
	Now   func() time.Time

	mu sync.Mutex // serialises read-modify-write of bookings
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) load(ctx context.Context) []models.Booking {
	return store.Load(ctx, h.Store, store.KeyBookings, []models.Booking{})
}

func respondBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownExperience):
		utils.RespondWithError(w, http.StatusNotFound, "Experience not found")
	case errors.Is(err, ErrBookingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrSlotFull):
		utils.RespondWithError(w, http.StatusConflict, "Time slot is full")
	case errors.Is(err, ErrDuplicate):
		utils.RespondWithError(w, http.StatusConflict, "Already booked for this time slot")
	case errors.Is(err, ErrCancelWindow):
		utils.RespondWithError(w, http.StatusConflict, "Free cancellation closes 24 hours before the experience")
	case errors.Is(err, ErrInvalidDate):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
	case errors.Is(err, ErrUnknownSlot):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid time slot")
	case errors.Is(err, ErrPastSlot):
		utils.RespondWithError(w, http.StatusBadRequest, "Please select a future date and time")
	case errors.Is(err, ErrParticipants):
		utils.RespondWithError(w, http.StatusBadRequest, "Participants must be between 1 and 6")
	case errors.Is(err, ErrMissingGuest):
		utils.RespondWithError(w, http.StatusBadRequest, "Missing guest details")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Booking failed")
	}
}

// GET /api/experiences
func ListExperiences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"experiences": Experiences()})
}

// GET /api/experiences/:id
func GetExperience(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	e, ok := Find(ps.ByName("id"))
	if !ok {
		respondBookingError(w, ErrUnknownExperience)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, e)
}

// GET /api/experiences/:id/availability?date=YYYY-MM-DD
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	e, ok := Find(ps.ByName("id"))
	if !ok {
		respondBookingError(w, ErrUnknownExperience)
		return
	}
	date := r.URL.Query().Get("date")
	if _, err := time.Parse(dateLayout, date); err != nil {
		respondBookingError(w, ErrInvalidDate)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"experienceId": e.ID,
		"date":         date,
		"slots":        Availability(e, h.load(ctx), date),
	})
}

// update loads the booking list strictly, applies fn and saves the result
// when fn reports a change.
func (h *Handler) update(w http.ResponseWriter, r *http.Request, fn func([]models.Booking) ([]models.Booking, models.Booking, bool, error), code int) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	bookings, err := store.LoadStrict(ctx, h.Store, store.KeyBookings, []models.Booking{})
	if err != nil {
		log.Printf("booking: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	bookings, b, changed, err := fn(bookings)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	if changed && !store.Save(ctx, h.Store, store.KeyBookings, bookings) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save booking")
		return
	}
	utils.RespondWithJSON(w, code, b)
}

// POST /api/bookings
//
// Reserves seats in one time slot of an experience. No payment is taken;
// the booking is confirmed immediately.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req Request
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	session := utils.SessionID(r)
	h.update(w, r, func(bookings []models.Booking) ([]models.Booking, models.Booking, bool, error) {
		b, err := Book(bookings, session, req, h.now())
		if err != nil {
			return bookings, b, false, err
		}
		return append(bookings, b), b, true, nil
	}, http.StatusCreated)
}

// DELETE /api/bookings/:id
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session := utils.SessionID(r)
	h.update(w, r, func(bookings []models.Booking) ([]models.Booking, models.Booking, bool, error) {
		b, changed, err := Cancel(bookings, session, ps.ByName("id"), h.now())
		return bookings, b, changed, err
	}, http.StatusOK)
}

// GET /api/bookings
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"bookings": ForSession(h.load(ctx), utils.SessionID(r))})
}

// GET /api/bookings/:id
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id := ps.ByName("id")
	for _, b := range ForSession(h.load(ctx), utils.SessionID(r)) {
		if b.ID == id {
			utils.RespondWithJSON(w, http.StatusOK, b)
			return
		}
	}
	respondBookingError(w, ErrBookingNotFound)
}
