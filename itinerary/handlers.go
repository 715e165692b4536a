package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"nilenavigator/export"
	"nilenavigator/models"
	"nilenavigator/store"
	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

const storeTimeout = 5 * time.Second

// Handler serves the itinerary endpoints.
type Handler struct {
	Planner      *Planner
	Store        store.KV
	ShareBaseURL string
	Now          func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// emptyItinerary is served when nothing has been saved yet.
func emptyItinerary() models.SavedItinerary {
	return models.SavedItinerary{
		Days:     DefaultDays,
		Selected: []string{},
		Plan:     models.TripPlan{},
	}
}

type generateRequest struct {
	Days     int      `json:"days"`
	Selected []string `json:"selected"`
}

// POST /api/itinerary/generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req generateRequest
	if !utils.DecodeJSON(w, r, &req) {
		return
	}

	days := ClampDays(req.Days)
	plan := h.Planner.Generate(days, NewSelectionSet(req.Selected...))

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"days":   days,
		"perDay": PerDay(countSlots(plan), days),
		"plan":   plan,
	})
}

type personalizedRequest struct {
	Selections []models.Selection `json:"selections"`
	Answers    models.Answers     `json:"answers"`
}

// POST /api/itinerary/personalized
func (h *Handler) Personalized(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req personalizedRequest
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Selections) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No destinations selected")
		return
	}

	answers := req.Answers
	saved := models.SavedItinerary{
		Days:        ParseDays(answers.Days),
		Selected:    selectionIDs(req.Selections),
		Plan:        h.Planner.GeneratePersonalized(req.Selections, answers),
		Selections:  req.Selections,
		Answers:     &answers,
		GeneratedAt: h.now().UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	ok := store.Save(ctx, h.Store, store.KeyItinerary, saved)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"itinerary": saved, "persisted": ok})
}

// GET /api/itinerary
func (h *Handler) GetSaved(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	utils.RespondWithJSON(w, http.StatusOK, h.load(ctx))
}

// PUT /api/itinerary
func (h *Handler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.SavedItinerary
	if !utils.DecodeJSON(w, r, &req) {
		return
	}

	selected := NewSelectionSet(req.Selected...)
	req.Days = ClampDays(req.Days)
	req.Selected = selected.Values()
	// the stored plan always reflects the stored selection
	req.Plan = h.Planner.Generate(req.Days, selected)
	if req.GeneratedAt == "" {
		req.GeneratedAt = h.now().UTC().Format(time.RFC3339)
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	ok := store.Save(ctx, h.Store, store.KeyItinerary, req)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"itinerary": req, "persisted": ok})
}

// DELETE /api/itinerary
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	ok := store.Remove(ctx, h.Store, store.KeyItinerary)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"itinerary": emptyItinerary(), "persisted": ok})
}

// POST /api/itinerary/export?format=json|pdf
//
// The body is an itinerary in the saved shape. An empty body exports the
// saved itinerary.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "pdf" {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported export format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	var it models.SavedItinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		if !errors.Is(err, io.EOF) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
			return
		}
		it = h.load(ctx)
	}

	data := h.Planner.ExportData(it, h.now(), h.ShareBaseURL)
	if format == "pdf" && len(data.Plan) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to export")
		return
	}

	var buf bytes.Buffer
	contentType := "application/json"
	var err error
	if format == "pdf" {
		contentType = "application/pdf"
		err = export.WritePDF(&buf, data)
	} else {
		err = export.WriteJSON(&buf, data)
	}
	if err != nil {
		log.Printf("itinerary: export %s: %v", format, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+export.FileName(format, h.now()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) load(ctx context.Context) models.SavedItinerary {
	it := store.Load(ctx, h.Store, store.KeyItinerary, emptyItinerary())
	if it.Selected == nil {
		it.Selected = []string{}
	}
	if it.Plan == nil {
		it.Plan = models.TripPlan{}
	}
	return it
}

func selectionIDs(selections []models.Selection) []string {
	ids := make([]string, 0, len(selections))
	for _, s := range selections {
		ids = append(ids, s.ID)
	}
	return ids
}

func countSlots(plan models.TripPlan) int {
	n := 0
	for _, day := range plan {
		n += len(day)
	}
	return n
}
