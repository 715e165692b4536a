// Package settings stores the traveller's local preferences: profile,
// preferred map city and whether the welcome dialog was seen.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"nilenavigator/catalog"
	"nilenavigator/models"
	"nilenavigator/store"
	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

const storeTimeout = 5 * time.Second

// DefaultProfile is used until a profile has been saved.
var DefaultProfile = models.Profile{Name: "Traveler"}

type Handler struct {
	Store   store.KV
	Catalog *catalog.Catalog
}

type setting struct {
	key         string
	description string
	load        func(ctx context.Context, h *Handler) any
	decode      func(raw json.RawMessage) (any, error)
}

var errInvalidValue = errors.New("invalid value")

var settings = map[string]setting{
	"profile": {
		key:         store.KeyProfile,
		description: "Traveller name and verification",
		load: func(ctx context.Context, h *Handler) any {
			return store.Load(ctx, h.Store, store.KeyProfile, DefaultProfile)
		},
		decode: func(raw json.RawMessage) (any, error) {
			var p models.Profile
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, errInvalidValue
			}
			p.Name = strings.TrimSpace(p.Name)
			if p.Name == "" {
				return nil, errInvalidValue
			}
			return p, nil
		},
	},
	"mapCity": {
		key:         store.KeyMapCity,
		description: "City shown first on the map",
		load: func(ctx context.Context, h *Handler) any {
			return store.Load(ctx, h.Store, store.KeyMapCity, h.defaultCity())
		},
		decode: func(raw json.RawMessage) (any, error) {
			var city string
			if err := json.Unmarshal(raw, &city); err != nil || strings.TrimSpace(city) == "" {
				return nil, errInvalidValue
			}
			return strings.TrimSpace(city), nil
		},
	},
	"welcomeSeen": {
		key:         store.KeyWelcomeSeen,
		description: "Welcome planner dialog dismissed",
		load: func(ctx context.Context, h *Handler) any {
			return store.Load(ctx, h.Store, store.KeyWelcomeSeen, false)
		},
		decode: func(raw json.RawMessage) (any, error) {
			var seen bool
			if err := json.Unmarshal(raw, &seen); err != nil {
				return nil, errInvalidValue
			}
			return seen, nil
		},
	},
}

// settingOrder fixes the listing order.
var settingOrder = []string{"profile", "mapCity", "welcomeSeen"}

// defaultCity is the first city of the first governorate.
func (h *Handler) defaultCity() string {
	if h.Catalog == nil {
		return ""
	}
	for _, g := range h.Catalog.Governorates() {
		if len(g.Cities) > 0 {
			return g.Cities[0]
		}
	}
	return ""
}

// GET /api/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	out := make([]map[string]any, 0, len(settingOrder))
	for _, name := range settingOrder {
		s := settings[name]
		out = append(out, map[string]any{"type": name, "value": s.load(ctx, h), "description": s.description})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GET /api/settings/:type
func (h *Handler) GetSetting(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("type")
	s, ok := settings[name]
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Invalid setting type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"type": name, "value": s.load(ctx, h)})
}

// PUT /api/settings/:type
//
// Saving is best effort: the response reports whether the value was
// persisted.
func (h *Handler) UpdateSetting(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("type")
	s, ok := settings[name]
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Invalid setting type")
		return
	}

	var update struct {
		Value json.RawMessage `json:"value"`
	}
	if !utils.DecodeJSON(w, r, &update) {
		return
	}
	value, err := s.decode(update.Value)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid value for "+name)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	persisted := store.Save(ctx, h.Store, s.key, value)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"message":   "Setting updated successfully",
		"type":      name,
		"value":     value,
		"persisted": persisted,
	})
}
