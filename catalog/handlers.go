package catalog

import (
	"net/http"

	"nilenavigator/models"
	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Catalog *Catalog
}

// GET /api/attractions?governorate=&city=&type=
func (h *Handler) ListAttractions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	attractions := h.Catalog.Filter(Query{
		Governorate: q.Get("governorate"),
		City:        q.Get("city"),
		Type:        q.Get("type"),
	})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"attractions": attractions})
}

// GET /api/attractions/:id
func (h *Handler) GetAttraction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	a, ok := h.Catalog.Get(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Attraction not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"attraction": a})
}

// GET /api/governorates
func (h *Handler) ListGovernorates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"governorates": h.Catalog.Governorates()})
}

// GET /api/governorates/:name?tab=
func (h *Handler) GetGovernorate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	info, ok := h.Catalog.Governorate(ps.ByName("name"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Governorate not found")
		return
	}

	var attractions []models.Attraction
	if tab := r.URL.Query().Get("tab"); tab != "" {
		attractions = h.Catalog.ByTab(info.Name, tab)
	} else {
		attractions = h.Catalog.ByGovernorate(info.Name)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"governorate": info,
		"attractions": attractions,
	})
}
