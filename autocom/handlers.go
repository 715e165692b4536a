package autocom

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	defaultLimit = 8
	maxLimit     = 25
)

type Handler struct {
	Index Index
}

// GET /api/ac?q=&limit=
func (h *Handler) Autocompleter(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	suggestions, err := h.Index.Search(ctx, q.Get("q"), limit)
	if err != nil {
		log.Printf("autocomplete: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Autocomplete unavailable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}
