package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nilenavigator/models"
	"nilenavigator/store"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

func newTestRouter(kv store.KV) *httprouter.Router {
	h := &Handler{
		Planner: NewPlanner(smallCatalog()),
		Store:   kv,
		Now:     func() time.Time { return fixedNow },
	}
	r := httprouter.New()
	r.POST("/api/itinerary/generate", h.Generate)
	r.POST("/api/itinerary/personalized", h.Personalized)
	r.POST("/api/itinerary/export", h.Export)
	r.GET("/api/itinerary", h.GetSaved)
	r.PUT("/api/itinerary", h.Save)
	r.DELETE("/api/itinerary", h.Reset)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestGenerateHandlerClampsDays(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	rec := do(t, r, http.MethodPost, "/api/itinerary/generate", `{"days": 99, "selected": ["a","b","c","d"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Days   int             `json:"days"`
		PerDay int             `json:"perDay"`
		Plan   models.TripPlan `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, MaxDays, out.Days)
	assert.Equal(t, 1, out.PerDay)
	assert.Len(t, out.Plan, MaxDays)
}

func TestGenerateHandlerRejectsBadJSON(t *testing.T) {
	rec := do(t, newTestRouter(store.NewMemory()), http.MethodPost, "/api/itinerary/generate", `{days:`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON payload"}`, rec.Body.String())
}

func TestSavedItineraryLifecycle(t *testing.T) {
	kv := store.NewMemory()
	r := newTestRouter(kv)

	rec := do(t, r, http.MethodGet, "/api/itinerary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"days":3,"selected":[],"plan":[]}`, rec.Body.String())

	// a stale plan in the body is replaced by the recomputed one
	rec = do(t, r, http.MethodPut, "/api/itinerary", `{"days": 2, "selected": ["d","a","b","c"], "plan": [[{"time":"01:00","name":"X","city":"Y"}]]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	saved := store.Load(context.Background(), kv, store.KeyItinerary, models.SavedItinerary{})
	assert.Equal(t, 2, saved.Days)
	assert.Equal(t, []string{"a", "b", "c", "d"}, saved.Selected)
	assert.Equal(t, NewPlanner(smallCatalog()).Generate(2, NewSelectionSet("a", "b", "c", "d")), saved.Plan)

	rec = do(t, r, http.MethodDelete, "/api/itinerary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, r, http.MethodGet, "/api/itinerary", "")
	assert.JSONEq(t, `{"days":3,"selected":[],"plan":[]}`, rec.Body.String())
}

func TestPersonalizedHandlerSaves(t *testing.T) {
	kv := store.NewMemory()
	r := newTestRouter(kv)

	body := `{"selections":[{"id":"a","governorate":"Cairo"},{"id":"d","governorate":"Luxor"}],
		"answers":{"days":"3-5 days","pace":"relaxed"}}`
	rec := do(t, r, http.MethodPost, "/api/itinerary/personalized", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"persisted":true`)

	saved := store.Load(context.Background(), kv, store.KeyItinerary, models.SavedItinerary{})
	assert.Equal(t, 4, saved.Days)
	assert.Equal(t, []string{"a", "d"}, saved.Selected)
	require.Len(t, saved.Plan, 4)
	require.NotNil(t, saved.Answers)
	assert.Equal(t, "relaxed", saved.Answers.Pace)
	assert.Equal(t, "2026-05-02T09:30:00Z", saved.GeneratedAt)
}

func TestPersonalizedHandlerNeedsSelections(t *testing.T) {
	rec := do(t, newTestRouter(store.NewMemory()), http.MethodPost, "/api/itinerary/personalized", `{"selections":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportJSONFromSavedItinerary(t *testing.T) {
	kv := store.NewMemory()
	r := newTestRouter(kv)
	do(t, r, http.MethodPut, "/api/itinerary", `{"days": 2, "selected": ["a","c"]}`)

	rec := do(t, r, http.MethodPost, "/api/itinerary/export?format=json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=egypt-itinerary-2026-05-02.json", rec.Header().Get("Content-Disposition"))

	var doc struct {
		Selections []models.Selection `json:"selections"`
		Summary    struct {
			TotalDays       int      `json:"totalDays"`
			TotalActivities int      `json:"totalActivities"`
			Governorates    []string `json:"governorates"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Len(t, doc.Selections, 2)
	assert.Equal(t, 2, doc.Summary.TotalDays)
	assert.Equal(t, 2, doc.Summary.TotalActivities)
	assert.Equal(t, []string{"Cairo", "Giza"}, doc.Summary.Governorates)
}

func TestExportPDF(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	rec := do(t, r, http.MethodPost, "/api/itinerary/export?format=pdf", `{"days":1,"selected":["a","b"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Egypt-Itinerary-2026-05-02.pdf", rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestExportRejects(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	rec := do(t, r, http.MethodPost, "/api/itinerary/export?format=docx", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/itinerary/export?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Nothing to export"}`, rec.Body.String())
}
