// Package agi answers travel questions for the in-app guide.
package agi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

const DefaultAnswer = "I'm your Egypt travel assistant. Ask about attractions, transport, or safety."

type rule struct {
	keywords []string
	answer   string
}

// rules are checked in order; the first rule with a matching keyword wins.
var rules = []rule{
	{
		keywords: []string{"pyramids", "giza"},
		answer:   "The Giza Pyramids are open roughly 8am–5pm. Arrive early, bring water, and consider hiring a certified guide. Best transport: Uber/Taxi or tour bus.",
	},
	{
		keywords: []string{"metro", "transport"},
		answer:   "Cairo Metro is affordable and fast for core areas. For door-to-door, use Uber or reputable taxis. Intercity travel: trains (Cairo–Alexandria/Luxor/Aswan).",
	},
	{
		keywords: []string{"safety", "safe"},
		answer:   "Stick to busy areas, use registered guides, avoid carrying large sums of cash, and keep a digital copy of your passport. In emergencies dial 122 (Police) or 123 (Ambulance).",
	},
	{
		keywords: []string{"history", "pharaoh", "temple"},
		answer:   "Egypt spans millennia—from Old Kingdom pyramids to New Kingdom temples like Karnak and Philae. Museums in Cairo and Luxor offer great context before site visits.",
	},
}

// Answer matches the question against the keyword rules, ignoring case.
func Answer(question string) string {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(q, k) {
				return r.answer
			}
		}
	}
	return DefaultAnswer
}

type guideRequest struct {
	Question string `json:"question"`
}

// AskGuide handles POST /api/ai-guide. A missing body gets the default
// answer.
func AskGuide(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req guideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"answer": Answer(req.Question)})
}
