package api

import "net/http"

// TopScorersHandler serves per-category best listings.
type TopScorersHandler struct {
	deps Dependencies
}

// NewTopScorersHandler creates a new top-scorers handler.
func NewTopScorersHandler(deps Dependencies) *TopScorersHandler {
	return &TopScorersHandler{deps: deps}
}

// HandleTopScorers handles GET /topscorers?profile=NAME requests.
func (h *TopScorersHandler) HandleTopScorers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cfg, err := configFromRequest(h.deps, r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	categories, err := h.deps.TopScorers(r.Context(), cfg)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
