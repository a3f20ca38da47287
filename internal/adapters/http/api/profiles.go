package api

import (
	"net/http"
	"strings"
)

// ProfilesHandler serves the registered weight profiles.
type ProfilesHandler struct {
	deps Dependencies
}

// NewProfilesHandler creates a new profiles handler.
func NewProfilesHandler(deps Dependencies) *ProfilesHandler {
	return &ProfilesHandler{deps: deps}
}

// HandleListProfiles handles GET /profiles requests.
func (h *ProfilesHandler) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Profiles())
}

// profileResponse carries one resolved profile's weight table.
type profileResponse struct {
	Name    string             `json:"name"`
	Weights map[string]float64 `json:"weights"`
}

// HandleGetProfile handles GET /profiles/{name} requests.
func (h *ProfilesHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/profiles/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	cfg, err := h.deps.ResolveProfile(name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	table := make(map[string]float64, len(cfg))
	for f, weight := range cfg {
		table[string(f)] = weight
	}
	writeJSON(w, http.StatusOK, profileResponse{Name: name, Weights: table})
}
