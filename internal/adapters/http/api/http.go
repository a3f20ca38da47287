// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/homerank/internal/adapters/repository"
	"github.com/okian/homerank/internal/domain/snapshot"
	"github.com/okian/homerank/internal/domain/topscore"
	"github.com/okian/homerank/internal/domain/types"
	"github.com/okian/homerank/internal/domain/weights"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Rankings returns ranked entries under a weight configuration.
	Rankings(ctx context.Context, cfg weights.Config, limit int) ([]Entry, error)

	// Rank returns one listing's position under a weight configuration.
	Rank(ctx context.Context, listingID string, cfg weights.Config) (Entry, error)

	// TopScorers returns per-category best listings under a configuration.
	TopScorers(ctx context.Context, cfg weights.Config) ([]topscore.Category, error)

	// Profiles lists the registered weight profile names.
	Profiles() []string

	// ResolveProfile resolves a named preset to its weight table.
	ResolveProfile(name string) (weights.Config, error)

	// SnapshotID returns the current dataset snapshot identity.
	SnapshotID() string
}

// Entry mirrors the read shape returned by ranking queries.
type Entry = types.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	rankingsHandler   *RankingsHandler
	rankHandler       *RankHandler
	profilesHandler   *ProfilesHandler
	topScorersHandler *TopScorersHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		rankingsHandler:   NewRankingsHandler(deps, maxLimit),
		rankHandler:       NewRankHandler(deps),
		profilesHandler:   NewProfilesHandler(deps),
		topScorersHandler: NewTopScorersHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/rankings", MetricsMiddleware(s.rankingsHandler.HandleRankings, "rankings"))
	mux.HandleFunc("/rank/", MetricsMiddleware(s.rankHandler.HandleGetRank, "rank"))
	mux.HandleFunc("/profiles", MetricsMiddleware(s.profilesHandler.HandleListProfiles, "profiles"))
	mux.HandleFunc("/profiles/", MetricsMiddleware(s.profilesHandler.HandleGetProfile, "profile"))
	mux.HandleFunc("/topscorers", MetricsMiddleware(s.topScorersHandler.HandleTopScorers, "topscorers"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain sentinel errors to HTTP responses. The
// two user-visible failure modes stay distinct: "your weights don't sum to
// 100, fix them" versus "profile X is not registered".
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, weights.ErrInvalidConfig):
		writeError(w, http.StatusBadRequest, "invalid_weights", err)
	case errors.Is(err, weights.ErrUnknownProfile):
		writeError(w, http.StatusNotFound, "unknown_profile", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, snapshot.ErrNoSnapshot):
		writeError(w, http.StatusServiceUnavailable, "no_snapshot", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// configFromRequest resolves the weight configuration for read endpoints:
// the profile query parameter when present, the standard profile otherwise.
func configFromRequest(deps Dependencies, r *http.Request) (weights.Config, error) {
	name := r.URL.Query().Get("profile")
	if name == "" {
		name = weights.ProfileStandard
	}
	return deps.ResolveProfile(name)
}
