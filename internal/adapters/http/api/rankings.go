package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/okian/homerank/internal/domain/model"
	"github.com/okian/homerank/internal/domain/weights"
)

// RankingsHandler handles ranking requests.
type RankingsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps Dependencies, maxLimit int) *RankingsHandler {
	return &RankingsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleRankings dispatches GET (preset profile) and POST (custom weight
// table) ranking requests.
func (h *RankingsHandler) HandleRankings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleGet handles GET /rankings?profile=NAME&limit=N requests.
func (h *RankingsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	limit, err := h.parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	cfg, err := configFromRequest(h.deps, r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	entries, err := h.deps.Rankings(r.Context(), cfg, limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rankingsResponse{
		SnapshotID: h.deps.SnapshotID(),
		Entries:    entries,
	})
}

// customRankingsRequest carries a caller-supplied weight table. Weights are
// percentages keyed by factor name and must sum to 100; the engine rejects
// anything else rather than renormalizing.
type customRankingsRequest struct {
	Weights map[string]float64 `json:"weights"`
	Limit   int                `json:"limit"`
}

type rankingsResponse struct {
	SnapshotID string  `json:"snapshot_id"`
	Entries    []Entry `json:"entries"`
}

// handlePost handles POST /rankings requests with a custom weight table.
func (h *RankingsHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	var req customRankingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if req.Limit < 0 || (req.Limit > h.maxLimit && h.maxLimit > 0) {
		writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = h.maxLimit
	}

	cfg := make(weights.Config, len(req.Weights))
	for name, weight := range req.Weights {
		cfg[model.Factor(name)] = weight
	}

	entries, err := h.deps.Rankings(r.Context(), cfg, limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rankingsResponse{
		SnapshotID: h.deps.SnapshotID(),
		Entries:    entries,
	})
}

// parseLimit validates the limit query parameter, defaulting to the cap.
func (h *RankingsHandler) parseLimit(raw string) (int, error) {
	if raw == "" {
		return h.maxLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, ErrBadRequest
	}
	if n > h.maxLimit {
		return 0, ErrLimitExceeded
	}
	return n, nil
}
