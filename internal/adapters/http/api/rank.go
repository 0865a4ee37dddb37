package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	repository "github.com/okian/oxdash/internal/adapters/repository"
	"github.com/okian/oxdash/internal/domain/ranking"
	"github.com/okian/oxdash/internal/domain/summary"
	"github.com/okian/oxdash/internal/domain/types"
)

// RankingDependencies defines the mortality ranking operations.
type RankingDependencies interface {
	TopN(ctx context.Context, scope types.Scope, n int) ([]types.Entry, error)
	Rank(ctx context.Context, countryCode string) (repository.Entry, error)
	Summary(ctx context.Context, scope types.Scope) (summary.Stats, error)
}

// RankingHandler handles top, rank and summary requests.
type RankingHandler struct {
	deps     RankingDependencies
	maxLimit int
}

// NewRankingHandler creates a new ranking handler.
func NewRankingHandler(deps RankingDependencies, maxLimit int) *RankingHandler {
	if maxLimit < 1 {
		maxLimit = ranking.DefaultN
	}
	return &RankingHandler{deps: deps, maxLimit: maxLimit}
}

// HandleTop handles GET /api/top?scope=&limit= requests.
func (h *RankingHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	n := ranking.DefaultN
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err = strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: limit %q", ErrBadRequest, s))
			return
		}
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", fmt.Errorf("%w: %d > %d", ErrLimitExceeded, n, h.maxLimit))
		return
	}
	entries, err := h.deps.TopN(r.Context(), scope, n)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleRank handles GET /api/rank/{code} requests.
func (h *RankingHandler) HandleRank(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(chi.URLParam(r, "code"))
	if code == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	entry, err := h.deps.Rank(r.Context(), code)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// HandleSummary handles GET /api/summary?scope= requests.
func (h *RankingHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	stats, err := h.deps.Summary(r.Context(), scope)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
