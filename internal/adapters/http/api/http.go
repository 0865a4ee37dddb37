// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	repository "github.com/okian/oxdash/internal/adapters/repository"
	service "github.com/okian/oxdash/internal/app"
	"github.com/okian/oxdash/internal/domain/ranking"
	"github.com/okian/oxdash/internal/domain/types"
)

// Dependencies required by HTTP handlers. The dashboard service satisfies
// it; tests substitute fakes.
type Dependencies interface {
	ChartDependencies
	RankingDependencies
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	catalogHandler *CatalogHandler
	figureHandler  *FigureHandler
	rankHandler    *RankingHandler
}

// NewServer creates a new API server with all handlers. maxTopLimit caps
// the limit accepted by /api/top.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxTopLimit int) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		catalogHandler: NewCatalogHandler(deps),
		figureHandler:  NewFigureHandler(deps),
		rankHandler:    NewRankingHandler(deps, maxTopLimit),
	}
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(_ context.Context, r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", MetricsMiddleware(s.catalogHandler.HandleOptions, "options"))
		r.Get("/title", MetricsMiddleware(s.catalogHandler.HandleTitle, "title"))
		r.Get("/help", MetricsMiddleware(s.catalogHandler.HandleHelp, "help"))
		r.Get("/figure", MetricsMiddleware(s.figureHandler.HandleFigure, "figure"))
		r.Get("/trend", MetricsMiddleware(s.figureHandler.HandleTrend, "trend"))
		r.Get("/trend.png", MetricsMiddleware(s.figureHandler.HandleTrendPNG, "trend_png"))
		r.Get("/top", MetricsMiddleware(s.rankHandler.HandleTop, "top"))
		r.Get("/rank/{code}", MetricsMiddleware(s.rankHandler.HandleRank, "rank"))
		r.Get("/summary", MetricsMiddleware(s.rankHandler.HandleSummary, "summary"))
	})
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

// writeServiceError translates domain and store errors into responses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrUnknownScope):
		writeError(w, http.StatusBadRequest, "unknown_scope", err)
	case errors.Is(err, types.ErrUnknownMetric):
		writeError(w, http.StatusBadRequest, "unknown_metric", err)
	case errors.Is(err, repository.ErrInvalidLimit), errors.Is(err, ranking.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, ranking.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrNotLoaded):
		writeError(w, http.StatusServiceUnavailable, "not_loaded", err)
	case errors.Is(err, service.ErrNoRenderer):
		writeError(w, http.StatusNotImplemented, "not_implemented", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
