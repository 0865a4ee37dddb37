package api

import (
	"context"
	"net/http"
	"strconv"

	service "github.com/okian/oxdash/internal/app"
	"github.com/okian/oxdash/internal/domain/types"
)

// ChartDependencies defines the chart operations the handlers call.
type ChartDependencies interface {
	Title(ctx context.Context, scope types.Scope, metric types.Metric) (string, error)
	Help(ctx context.Context, metric types.Metric) (string, error)
	MapFigure(ctx context.Context, scope types.Scope, metric types.Metric) (service.MapView, error)
	TrendFigure(ctx context.Context, scope types.Scope, metric types.Metric) (service.TrendView, error)
	TrendPNG(ctx context.Context, scope types.Scope, metric types.Metric) ([]byte, error)
}

// FigureHandler serves the main map and the trend thumbnail.
type FigureHandler struct {
	deps ChartDependencies
}

// NewFigureHandler creates a new figure handler.
func NewFigureHandler(deps ChartDependencies) *FigureHandler {
	return &FigureHandler{deps: deps}
}

// HandleFigure handles GET /api/figure?scope=&metric= requests.
func (h *FigureHandler) HandleFigure(w http.ResponseWriter, r *http.Request) {
	scope, metric, err := selectionParams(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	view, err := h.deps.MapFigure(r.Context(), scope, metric)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleTrend handles GET /api/trend?scope=&metric= requests.
func (h *FigureHandler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	scope, metric, err := selectionParams(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	view, err := h.deps.TrendFigure(r.Context(), scope, metric)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleTrendPNG handles GET /api/trend.png?scope=&metric= requests.
func (h *FigureHandler) HandleTrendPNG(w http.ResponseWriter, r *http.Request) {
	scope, metric, err := selectionParams(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	png, err := h.deps.TrendPNG(r.Context(), scope, metric)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
