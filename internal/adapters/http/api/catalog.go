package api

import (
	"context"
	"net/http"

	"github.com/okian/oxdash/internal/domain/types"
)

// CatalogHandler serves the static dropdown options and captions.
type CatalogHandler struct {
	deps ChartDependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps ChartDependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

type optionsResponse struct {
	Scopes        []types.Option `json:"scopes"`
	Metrics       []types.Option `json:"metrics"`
	DefaultScope  types.Scope    `json:"default_scope"`
	DefaultMetric types.Metric   `json:"default_metric"`
}

type textResponse struct {
	Text string `json:"text"`
}

// HandleOptions handles GET /api/options requests.
func (h *CatalogHandler) HandleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, optionsResponse{
		Scopes:        types.ScopeOptions(),
		Metrics:       types.MetricOptions(),
		DefaultScope:  defaultScope,
		DefaultMetric: defaultMetric,
	})
}

// HandleTitle handles GET /api/title?scope=&metric= requests.
func (h *CatalogHandler) HandleTitle(w http.ResponseWriter, r *http.Request) {
	scope, metric, err := selectionParams(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.text(w, r, func(ctx context.Context) (string, error) { return h.deps.Title(ctx, scope, metric) })
}

// HandleHelp handles GET /api/help?metric= requests.
func (h *CatalogHandler) HandleHelp(w http.ResponseWriter, r *http.Request) {
	metric, err := metricParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.text(w, r, func(ctx context.Context) (string, error) { return h.deps.Help(ctx, metric) })
}

func (h *CatalogHandler) text(w http.ResponseWriter, r *http.Request, get func(context.Context) (string, error)) {
	s, err := get(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: s})
}
