package api

import (
	"net/http"
	"strings"

	"github.com/okian/oxdash/internal/domain/types"
)

// Dropdown defaults. An absent parameter selects them; a present but
// unknown one is rejected.
const (
	defaultScope  = types.ScopeWorld
	defaultMetric = types.MetricConfirmedCases
)

func scopeParam(r *http.Request) (types.Scope, error) {
	v := r.URL.Query().Get("scope")
	if strings.TrimSpace(v) == "" {
		return defaultScope, nil
	}
	return types.ParseScope(v)
}

func metricParam(r *http.Request) (types.Metric, error) {
	v := r.URL.Query().Get("metric")
	if strings.TrimSpace(v) == "" {
		return defaultMetric, nil
	}
	return types.ParseMetric(v)
}

// selectionParams reads both dropdown values.
func selectionParams(r *http.Request) (types.Scope, types.Metric, error) {
	scope, err := scopeParam(r)
	if err != nil {
		return "", "", err
	}
	metric, err := metricParam(r)
	if err != nil {
		return "", "", err
	}
	return scope, metric, nil
}
