package smoke

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// checkCombo requests the map, the trend and the top list for one
// selection and checks them against the expected geometry.
func checkCombo(ctx context.Context, client *HTTPClient, cfg *Config, c Combo) Result {
	start := time.Now()
	res := Result{Combo: c}
	fail := func(format string, args ...any) {
		res.Failures = append(res.Failures, fmt.Sprintf(format, args...))
	}
	params := url.Values{"scope": {c.Scope.Value}, "metric": {c.Metric.Value}}

	var view MapView
	if err := client.GetJSON(ctx, "/api/figure", params, &view); err != nil {
		fail("figure: %v", err)
	} else {
		res.Rows = view.RowCount
		checkMap(c, view, fail)
	}

	var trend TrendView
	if err := client.GetJSON(ctx, "/api/trend", params, &trend); err != nil {
		fail("trend: %v", err)
	} else {
		checkTrend(cfg, c, trend, fail)
	}

	var top []Entry
	topParams := url.Values{"scope": {c.Scope.Value}, "limit": {strconv.Itoa(cfg.TopN)}}
	if err := client.GetJSON(ctx, "/api/top", topParams, &top); err != nil {
		fail("top: %v", err)
	} else {
		checkTop(top, trend.Codes, fail)
	}

	res.Duration = time.Since(start)
	return res
}

func checkMap(c Combo, view MapView, fail func(string, ...any)) {
	if want := mainTitlePrefix + c.Metric.Label + " for " + c.Scope.Label; view.Title != want {
		fail("title %q, want %q", view.Title, want)
	}
	if view.Help == "" {
		fail("help text is empty")
	}

	wantKind, wantLegend := KindChoropleth, true
	if countMetrics[c.Metric.Value] {
		wantKind, wantLegend = KindBubble, false
	}
	wantProjection, wantSize := ProjectionRegional, SizeMaxRegional
	if c.Scope.Value == WorldScope {
		wantProjection, wantSize = ProjectionWorld, SizeMaxWorld
	}

	if view.Spec.Kind != wantKind {
		fail("kind %q, want %q", view.Spec.Kind, wantKind)
	}
	if view.Spec.ShowLegend != wantLegend {
		fail("legend %t, want %t", view.Spec.ShowLegend, wantLegend)
	}
	if view.Spec.Projection != wantProjection {
		fail("projection %q, want %q", view.Spec.Projection, wantProjection)
	}
	if view.Spec.SizeMax != wantSize {
		fail("size max %d, want %d", view.Spec.SizeMax, wantSize)
	}
	if len(view.Figure.Data) == 0 {
		fail("figure has no traces")
	}
	for i := 1; i < len(view.Spec.Frames); i++ {
		if view.Spec.Frames[i] <= view.Spec.Frames[i-1] {
			fail("frames out of order at %d: %s after %s", i, view.Spec.Frames[i], view.Spec.Frames[i-1])
			break
		}
	}
}

func checkTrend(cfg *Config, c Combo, trend TrendView, fail func(string, ...any)) {
	if want := trendTitlePrefix + c.Metric.Label + trendTitleSuffix; trend.Title != want {
		fail("trend title %q, want %q", trend.Title, want)
	}
	if len(trend.Codes) > cfg.TopN {
		fail("trend has %d countries, want at most %d", len(trend.Codes), cfg.TopN)
	}
	if len(trend.Figure.Data) != len(trend.Codes) {
		fail("trend has %d lines for %d countries", len(trend.Figure.Data), len(trend.Codes))
	}
}

// checkTop verifies the ranking is descending and agrees with the trend.
func checkTop(top []Entry, trendCodes []string, fail func(string, ...any)) {
	for i := 1; i < len(top); i++ {
		if top[i].MortalityRate > top[i-1].MortalityRate {
			fail("top not descending at %d: %s above %s", i, top[i].CountryCode, top[i-1].CountryCode)
			break
		}
	}
	if len(top) != len(trendCodes) {
		fail("top has %d countries, trend has %d", len(top), len(trendCodes))
		return
	}
	for i := range top {
		if top[i].CountryCode != trendCodes[i] {
			fail("top[%d] is %s, trend[%d] is %s", i, top[i].CountryCode, i, trendCodes[i])
			return
		}
	}
}
