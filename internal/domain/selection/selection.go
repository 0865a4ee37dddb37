// Package selection turns a (scope, metric) pair into the chart geometry and
// the subset of day rows to draw.
package selection

import (
	"slices"

	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/internal/domain/types"
)

// Kind is the chart geometry.
type Kind string

const (
	KindBubble     Kind = "bubble"
	KindChoropleth Kind = "choropleth"
	KindLine       Kind = "line"
)

// Projection is a map projection name as the renderer spells it.
type Projection string

const (
	ProjectionNaturalEarth    Projection = "natural earth"
	ProjectionEquirectangular Projection = "equirectangular"
)

// Marker size bounds: small markers for the whole world, large for a continent.
const (
	SizeMaxWorld    = 20
	SizeMaxRegional = 80
)

// ColorScale is the reversed single-hue scale used by choropleths.
const ColorScale = "YlOrRd_r"

// ColorByContinent marks bubbles coloured by continent rather than by value.
const ColorByContinent = "continent"

// Result is everything the chart assembler needs for the map.
type Result struct {
	Scope      types.Scope  `json:"scope"`
	Metric     types.Metric `json:"metric"`
	Kind       Kind         `json:"kind"`
	Projection Projection   `json:"projection"`
	SizeMax    int          `json:"size_max"`
	ShowLegend bool         `json:"show_legend"`
	ColorBy    string       `json:"color_by"`
	ColorScale string       `json:"color_scale,omitempty"`
	// Frames lists the animation keys (ISO dates) ascending.
	Frames []string `json:"frames"`
	// Rows holds the selected records ordered by date; rows sharing a date
	// keep their source order.
	Rows []model.CountryDayRecord `json:"-"`
}

// Resolve selects the geometry for metric and the rows inside scope. A scope
// that matches no rows gives an empty but valid Result. An unknown metric is
// an error carrying the key.
func Resolve(scope types.Scope, metric types.Metric, days model.DayTable) (Result, error) {
	if _, err := metric.Info(); err != nil {
		return Result{}, err
	}

	res := Result{
		Scope:      scope,
		Metric:     metric,
		Projection: ProjectionEquirectangular,
		SizeMax:    SizeMaxRegional,
	}
	if scope.IsWorld() {
		res.Projection = ProjectionNaturalEarth
		res.SizeMax = SizeMaxWorld
	}

	if metric.IsCount() {
		res.Kind = KindBubble
		res.ColorBy = ColorByContinent
	} else {
		res.Kind = KindChoropleth
		res.ShowLegend = true
		res.ColorBy = string(metric)
		res.ColorScale = ColorScale
	}

	res.Rows = days.Filter(func(r model.CountryDayRecord) bool { return scope.Matches(r.Continent) })
	res.Rows, res.Frames = byDate(res.Rows)
	return res, nil
}

// byDate stable-sorts rows by date and returns the distinct date keys.
func byDate(rows []model.CountryDayRecord) ([]model.CountryDayRecord, []string) {
	slices.SortStableFunc(rows, func(a, b model.CountryDayRecord) int { return a.Date.Compare(b.Date) })

	frames := make([]string, 0)
	for i, r := range rows {
		if i == 0 || !r.Date.Equal(rows[i-1].Date) {
			frames = append(frames, r.DateKey())
		}
	}
	return rows, frames
}
