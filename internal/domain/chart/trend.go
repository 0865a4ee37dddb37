package chart

import (
	"slices"

	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/internal/domain/types"
)

// Trend assembles the thumbnail line chart: one line per code, in codes
// order, x = date and y = the metric. No codes gives an empty chart.
func Trend(rows []model.CountryDayRecord, codes []string, metric types.Metric, style Style) (Figure, error) {
	label, err := metric.Label()
	if err != nil {
		return Figure{}, err
	}
	p := newPrinter()

	byCode := make(map[string][]model.CountryDayRecord, len(codes))
	for _, r := range rows {
		byCode[r.CountryCode] = append(byCode[r.CountryCode], r)
	}

	traces := make([]Trace, 0, len(codes))
	for _, code := range codes {
		series := slices.Clone(byCode[code])
		slices.SortStableFunc(series, func(a, b model.CountryDayRecord) int { return a.Date.Compare(b.Date) })

		name := code
		if len(series) > 0 && series[0].CountryName != "" {
			name = series[0].CountryName
		}
		t := Trace{
			Type:      "scatter",
			Mode:      "lines",
			Name:      name,
			X:         make([]string, 0, len(series)),
			Y:         make([]float64, 0, len(series)),
			Text:      make([]string, 0, len(series)),
			HoverInfo: "text",
			Line:      &LineStyle{Width: 1.5},
		}
		for _, r := range series {
			v, err := r.Value(metric)
			if err != nil {
				return Figure{}, err
			}
			t.X = append(t.X, r.DateKey())
			t.Y = append(t.Y, v)
			t.Text = append(t.Text, hoverText(p, name, label, metric, v)+"<br>"+r.DateKey())
		}
		traces = append(traces, t)
	}

	return Figure{
		Data: traces,
		Layout: Layout{
			Width:        style.ThumbWidth,
			Height:       style.ThumbHeight,
			PlotBGColor:  style.Background,
			PaperBGColor: style.Background,
			Font:         Font{Color: style.Text},
			Margin:       Margin{L: 40, R: 10, T: 10, B: 10, Pad: style.Pad},
			Transition:   Transition{Duration: style.TransitionMS},
			XAxis:        &Axis{ShowTickLabels: false, Type: "date"},
			YAxis:        &Axis{ShowTickLabels: true, ShowGrid: true},
		},
	}, nil
}
