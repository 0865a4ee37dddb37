package chart

import (
	"fmt"

	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/internal/domain/selection"
	"github.com/okian/oxdash/internal/domain/types"
)

const (
	locationMode  = "ISO-3"
	frameDuration = 500
)

// Map assembles the animated map for a resolved selection. An empty
// selection yields a map with one empty trace and no frames.
func Map(res selection.Result, style Style) (Figure, error) {
	label, err := res.Metric.Label()
	if err != nil {
		return Figure{}, err
	}

	var frames []Frame
	switch res.Kind {
	case selection.KindBubble:
		frames, err = bubbleFrames(res, label)
	case selection.KindChoropleth:
		frames, err = choroplethFrames(res, label)
	default:
		return Figure{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, res.Kind)
	}
	if err != nil {
		return Figure{}, err
	}

	fig := Figure{Layout: mapLayout(res, style), Frames: frames}
	if len(frames) > 0 {
		fig.Data = frames[0].Data
		fig.Layout.Sliders = []Slider{slider(frames, style)}
		fig.Layout.UpdateMenus = []UpdateMenu{playButtons(style)}
	} else {
		fig.Data = []Trace{emptyMapTrace(res.Kind)}
	}
	return fig, nil
}

func mapLayout(res selection.Result, style Style) Layout {
	return Layout{
		AutoSize:     true,
		Width:        style.Width,
		Height:       style.Height,
		PlotBGColor:  style.Background,
		PaperBGColor: style.Background,
		Font:         Font{Color: style.Text},
		ShowLegend:   res.ShowLegend,
		Margin:       Margin{Pad: style.Pad},
		Transition:   Transition{Duration: style.TransitionMS},
		Geo: &Geo{
			Scope:          geoScope(res.Scope),
			Projection:     Projection{Type: string(res.Projection)},
			ShowCoastlines: true,
			CoastlineColor: style.CoastlineColor,
			ShowLand:       true,
			LandColor:      style.LandColor,
			ShowOcean:      true,
			OceanColor:     style.OceanColor,
			BGColor:        style.Background,
		},
	}
}

// geoScope maps a scope onto the renderer's named map regions. Scopes the
// renderer does not know fall back to the whole world.
func geoScope(s types.Scope) string {
	if sc, err := types.ParseScope(string(s)); err == nil {
		return string(sc)
	}
	return string(types.ScopeWorld)
}

// framesOf splits date-ordered rows into per-date runs.
func framesOf(rows []model.CountryDayRecord) [][]model.CountryDayRecord {
	if len(rows) == 0 {
		return nil
	}
	var out [][]model.CountryDayRecord
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i == len(rows) || !rows[i].Date.Equal(rows[start].Date) {
			out = append(out, rows[start:i])
			start = i
		}
	}
	return out
}

func bubbleFrames(res selection.Result, label string) ([]Frame, error) {
	p := newPrinter()

	// Continents in first-seen order give every frame the same trace layout.
	var continents []string
	seen := make(map[string]int)
	maxSize := 0.0
	for _, r := range res.Rows {
		if _, ok := seen[r.Continent]; !ok {
			seen[r.Continent] = len(continents)
			continents = append(continents, r.Continent)
		}
		v, err := r.Value(res.Metric)
		if err != nil {
			return nil, err
		}
		maxSize = max(maxSize, v)
	}
	sizeRef := 1.0
	if maxSize > 0 {
		sizeRef = 2 * maxSize / float64(res.SizeMax*res.SizeMax)
	}

	frames := make([]Frame, 0, len(res.Frames))
	for _, day := range framesOf(res.Rows) {
		traces := make([]Trace, len(continents))
		for i, c := range continents {
			traces[i] = Trace{
				Type:         "scattergeo",
				Name:         c,
				Geo:          "geo",
				LocationMode: locationMode,
				Locations:    []string{},
				Text:         []string{},
				HoverInfo:    "text",
				LegendGroup:  c,
				ShowLegend:   boolPtr(res.ShowLegend),
				Marker: &Marker{
					Color:    qualitative[i%len(qualitative)],
					Size:     []float64{},
					SizeMode: "area",
					SizeRef:  sizeRef,
				},
			}
		}
		for _, r := range day {
			v, err := r.Value(res.Metric)
			if err != nil {
				return nil, err
			}
			t := &traces[seen[r.Continent]]
			t.Locations = append(t.Locations, r.CountryCode)
			t.Text = append(t.Text, hoverText(p, r.CountryName, label, res.Metric, v))
			t.Marker.Size = append(t.Marker.Size, v)
		}
		frames = append(frames, Frame{Name: day[0].DateKey(), Data: traces})
	}
	return frames, nil
}

func choroplethFrames(res selection.Result, label string) ([]Frame, error) {
	p := newPrinter()

	var lo, hi float64
	for i, r := range res.Rows {
		v, err := r.Value(res.Metric)
		if err != nil {
			return nil, err
		}
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}

	frames := make([]Frame, 0, len(res.Frames))
	for _, day := range framesOf(res.Rows) {
		t := Trace{
			Type:         "choropleth",
			Name:         label,
			Geo:          "geo",
			LocationMode: locationMode,
			Locations:    make([]string, 0, len(day)),
			Z:            make([]float64, 0, len(day)),
			Text:         make([]string, 0, len(day)),
			HoverInfo:    "text",
			ZMin:         &lo,
			ZMax:         &hi,
			ColorScale:   colorScale(res.ColorScale),
			ColorBar:     &ColorBar{Title: Text{Text: string(res.Metric)}},
			ShowScale:    boolPtr(res.ShowLegend),
		}
		for _, r := range day {
			v, err := r.Value(res.Metric)
			if err != nil {
				return nil, err
			}
			t.Locations = append(t.Locations, r.CountryCode)
			t.Z = append(t.Z, v)
			t.Text = append(t.Text, hoverText(p, r.CountryName, label, res.Metric, v))
		}
		frames = append(frames, Frame{Name: day[0].DateKey(), Data: []Trace{t}})
	}
	return frames, nil
}

func emptyMapTrace(kind selection.Kind) Trace {
	t := Trace{Geo: "geo", LocationMode: locationMode, Locations: []string{}}
	if kind == selection.KindChoropleth {
		t.Type = "choropleth"
		t.Z = []float64{}
		return t
	}
	t.Type = "scattergeo"
	return t
}

func animationArgs(style Style, redraw bool) map[string]any {
	return map[string]any{
		"frame":      map[string]any{"duration": frameDuration, "redraw": redraw},
		"mode":       "immediate",
		"transition": map[string]any{"duration": style.TransitionMS},
	}
}

func slider(frames []Frame, style Style) Slider {
	steps := make([]Step, 0, len(frames))
	for _, f := range frames {
		steps = append(steps, Step{
			Label:  f.Name,
			Method: "animate",
			Args:   []any{[]string{f.Name}, animationArgs(style, true)},
		})
	}
	return Slider{
		CurrentValue: CurrentValue{Prefix: "Date="},
		Steps:        steps,
		X:            0.1,
		Y:            0,
		Len:          0.9,
	}
}

func playButtons(style Style) UpdateMenu {
	play := animationArgs(style, true)
	play["fromcurrent"] = true
	return UpdateMenu{
		Type: "buttons",
		X:    0.1,
		Y:    0,
		Buttons: []Button{
			{Label: "▶", Method: "animate", Args: []any{nil, play}},
			{Label: "◼", Method: "animate", Args: []any{[]any{nil}, map[string]any{
				"frame":      map[string]any{"duration": 0, "redraw": false},
				"mode":       "immediate",
				"transition": map[string]any{"duration": 0},
			}}},
		},
	}
}
