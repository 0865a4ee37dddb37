package chart

// Style holds the fixed presentation constants.
type Style struct {
	Background string
	Text       string

	CoastlineColor string
	LandColor      string
	OceanColor     string

	Width  int
	Height int
	Pad    int

	ThumbWidth  int
	ThumbHeight int

	TransitionMS int
}

// DefaultStyle is the dashboard's dark theme.
var DefaultStyle = Style{
	Background:     "#111111",
	Text:           "#7FDBFF",
	CoastlineColor: "DarkBlue",
	LandColor:      "DarkGreen",
	OceanColor:     "LightBlue",
	Width:          1400,
	Height:         800,
	Pad:            4,
	ThumbWidth:     400,
	ThumbHeight:    200,
	TransitionMS:   300,
}

// ylOrRdReversed is ColorBrewer YlOrRd, dark red at the low end.
var ylOrRdReversed = []string{
	"#800026", "#bd0026", "#e31a1c", "#fc4e2a", "#fd8d3c",
	"#feb24c", "#fed976", "#ffeda0", "#ffffcc",
}

// qualitative is the default categorical palette for continent colours.
var qualitative = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// colorScale expands a named scale into [position, colour] stops.
func colorScale(name string) [][2]any {
	var stops []string
	switch name {
	case "YlOrRd_r":
		stops = ylOrRdReversed
	default:
		return nil
	}
	out := make([][2]any, 0, len(stops))
	last := float64(len(stops) - 1)
	for i, c := range stops {
		out = append(out, [2]any{float64(i) / last, c})
	}
	return out
}
