// Package chart assembles renderer-ready figures from a resolved selection
// and the fixed dark-theme styling. It performs no data computation.
package chart

// Figure is a plotly.js figure: traces, layout and animation frames.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Frames []Frame `json:"frames,omitempty"`
}

// Frame is one animation step, keyed by ISO date.
type Frame struct {
	Name string  `json:"name"`
	Data []Trace `json:"data"`
}

// Trace is one plotly trace. Only the attributes in use are set. Data
// arrays omit only when nil: an empty array in a frame clears the trace.
type Trace struct {
	Type          string     `json:"type"`
	Name          string     `json:"name,omitempty"`
	Mode          string     `json:"mode,omitempty"`
	Geo           string     `json:"geo,omitempty"`
	LocationMode  string     `json:"locationmode,omitempty"`
	Locations     []string   `json:"locations,omitzero"`
	Text          []string   `json:"text,omitzero"`
	HoverInfo     string     `json:"hoverinfo,omitempty"`
	X             []string   `json:"x,omitempty"`
	Y             []float64  `json:"y,omitempty"`
	Z             []float64  `json:"z,omitzero"`
	ZMin          *float64   `json:"zmin,omitempty"`
	ZMax          *float64   `json:"zmax,omitempty"`
	ColorScale    [][2]any   `json:"colorscale,omitempty"`
	ColorBar      *ColorBar  `json:"colorbar,omitempty"`
	ShowScale     *bool      `json:"showscale,omitempty"`
	ShowLegend    *bool      `json:"showlegend,omitempty"`
	Marker        *Marker    `json:"marker,omitempty"`
	Line          *LineStyle `json:"line,omitempty"`
	LegendGroup   string     `json:"legendgroup,omitempty"`
	HoverTemplate string     `json:"hovertemplate,omitempty"`
}

// Marker sizes and colours bubble markers.
type Marker struct {
	Color    string    `json:"color,omitempty"`
	Size     []float64 `json:"size,omitzero"`
	SizeMode string    `json:"sizemode,omitempty"`
	SizeRef  float64   `json:"sizeref,omitempty"`
	SizeMin  float64   `json:"sizemin,omitempty"`
}

// LineStyle styles a line trace.
type LineStyle struct {
	Width float64 `json:"width,omitempty"`
}

// ColorBar labels a choropleth scale.
type ColorBar struct {
	Title Text `json:"title"`
}

// Text is a plotly title object.
type Text struct {
	Text string `json:"text"`
}

// Font sets text colour.
type Font struct {
	Color string `json:"color"`
}

// Margin sets plot margins in pixels.
type Margin struct {
	L   int `json:"l"`
	R   int `json:"r"`
	B   int `json:"b"`
	T   int `json:"t"`
	Pad int `json:"pad"`
}

// Projection names the geo projection.
type Projection struct {
	Type string `json:"type"`
}

// Geo configures the map subplot.
type Geo struct {
	Scope          string     `json:"scope"`
	Projection     Projection `json:"projection"`
	ShowCoastlines bool       `json:"showcoastlines"`
	CoastlineColor string     `json:"coastlinecolor"`
	ShowLand       bool       `json:"showland"`
	LandColor      string     `json:"landcolor"`
	ShowOcean      bool       `json:"showocean"`
	OceanColor     string     `json:"oceancolor"`
	BGColor        string     `json:"bgcolor"`
}

// Axis configures a cartesian axis.
type Axis struct {
	ShowTickLabels bool   `json:"showticklabels"`
	ShowGrid       bool   `json:"showgrid"`
	Type           string `json:"type,omitempty"`
}

// Transition sets the animation transition.
type Transition struct {
	Duration int `json:"duration"`
}

// Layout is the figure layout.
type Layout struct {
	AutoSize     bool         `json:"autosize"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	PlotBGColor  string       `json:"plot_bgcolor"`
	PaperBGColor string       `json:"paper_bgcolor"`
	Font         Font         `json:"font"`
	ShowLegend   bool         `json:"showlegend"`
	Margin       Margin       `json:"margin"`
	Transition   Transition   `json:"transition"`
	Geo          *Geo         `json:"geo,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	Sliders      []Slider     `json:"sliders,omitempty"`
	UpdateMenus  []UpdateMenu `json:"updatemenus,omitempty"`
}

// Slider steps through animation frames.
type Slider struct {
	Active       int          `json:"active"`
	CurrentValue CurrentValue `json:"currentvalue"`
	Steps        []Step       `json:"steps"`
	X            float64      `json:"x"`
	Y            float64      `json:"y"`
	Len          float64      `json:"len"`
}

// CurrentValue labels the slider position.
type CurrentValue struct {
	Prefix string `json:"prefix"`
}

// Step is one slider stop.
type Step struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// UpdateMenu holds the play and pause buttons.
type UpdateMenu struct {
	Type       string   `json:"type"`
	ShowActive bool     `json:"showactive"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Buttons    []Button `json:"buttons"`
}

// Button is one animation control.
type Button struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

func boolPtr(b bool) *bool { return &b }
