package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL string        // Base URL of the dashboard
	TopN    int           // Expected upper bound on trend countries
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every passing check
}

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Options mirrors GET /api/options.
type Options struct {
	Scopes        []Option `json:"scopes"`
	Metrics       []Option `json:"metrics"`
	DefaultScope  string   `json:"default_scope"`
	DefaultMetric string   `json:"default_metric"`
}

// Spec is the subset of the figure spec the checks read.
type Spec struct {
	Kind       string   `json:"kind"`
	Projection string   `json:"projection"`
	SizeMax    int      `json:"size_max"`
	ShowLegend bool     `json:"show_legend"`
	Frames     []string `json:"frames"`
}

// MapView mirrors GET /api/figure.
type MapView struct {
	Title    string `json:"title"`
	Help     string `json:"help"`
	Spec     Spec   `json:"spec"`
	RowCount int    `json:"row_count"`
	Figure   struct {
		Data []map[string]any `json:"data"`
	} `json:"figure"`
}

// TrendView mirrors GET /api/trend.
type TrendView struct {
	Title  string   `json:"title"`
	Codes  []string `json:"codes"`
	Figure struct {
		Data []map[string]any `json:"data"`
	} `json:"figure"`
}

// Entry mirrors a ranked country.
type Entry struct {
	Rank          int     `json:"rank"`
	CountryCode   string  `json:"country_code"`
	MortalityRate float64 `json:"mortality_rate"`
}

// Combo is one scope and metric selection.
type Combo struct {
	Scope  Option
	Metric Option
}

// Result is the outcome of checking one combo.
type Result struct {
	Combo    Combo
	Failures []string
	Rows     int
	Duration time.Duration
}

// Passed reports whether every check held.
func (r Result) Passed() bool { return len(r.Failures) == 0 }

// Stats holds run statistics.
type Stats struct {
	Combos    int
	Passed    int
	Failed    int
	EmptyMaps int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
