// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers a YAML file and the environment on top.
// - Every loaded Config is validated before it is returned.
// - External errors are wrapped with this package's sentinel kinds.
package config

import "time"

// Defaults. The day table has a published location; the population table
// does not, so PopulationSourceURL has no default and must be configured.
// Either source may be any URL, file:// location or local path, CSV or XLSX.
const (
	DefaultDaySourceURL  = "https://trak.org.uk/wp-content/uploads/2020/07/oxfix.csv"
	DefaultReferenceDate = "2020-05-15"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// LogFormat selects the handler: text or json.
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=text json"`

	// Addr configures the HTTP listen address, e.g. ":8050".
	Addr string `koanf:"addr" validate:"required"`

	// DaySourceURL locates the per-country daily response/case/death table.
	DaySourceURL string `koanf:"day_source_url" validate:"required"`

	// PopulationSourceURL locates the per-country 2020 population table.
	// Required; set OXDASH_POPULATION_SOURCE_URL or population_source_url.
	PopulationSourceURL string `koanf:"population_source_url" validate:"required"`

	// ReferenceDate is the day mortality rates are computed at (YYYY-MM-DD).
	ReferenceDate string `koanf:"reference_date" validate:"required,datetime=2006-01-02"`

	// FetchTimeoutMS bounds each source download.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms" validate:"gt=0"`

	// MaxTopLimit caps GET /api/top?limit.
	MaxTopLimit int `koanf:"max_top_limit" validate:"gte=1,lte=50"`

	// TrendSize is how many countries the thumbnail trend compares.
	TrendSize int `koanf:"trend_size" validate:"gte=1,lte=20"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           ":8050",
		DaySourceURL:   DefaultDaySourceURL,
		ReferenceDate:  DefaultReferenceDate,
		FetchTimeoutMS: 30_000,
		MaxTopLimit:    20,
		TrendSize:      5,
	}
}

// FetchTimeout returns FetchTimeoutMS as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}

// Reference parses ReferenceDate. Load has already validated the format.
func (c *Config) Reference() (time.Time, error) {
	return time.Parse(time.DateOnly, c.ReferenceDate)
}
