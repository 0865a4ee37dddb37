// Package types contains the closed selection enumerations and the shapes
// shared across the application.
package types

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Scope is a geographic filter: the whole world or one continent.
// Values are the lower-case strings the dashboard dropdown submits.
type Scope string

const (
	ScopeWorld        Scope = "world"
	ScopeAsia         Scope = "asia"
	ScopeAfrica       Scope = "africa"
	ScopeEurope       Scope = "europe"
	ScopeNorthAmerica Scope = "north america"
	ScopeSouthAmerica Scope = "south america"
)

var scopes = []Scope{
	ScopeWorld,
	ScopeAsia,
	ScopeAfrica,
	ScopeEurope,
	ScopeNorthAmerica,
	ScopeSouthAmerica,
}

// Scopes returns every scope in dropdown order.
func Scopes() []Scope {
	out := make([]Scope, len(scopes))
	copy(out, scopes)
	return out
}

// ParseScope matches s case-insensitively against the known scopes.
func ParseScope(s string) (Scope, error) {
	key := strings.TrimSpace(s)
	for _, sc := range scopes {
		if strings.EqualFold(key, string(sc)) {
			return sc, nil
		}
	}
	return "", unknownScope(s)
}

// IsWorld reports whether the scope covers every continent.
func (s Scope) IsWorld() bool {
	return strings.EqualFold(string(s), string(ScopeWorld))
}

// Matches reports whether a row tagged with continent belongs to the scope.
func (s Scope) Matches(continent string) bool {
	if s.IsWorld() {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(continent), string(s))
}

// Title returns the scope in title case, e.g. "North America".
func (s Scope) Title() string {
	return cases.Title(language.English).String(string(s))
}

// Entry is one ranked country in a mortality ranking.
type Entry struct {
	Rank          int     `json:"rank"`
	CountryCode   string  `json:"country_code"`
	CountryName   string  `json:"country_name"`
	Continent     string  `json:"continent"`
	MortalityRate float64 `json:"mortality_rate"`
}

// Option is a label/value pair for a single-select control.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ScopeOptions returns the scope dropdown entries.
func ScopeOptions() []Option {
	out := make([]Option, 0, len(scopes))
	for _, sc := range scopes {
		out = append(out, Option{Label: sc.Title(), Value: string(sc)})
	}
	return out
}

// MetricOptions returns the metric dropdown entries.
func MetricOptions() []Option {
	out := make([]Option, 0, len(metricTable))
	for _, info := range metricTable {
		out = append(out, Option{Label: info.Label, Value: string(info.Metric)})
	}
	return out
}
