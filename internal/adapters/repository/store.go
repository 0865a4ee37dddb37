// Package repository holds the immutable data context: the two source tables,
// the derived summary and precomputed rankings, published once and then only
// read.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/internal/domain/ranking"
	"github.com/okian/oxdash/internal/domain/types"
)

// Entry is a country's mortality rank worldwide plus its rank inside its
// own continent.
type Entry struct {
	types.Entry
	ContinentRank int `json:"continent_rank"`
}

// Snapshot is everything the pipeline reads. It is never mutated after
// NewSnapshot returns.
type Snapshot struct {
	Version     string
	LoadedAt    time.Time
	Reference   time.Time
	Days        model.DayTable
	Populations model.PopulationTable
	Summary     model.SummaryTable

	rankByCountry map[string]Entry
}

// NewSnapshot bundles the tables and precomputes per-country ranks.
func NewSnapshot(days model.DayTable, pops model.PopulationTable, sum model.SummaryTable, reference time.Time, opts ...Option) *Snapshot {
	s := &Snapshot{
		Version:     uuid.NewString(),
		LoadedAt:    time.Now().UTC(),
		Reference:   reference,
		Days:        days,
		Populations: pops,
		Summary:     sum,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rankByCountry = buildRanks(sum)
	return s
}

// buildRanks ranks every summarised country worldwide and within its
// continent.
func buildRanks(sum model.SummaryTable) map[string]Entry {
	out := make(map[string]Entry, sum.Len())
	for _, e := range ranking.Ranked(sum, types.ScopeWorld) {
		out[e.CountryCode] = Entry{Entry: e}
	}

	continents := make(map[string]struct{})
	for r := range sum.All() {
		continents[r.Continent] = struct{}{}
	}
	for c := range continents {
		for _, e := range ranking.Ranked(sum, types.Scope(c)) {
			if rec, ok := out[e.CountryCode]; ok {
				rec.ContinentRank = e.Rank
				out[e.CountryCode] = rec
			}
		}
	}
	return out
}

// Store provides read access to the published snapshot.
type Store interface {
	// Publish installs the snapshot. It succeeds only once.
	Publish(s *Snapshot) error

	// Snapshot returns the published snapshot or ErrNotLoaded.
	Snapshot() (*Snapshot, error)

	// Rank returns a country's world and continent rank.
	// Returns ErrNotFound if the country has no summary row.
	Rank(ctx context.Context, countryCode string) (Entry, error)

	// TopN returns the n highest-mortality countries in scope.
	TopN(ctx context.Context, scope types.Scope, n int) ([]types.Entry, error)

	// Count returns the number of ranked countries.
	Count(ctx context.Context) int
}
