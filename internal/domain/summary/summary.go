// Package summary derives the per-country mortality table used for ranking.
package summary

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/internal/domain/types"
)

// MinPopulation is the smallest population kept. Micro-states at or below it
// would dominate a per-capita ranking.
const MinPopulation = 1000

// Build joins days and populations on country code at the reference date and
// computes deaths per head. Countries without a population row, and those
// with population <= MinPopulation, are dropped.
func Build(days model.DayTable, pops model.PopulationTable, reference time.Time) model.SummaryTable {
	ref := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)

	rows := make([]model.CountrySummaryRecord, 0)
	for d := range days.All() {
		if !d.Date.Equal(ref) {
			continue
		}
		p, ok := pops.Lookup(d.CountryCode)
		if !ok || p.Population2020 <= MinPopulation {
			continue
		}
		rows = append(rows, model.CountrySummaryRecord{
			CountryCode:   d.CountryCode,
			CountryName:   d.CountryName,
			Continent:     d.Continent,
			MortalityRate: float64(d.ConfirmedDeaths) / float64(p.Population2020),
		})
	}
	return model.NewSummaryTable(rows)
}

// Stats describes the mortality distribution inside one scope.
type Stats struct {
	Scope  types.Scope `json:"scope"`
	Count  int         `json:"count"`
	Mean   float64     `json:"mean"`
	Median float64     `json:"median"`
	Min    float64     `json:"min"`
	Max    float64     `json:"max"`
}

// Describe summarises the mortality rates of the countries in scope. An
// empty scope yields a zero Stats with Count 0.
func Describe(t model.SummaryTable, scope types.Scope) (Stats, error) {
	data := make(stats.Float64Data, 0, t.Len())
	for r := range t.All() {
		if scope.Matches(r.Continent) {
			data = append(data, r.MortalityRate)
		}
	}

	out := Stats{Scope: scope, Count: len(data)}
	if len(data) == 0 {
		return out, nil
	}

	var err error
	if out.Mean, err = stats.Mean(data); err != nil {
		return Stats{}, err
	}
	if out.Median, err = stats.Median(data); err != nil {
		return Stats{}, err
	}
	if out.Min, err = stats.Min(data); err != nil {
		return Stats{}, err
	}
	if out.Max, err = stats.Max(data); err != nil {
		return Stats{}, err
	}
	return out, nil
}
