// Package ranking orders countries by mortality rate within a scope and
// expands a ranked set back to full time series.
package ranking

import (
	"slices"

	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/internal/domain/types"
)

// DefaultN is how many countries the trend thumbnail compares.
const DefaultN = 5

// Ranked returns every summary row in scope, highest mortality first.
// Equal rates keep a stable order derived from the table order.
func Ranked(t model.SummaryTable, scope types.Scope) []types.Entry {
	rows := make([]model.CountrySummaryRecord, 0, t.Len())
	for r := range t.All() {
		if scope.Matches(r.Continent) {
			rows = append(rows, r)
		}
	}
	slices.SortStableFunc(rows, func(a, b model.CountrySummaryRecord) int {
		switch {
		case a.MortalityRate < b.MortalityRate:
			return -1
		case a.MortalityRate > b.MortalityRate:
			return 1
		}
		return 0
	})

	// Walk the ascending order backwards so the tail comes out first.
	out := make([]types.Entry, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		out = append(out, types.Entry{
			CountryCode:   r.CountryCode,
			CountryName:   r.CountryName,
			Continent:     r.Continent,
			MortalityRate: r.MortalityRate,
		})
	}
	assignRanksWithTies(out)
	return out
}

// Top returns at most n countries in scope with the highest mortality,
// highest first. Fewer than n qualifying countries is not an error.
func Top(t model.SummaryTable, scope types.Scope, n int) ([]types.Entry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	all := Ranked(t, scope)
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

// RankOf returns the ranked entry for code within scope.
func RankOf(t model.SummaryTable, scope types.Scope, code string) (types.Entry, error) {
	for _, e := range Ranked(t, scope) {
		if e.CountryCode == code {
			return e, nil
		}
	}
	return types.Entry{}, ErrNotFound
}

// Codes lists the country codes of entries in order.
func Codes(entries []types.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.CountryCode)
	}
	return out
}

// Expand returns every day row, across all dates, whose country code is in
// codes. Rows keep table order.
func Expand(codes []string, days model.DayTable) []model.CountryDayRecord {
	if len(codes) == 0 {
		return []model.CountryDayRecord{}
	}
	want := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		want[c] = struct{}{}
	}
	return days.Filter(func(r model.CountryDayRecord) bool {
		_, ok := want[r.CountryCode]
		return ok
	})
}

// assignRanksWithTies gives equal rates the same rank; the next distinct
// rate takes the next consecutive rank. entries must be sorted descending.
func assignRanksWithTies(entries []types.Entry) {
	rank := 0
	for i := range entries {
		if i == 0 || entries[i].MortalityRate != entries[i-1].MortalityRate {
			rank++
		}
		entries[i].Rank = rank
	}
}
