package model

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// DayTable holds CountryDayRecord rows in source order. It is never mutated
// after construction, so it can be shared by concurrent readers.
type DayTable struct {
	rows []CountryDayRecord
}

// NewDayTable copies rows into a table, rejecting blank codes and repeated
// (country code, date) keys.
func NewDayTable(rows []CountryDayRecord) (DayTable, error) {
	seen := make(map[string]struct{}, len(rows))
	for i, r := range rows {
		if r.CountryCode == "" {
			return DayTable{}, fmt.Errorf("%w: day row %d", ErrEmptyCountryCode, i)
		}
		key := r.CountryCode + "|" + r.DateKey()
		if _, dup := seen[key]; dup {
			return DayTable{}, fmt.Errorf("%w: %s on %s", ErrDuplicateRecord, r.CountryCode, r.DateKey())
		}
		seen[key] = struct{}{}
	}
	return DayTable{rows: slices.Clone(rows)}, nil
}

// Len returns the number of rows.
func (t DayTable) Len() int { return len(t.rows) }

// All iterates rows in source order.
func (t DayTable) All() iter.Seq[CountryDayRecord] {
	return func(yield func(CountryDayRecord) bool) {
		for _, r := range t.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Rows returns a copy of every row.
func (t DayTable) Rows() []CountryDayRecord {
	return slices.Clone(t.rows)
}

// Filter returns the rows keep accepts, in source order.
func (t DayTable) Filter(keep func(CountryDayRecord) bool) []CountryDayRecord {
	out := make([]CountryDayRecord, 0)
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Dates returns the distinct dates present, ascending.
func (t DayTable) Dates() []time.Time {
	seen := make(map[time.Time]struct{})
	out := make([]time.Time, 0)
	for _, r := range t.rows {
		if _, ok := seen[r.Date]; ok {
			continue
		}
		seen[r.Date] = struct{}{}
		out = append(out, r.Date)
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// PopulationTable indexes CountryPopulationRecord rows by country code.
type PopulationTable struct {
	rows  []CountryPopulationRecord
	index map[string]int
}

// NewPopulationTable copies rows into a table; country codes must be unique.
func NewPopulationTable(rows []CountryPopulationRecord) (PopulationTable, error) {
	index := make(map[string]int, len(rows))
	for i, r := range rows {
		if r.CountryCode == "" {
			return PopulationTable{}, fmt.Errorf("%w: population row %d", ErrEmptyCountryCode, i)
		}
		if _, dup := index[r.CountryCode]; dup {
			return PopulationTable{}, fmt.Errorf("%w: population for %s", ErrDuplicateRecord, r.CountryCode)
		}
		index[r.CountryCode] = i
	}
	return PopulationTable{rows: slices.Clone(rows), index: index}, nil
}

// Len returns the number of rows.
func (t PopulationTable) Len() int { return len(t.rows) }

// Lookup returns the population row for code.
func (t PopulationTable) Lookup(code string) (CountryPopulationRecord, bool) {
	i, ok := t.index[code]
	if !ok {
		return CountryPopulationRecord{}, false
	}
	return t.rows[i], true
}

// All iterates rows in source order.
func (t PopulationTable) All() iter.Seq[CountryPopulationRecord] {
	return func(yield func(CountryPopulationRecord) bool) {
		for _, r := range t.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// SummaryTable is the derived per-country mortality table.
type SummaryTable struct {
	rows []CountrySummaryRecord
}

// NewSummaryTable copies rows into a table.
func NewSummaryTable(rows []CountrySummaryRecord) SummaryTable {
	return SummaryTable{rows: slices.Clone(rows)}
}

// Len returns the number of rows.
func (t SummaryTable) Len() int { return len(t.rows) }

// Rows returns a copy of every row.
func (t SummaryTable) Rows() []CountrySummaryRecord {
	return slices.Clone(t.rows)
}

// All iterates rows in build order.
func (t SummaryTable) All() iter.Seq[CountrySummaryRecord] {
	return func(yield func(CountrySummaryRecord) bool) {
		for _, r := range t.rows {
			if !yield(r) {
				return
			}
		}
	}
}
