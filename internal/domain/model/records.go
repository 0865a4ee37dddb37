// Package model contains the row types and the immutable tables passed
// between the loader, the pipeline and the HTTP layer.
package model

import (
	"time"

	"github.com/okian/oxdash/internal/domain/types"
)

// DateLayout is the wire form of a record date.
const DateLayout = time.DateOnly

// CountryDayRecord is one country on one day.
type CountryDayRecord struct {
	CountryCode     string
	CountryName     string
	Continent       string
	Date            time.Time // UTC midnight
	ConfirmedCases  int64
	ConfirmedDeaths int64
	StringencyIndex float64 // 0..100
	SchoolClosing   int     // ordinal 0..3
	StayAtHome      int     // ordinal 0..3
}

// DateKey returns the record date as YYYY-MM-DD.
func (r CountryDayRecord) DateKey() string {
	return r.Date.Format(DateLayout)
}

// Value returns the field selected by metric.
func (r CountryDayRecord) Value(metric types.Metric) (float64, error) {
	switch metric {
	case types.MetricConfirmedCases:
		return float64(r.ConfirmedCases), nil
	case types.MetricConfirmedDeaths:
		return float64(r.ConfirmedDeaths), nil
	case types.MetricStringencyIndex:
		return r.StringencyIndex, nil
	case types.MetricSchoolClosing:
		return float64(r.SchoolClosing), nil
	case types.MetricStayAtHomeRequirements:
		return float64(r.StayAtHome), nil
	}
	// Info carries the typed lookup failure.
	_, err := metric.Info()
	return 0, err
}

// CountryPopulationRecord is one country's 2020 population estimate.
type CountryPopulationRecord struct {
	CountryCode    string
	CountryName    string
	Population2020 int64
}

// CountrySummaryRecord is one country's mortality at the reference date.
type CountrySummaryRecord struct {
	CountryCode   string  `json:"country_code"`
	CountryName   string  `json:"country_name"`
	Continent     string  `json:"continent"`
	MortalityRate float64 `json:"mortality_rate"`
}
