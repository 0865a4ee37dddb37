package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/okian/oxdash/internal/domain/model"
)

// OxCGRT ships compact dates; re-exported extracts use ISO.
var dateLayouts = []string{"20060102", time.DateOnly, time.DateTime}

func parseDays(src string, rows [][]string) ([]model.CountryDayRecord, error) {
	h, err := resolveHeader(src, rows[0], dayColumns)
	if err != nil {
		return nil, err
	}

	out := make([]model.CountryDayRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := i + 2
		rec := model.CountryDayRecord{
			CountryCode: h.cell(row, colCountryCode),
			CountryName: h.cell(row, colCountryName),
			Continent:   h.cell(row, colContinent),
		}
		if rec.CountryCode == "" {
			return nil, cellError(src, line, colCountryCode, fmt.Errorf("empty"))
		}
		if rec.Date, err = parseDate(h.cell(row, colDate)); err != nil {
			return nil, cellError(src, line, colDate, err)
		}
		if rec.ConfirmedCases, err = parseCount(h.cell(row, colCases)); err != nil {
			return nil, cellError(src, line, colCases, err)
		}
		if rec.ConfirmedDeaths, err = parseCount(h.cell(row, colDeaths)); err != nil {
			return nil, cellError(src, line, colDeaths, err)
		}
		if rec.StringencyIndex, err = parseBounded(h.cell(row, colStringency), 100); err != nil {
			return nil, cellError(src, line, colStringency, err)
		}
		if rec.SchoolClosing, err = parseOrdinal(h.cell(row, colSchool)); err != nil {
			return nil, cellError(src, line, colSchool, err)
		}
		if rec.StayAtHome, err = parseOrdinal(h.cell(row, colStayAtHome)); err != nil {
			return nil, cellError(src, line, colStayAtHome, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parsePopulations(src string, rows [][]string) ([]model.CountryPopulationRecord, error) {
	h, err := resolveHeader(src, rows[0], populationColumns)
	if err != nil {
		return nil, err
	}

	out := make([]model.CountryPopulationRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := i + 2
		rec := model.CountryPopulationRecord{
			CountryCode: h.cell(row, colCountryCode),
			CountryName: h.cell(row, colCountryName),
		}
		if rec.CountryCode == "" {
			return nil, cellError(src, line, colCountryCode, fmt.Errorf("empty"))
		}
		if rec.Population2020, err = parseCount(h.cell(row, colPopulation)); err != nil {
			return nil, cellError(src, line, colPopulation, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func cellError(src string, line int, c column, err error) error {
	return fmt.Errorf("%w: %s line %d column %q: %w", ErrParse, src, line, c.name, err)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// parseFloat reads a numeric cell; blank and NaN cells read as zero.
func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(v) {
		return 0, nil
	}
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("not finite: %q", s)
	}
	return v, nil
}

// parseCount reads a non-negative whole number. Exports written from float
// columns carry a trailing ".0", which is accepted.
func parseCount(s string) (int64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v != math.Trunc(v) {
		return 0, fmt.Errorf("not a non-negative integer: %q", s)
	}
	return int64(v), nil
}

func parseOrdinal(s string) (int, error) {
	v, err := parseCount(s)
	if err != nil {
		return 0, err
	}
	if v > 3 {
		return 0, fmt.Errorf("ordinal out of range 0..3: %q", s)
	}
	return int(v), nil
}

func parseBounded(s string, upper float64) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > upper {
		return 0, fmt.Errorf("out of range 0..%g: %q", upper, s)
	}
	return v, nil
}
