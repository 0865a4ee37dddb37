package source

import (
	"fmt"
	"strings"
)

// column names a required header and the alternative spellings seen in
// other OxCGRT and World Bank extracts.
type column struct {
	name    string
	aliases []string
}

var (
	colCountryCode = column{name: "CountryCode", aliases: []string{"Country Code"}}
	colCountryName = column{name: "CountryName", aliases: []string{"Country Name"}}
	colContinent   = column{name: "Continent_Name"}
	colDate        = column{name: "Date"}
	colCases       = column{name: "ConfirmedCases"}
	colDeaths      = column{name: "ConfirmedDeaths"}
	colStringency  = column{name: "StringencyIndex"}
	colSchool      = column{name: "School closing", aliases: []string{"C1_School closing"}}
	colStayAtHome  = column{name: "Stay at home requirements", aliases: []string{"C6_Stay at home requirements"}}
	colPopulation  = column{name: "Population2020", aliases: []string{"2020", "population_2020"}}
)

var dayColumns = []column{
	colCountryCode, colCountryName, colContinent, colDate,
	colCases, colDeaths, colStringency, colSchool, colStayAtHome,
}

var populationColumns = []column{colCountryCode, colCountryName, colPopulation}

// header maps resolved column names to cell positions.
type header map[string]int

// resolveHeader finds every wanted column in row. Header cells are trimmed
// and a UTF-8 BOM on the first cell is ignored.
func resolveHeader(src string, row []string, want []column) (header, error) {
	pos := make(map[string]int, len(row))
	for i, cell := range row {
		cell = strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff"))
		if _, dup := pos[cell]; !dup {
			pos[cell] = i
		}
	}

	h := make(header, len(want))
	var missing []string
	for _, c := range want {
		idx, ok := pos[c.name]
		for _, a := range c.aliases {
			if ok {
				break
			}
			idx, ok = pos[a]
		}
		if !ok {
			missing = append(missing, c.name)
			continue
		}
		h[c.name] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", ErrMissingColumn, src, strings.Join(missing, ", "))
	}
	return h, nil
}

// cell returns the trimmed value of c in row; short rows read as blank.
func (h header) cell(row []string, c column) string {
	i := h[c.name]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
