package types

import "strings"

// Metric selects the indicator plotted on the map. Values match the source
// column names, which is also what the dropdown submits.
type Metric string

const (
	MetricConfirmedCases         Metric = "ConfirmedCases"
	MetricConfirmedDeaths        Metric = "ConfirmedDeaths"
	MetricStringencyIndex        Metric = "StringencyIndex"
	MetricSchoolClosing          Metric = "School closing"
	MetricStayAtHomeRequirements Metric = "Stay at home requirements"
)

// MetricInfo is one row of the static metric table.
type MetricInfo struct {
	Metric Metric `json:"value"`
	Key    string `json:"key"`
	Label  string `json:"label"`
	Help   string `json:"help"`
}

var metricTable = []MetricInfo{
	{
		Metric: MetricConfirmedCases,
		Key:    "ConfirmedCases",
		Label:  "Confirmed COVID-19 Cases",
		Help: "Displays national figures for number of confirmed infections. It should be borne in mind that " +
			"different governments have different testing policies.",
	},
	{
		Metric: MetricConfirmedDeaths,
		Key:    "ConfirmedDeaths",
		Label:  "Confirmed COVID-19 Deaths",
		Help: "Displays national figures for deaths from COVID-19. It should be borne in mind that different " +
			"governments have different ways of counting official death statistics. ",
	},
	{
		Metric: MetricStringencyIndex,
		Key:    "StringencyIndex",
		Label:  "Government Action/Interventions",
		Help: "The Oxford University COVID-19 tracking team combine a wide range of indicators, such " +
			"as school closure, cancellation of large gatherings and closing public transport and combine " +
			"all of these in a single index reflecting individual government responses to coronavirus which " +
			"ranges from 0 to 100 (percent). For more details click on the link below.",
	},
	{
		Metric: MetricSchoolClosing,
		Key:    "SchoolClosing",
		Label:  "School and College Closures",
		Help: "This displays School, College and University closures on an ordinal scale from 0 to 3 where 0 " +
			"indicates no closures, 1 indicates that closure is recommended but not mandated, 2 requires " +
			"closure of some schools, eg high schools but not primary and 3 requires closure of all schools.",
	},
	{
		Metric: MetricStayAtHomeRequirements,
		Key:    "StayAtHomeRequirements",
		Label:  `Stay at home measures ("Lockdown")`,
		Help: "This displays work closures on an ordinal scale from 0 to 3 where 0 indicates no closures, 1 indicates " +
			"that closure is recommended but not mandated, 2 requires closure of some sectors or categories of " +
			"worker and 3 requires closure of all but essential workplaces (e.g. grocery stores, doctors)",
	},
}

// Metrics returns the static metric table in dropdown order.
func Metrics() []MetricInfo {
	out := make([]MetricInfo, len(metricTable))
	copy(out, metricTable)
	return out
}

// ParseMetric accepts either the column value ("School closing") or the
// identifier form ("SchoolClosing"). Matching is exact; nothing defaults.
func ParseMetric(s string) (Metric, error) {
	key := strings.TrimSpace(s)
	for _, info := range metricTable {
		if key == string(info.Metric) || key == info.Key {
			return info.Metric, nil
		}
	}
	return "", unknownMetric(s)
}

// Info looks the metric up in the static table.
func (m Metric) Info() (MetricInfo, error) {
	for _, info := range metricTable {
		if info.Metric == m {
			return info, nil
		}
	}
	return MetricInfo{}, unknownMetric(string(m))
}

// Label returns the human-readable label.
func (m Metric) Label() (string, error) {
	info, err := m.Info()
	if err != nil {
		return "", err
	}
	return info.Label, nil
}

// Help returns the context help text.
func (m Metric) Help() (string, error) {
	info, err := m.Info()
	if err != nil {
		return "", err
	}
	return info.Help, nil
}

// IsCount reports whether the metric is a case or death count. Counts are
// drawn as bubbles sized by magnitude; everything else is a choropleth.
func (m Metric) IsCount() bool {
	return m == MetricConfirmedCases || m == MetricConfirmedDeaths
}

// Title builds the main chart heading, e.g.
// "Showing Government Action/Interventions for Europe".
func Title(scope Scope, metric Metric) (string, error) {
	label, err := metric.Label()
	if err != nil {
		return "", err
	}
	return "Showing " + label + " for " + scope.Title(), nil
}

// TrendTitle builds the thumbnail heading.
func TrendTitle(metric Metric) (string, error) {
	label, err := metric.Label()
	if err != nil {
		return "", err
	}
	return "Thumbnail shows " + label + " for the five countries with the highest deaths per capita over the period", nil
}
