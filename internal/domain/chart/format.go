package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/okian/oxdash/internal/domain/types"
)

// hoverText renders "<name><br><label>: <value>" with grouped thousands.
func hoverText(p *message.Printer, name, label string, metric types.Metric, v float64) string {
	return name + "<br>" + label + ": " + formatValue(p, metric, v)
}

func formatValue(p *message.Printer, metric types.Metric, v float64) string {
	if metric == types.MetricStringencyIndex {
		return p.Sprintf("%.2f", v)
	}
	return p.Sprintf("%d", int64(v))
}

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}
