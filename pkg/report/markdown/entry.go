package markdown

import (
	"strings"

	"github.com/de-tools/perfreport/pkg/models/domain"
)

// SummaryCell renders the one-line duration cell for an entry.
func SummaryCell(entry domain.ComparisonEntry) string {
	switch s := entry.Sides.(type) {
	case domain.Both:
		return FormatMetricDiffChange(s.Baseline, s.Current, entry.Unit)
	case domain.BaselineOnly:
		return FormatMetric(s.Baseline.Mean, entry.Unit)
	case domain.CurrentOnly:
		return FormatMetric(s.Current.Mean, entry.Unit)
	default:
		return ""
	}
}

// DetailBlock renders mean, stdev, relative stdev and raw runs for every side present.
func DetailBlock(entry domain.ComparisonEntry) string {
	var blocks []string
	if baseline, ok := entry.Baseline(); ok {
		blocks = append(blocks, statsBlock("Baseline", baseline, entry.Unit))
	}
	if current, ok := entry.Current(); ok {
		blocks = append(blocks, statsBlock("Current", current, entry.Unit))
	}
	return strings.Join(blocks, "\n\n")
}

func statsBlock(label string, stats domain.MetricStats, unit string) string {
	lines := []string{
		"**" + label + "**",
		"Mean: " + FormatMetric(stats.Mean, unit),
		"Stdev: " + FormatMetric(stats.Stdev, unit),
		"Relative stdev: " + formatRatio(stats.Stdev, stats.Mean),
	}
	if len(stats.Samples) > 0 {
		runs := make([]string, len(stats.Samples))
		for i, v := range stats.Samples {
			runs[i] = formatNumber(v)
		}
		lines = append(lines, "Runs: "+strings.Join(runs, " "))
	}
	return strings.Join(lines, "\n")
}
