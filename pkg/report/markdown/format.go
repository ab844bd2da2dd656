package markdown

import (
	"fmt"
	"math"

	"github.com/de-tools/perfreport/pkg/models/domain"
)

// NotAvailable is rendered in place of any value that cannot be computed,
// such as non-finite numbers or a percent change from a zero baseline.
const NotAvailable = "N/A"

// FormatMetric renders a value with adaptive precision followed by its unit.
func FormatMetric(value float64, unit string) string {
	s := formatNumber(value)
	if s == NotAvailable || unit == "" {
		return s
	}
	return s + " " + unit
}

// FormatPercent renders a ratio as a signed percentage, e.g. 0.034 -> "+3.4%".
func FormatPercent(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return NotAvailable
	}
	pct := ratio * 100
	if pct == 0 {
		// normalises -0
		pct = 0
	}
	return fmt.Sprintf("%+.1f%%", pct)
}

// FormatMetricDiffChange renders "baseline → current (delta)".
// The delta is N/A whenever the baseline mean is zero.
func FormatMetricDiffChange(baseline, current domain.MetricStats, unit string) string {
	delta := NotAvailable
	if baseline.Mean != 0 {
		delta = FormatPercent((current.Mean - baseline.Mean) / baseline.Mean)
	}
	return fmt.Sprintf("%s → %s (%s)",
		FormatMetric(baseline.Mean, unit),
		FormatMetric(current.Mean, unit),
		delta)
}

func formatRatio(value, total float64) string {
	if total == 0 {
		return NotAvailable
	}
	ratio := value / total
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", math.Abs(ratio)*100)
}

func formatNumber(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NotAvailable
	}

	abs := math.Abs(value)
	switch {
	case abs == 0:
		return "0"
	case abs >= 100:
		return fmt.Sprintf("%.0f", value)
	case abs >= 1:
		return fmt.Sprintf("%.1f", value)
	default:
		return fmt.Sprintf("%.3g", value)
	}
}
