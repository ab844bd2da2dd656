package api

type MetricStats struct {
	Mean    float64   `json:"mean"`
	Stdev   float64   `json:"stdev"`
	Samples []float64 `json:"samples,omitempty"`
}

type ComparisonEntry struct {
	Name     string       `json:"name"`
	Unit     string       `json:"unit"`
	Baseline *MetricStats `json:"baseline,omitempty"`
	Current  *MetricStats `json:"current,omitempty"`
}

// ComparisonDataset is the wire form of a report request
type ComparisonDataset struct {
	Significant  []ComparisonEntry `json:"significant"`
	Meaningless  []ComparisonEntry `json:"meaningless"`
	Errors       []string          `json:"errors"`
	Warnings     []string          `json:"warnings"`
	SkippedTests []string          `json:"skipped_tests"`
}

type ReportDocument struct {
	Page  int    `json:"page"`
	Total int    `json:"total"`
	Text  string `json:"text"`
}

type ReportResponse struct {
	Documents []ReportDocument `json:"documents"`
}
