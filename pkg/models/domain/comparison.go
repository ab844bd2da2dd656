package domain

// MetricStats holds pre-computed duration statistics for one side of a comparison
type MetricStats struct {
	Mean    float64
	Stdev   float64
	Samples []float64
}

// Sides tells which of baseline/current an entry carries.
// Implemented only by BaselineOnly, CurrentOnly and Both.
type Sides interface {
	sides()
}

type BaselineOnly struct {
	Baseline MetricStats
}

type CurrentOnly struct {
	Current MetricStats
}

type Both struct {
	Baseline MetricStats
	Current  MetricStats
}

func (BaselineOnly) sides() {}
func (CurrentOnly) sides()  {}
func (Both) sides()         {}

// ComparisonEntry is one named test case. A nil Sides marks a malformed entry.
type ComparisonEntry struct {
	Name  string
	Unit  string
	Sides Sides
}

func (e ComparisonEntry) Valid() bool {
	return e.Sides != nil
}

// Baseline returns the baseline stats when the entry has them.
func (e ComparisonEntry) Baseline() (MetricStats, bool) {
	switch s := e.Sides.(type) {
	case BaselineOnly:
		return s.Baseline, true
	case Both:
		return s.Baseline, true
	default:
		return MetricStats{}, false
	}
}

// Current returns the current stats when the entry has them.
func (e ComparisonEntry) Current() (MetricStats, bool) {
	switch s := e.Sides.(type) {
	case CurrentOnly:
		return s.Current, true
	case Both:
		return s.Current, true
	default:
		return MetricStats{}, false
	}
}

// ComparisonDataset is the upstream-classified set of entries to report on
type ComparisonDataset struct {
	Significant []ComparisonEntry
	Meaningless []ComparisonEntry
	Errors      []string
	Warnings    []string
}
