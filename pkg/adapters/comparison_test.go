package adapters

import (
	"testing"

	"github.com/de-tools/perfreport/pkg/models/api"
	"github.com/de-tools/perfreport/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapComparisonEntryApiToDomain(t *testing.T) {
	base := &api.MetricStats{Mean: 100, Stdev: 5, Samples: []float64{99, 101}}
	cur := &api.MetricStats{Mean: 90, Stdev: 4}

	tests := []struct {
		name  string
		entry api.ComparisonEntry
		want  domain.Sides
	}{
		{
			name:  "both",
			entry: api.ComparisonEntry{Name: "A", Unit: "ms", Baseline: base, Current: cur},
			want: domain.Both{
				Baseline: domain.MetricStats{Mean: 100, Stdev: 5, Samples: []float64{99, 101}},
				Current:  domain.MetricStats{Mean: 90, Stdev: 4},
			},
		},
		{
			name:  "baseline only",
			entry: api.ComparisonEntry{Name: "A", Unit: "ms", Baseline: base},
			want:  domain.BaselineOnly{Baseline: domain.MetricStats{Mean: 100, Stdev: 5, Samples: []float64{99, 101}}},
		},
		{
			name:  "current only",
			entry: api.ComparisonEntry{Name: "A", Unit: "ms", Current: cur},
			want:  domain.CurrentOnly{Current: domain.MetricStats{Mean: 90, Stdev: 4}},
		},
		{
			name:  "neither",
			entry: api.ComparisonEntry{Name: "A", Unit: "ms"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapComparisonEntryApiToDomain(tt.entry)

			assert.Equal(t, "A", got.Name)
			assert.Equal(t, "ms", got.Unit)
			assert.Equal(t, tt.want, got.Sides)
			assert.Equal(t, tt.want != nil, got.Valid())
		})
	}
}

func TestMapComparisonDatasetApiToDomain_PreservesOrder(t *testing.T) {
	cur := &api.MetricStats{Mean: 1}
	ds := api.ComparisonDataset{
		Significant: []api.ComparisonEntry{{Name: "s2", Current: cur}, {Name: "s1", Current: cur}},
		Meaningless: []api.ComparisonEntry{{Name: "m1", Current: cur}},
		Errors:      []string{"e1", "e2"},
		Warnings:    []string{"w1"},
	}

	got := MapComparisonDatasetApiToDomain(ds)

	assert.Equal(t, "s2", got.Significant[0].Name)
	assert.Equal(t, "s1", got.Significant[1].Name)
	assert.Len(t, got.Meaningless, 1)
	assert.Equal(t, []string{"e1", "e2"}, got.Errors)
	assert.Equal(t, []string{"w1"}, got.Warnings)
}

func TestMapReportDocumentsDomainToApi(t *testing.T) {
	got := MapReportDocumentsDomainToApi([]domain.ReportDocument{
		{Text: "one", PageIndex: 1, PageTotal: 2},
		{Text: "two", PageIndex: 2, PageTotal: 2},
	})

	assert.Equal(t, []api.ReportDocument{
		{Page: 1, Total: 2, Text: "one"},
		{Page: 2, Total: 2, Text: "two"},
	}, got.Documents)
}
