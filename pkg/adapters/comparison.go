package adapters

import (
	"slices"

	"github.com/de-tools/perfreport/pkg/models/api"
	"github.com/de-tools/perfreport/pkg/models/domain"
)

func MapComparisonDatasetApiToDomain(ds api.ComparisonDataset) domain.ComparisonDataset {
	return domain.ComparisonDataset{
		Significant: MapComparisonEntriesApiToDomain(ds.Significant),
		Meaningless: MapComparisonEntriesApiToDomain(ds.Meaningless),
		Errors:      slices.Clone(ds.Errors),
		Warnings:    slices.Clone(ds.Warnings),
	}
}

func MapComparisonEntriesApiToDomain(entries []api.ComparisonEntry) []domain.ComparisonEntry {
	out := make([]domain.ComparisonEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, MapComparisonEntryApiToDomain(e))
	}
	return out
}

// MapComparisonEntryApiToDomain leaves Sides nil when neither side is present.
func MapComparisonEntryApiToDomain(e api.ComparisonEntry) domain.ComparisonEntry {
	entry := domain.ComparisonEntry{Name: e.Name, Unit: e.Unit}

	switch {
	case e.Baseline != nil && e.Current != nil:
		entry.Sides = domain.Both{
			Baseline: mapMetricStats(*e.Baseline),
			Current:  mapMetricStats(*e.Current),
		}
	case e.Baseline != nil:
		entry.Sides = domain.BaselineOnly{Baseline: mapMetricStats(*e.Baseline)}
	case e.Current != nil:
		entry.Sides = domain.CurrentOnly{Current: mapMetricStats(*e.Current)}
	}
	return entry
}

func MapReportDocumentsDomainToApi(docs []domain.ReportDocument) api.ReportResponse {
	resp := api.ReportResponse{Documents: make([]api.ReportDocument, 0, len(docs))}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, api.ReportDocument{
			Page:  d.PageIndex,
			Total: d.PageTotal,
			Text:  d.Text,
		})
	}
	return resp
}

func mapMetricStats(s api.MetricStats) domain.MetricStats {
	return domain.MetricStats{
		Mean:    s.Mean,
		Stdev:   s.Stdev,
		Samples: slices.Clone(s.Samples),
	}
}
