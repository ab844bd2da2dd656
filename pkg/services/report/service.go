package report

import (
	"context"
	"fmt"

	"github.com/de-tools/perfreport/pkg/adapters"
	"github.com/de-tools/perfreport/pkg/models/api"
	"github.com/de-tools/perfreport/pkg/models/domain"
	"github.com/de-tools/perfreport/pkg/report/markdown"
	"github.com/de-tools/perfreport/pkg/runtime/terminal/export"
	"github.com/rs/zerolog"
)

// Settings control how a dataset is paginated
type Settings struct {
	Title             string
	ExtraPages        int
	MaxEntriesPerPage int
}

// ExtraPagesFor returns the explicit page count when set, otherwise enough
// pages to keep at most MaxEntriesPerPage meaningless entries on each.
func (s Settings) ExtraPagesFor(ds domain.ComparisonDataset) int {
	if s.ExtraPages > 0 || s.MaxEntriesPerPage <= 0 {
		return s.ExtraPages
	}
	return markdown.PageCount(len(ds.Meaningless), s.MaxEntriesPerPage)
}

type Service interface {
	Render(ctx context.Context, dataset api.ComparisonDataset) []domain.ReportDocument
	Publish(ctx context.Context, dataset api.ComparisonDataset) ([]export.WriteResult, error)
}

type service struct {
	settings Settings
	writer   *export.Writer
}

func NewService(settings Settings, writer *export.Writer) Service {
	return &service{
		settings: settings,
		writer:   writer,
	}
}

func (s *service) Render(ctx context.Context, dataset api.ComparisonDataset) []domain.ReportDocument {
	logger := zerolog.Ctx(ctx)
	options := markdown.DefaultOptions()
	if s.settings.Title != "" {
		options.Title = s.settings.Title
	}
	renderer := markdown.NewRenderer(*logger, options)

	ds := adapters.MapComparisonDatasetApiToDomain(dataset)
	return renderer.BuildReport(ds, dataset.SkippedTests, s.settings.ExtraPagesFor(ds))
}

func (s *service) Publish(ctx context.Context, dataset api.ComparisonDataset) ([]export.WriteResult, error) {
	if s.writer == nil {
		return nil, fmt.Errorf("report service has no writer configured")
	}

	docs := s.Render(ctx, dataset)
	results, err := s.writer.Write(ctx, docs)
	if err != nil {
		return results, fmt.Errorf("failed to write report: %w", err)
	}
	return results, nil
}
