package markdown

import (
	"fmt"
	"strings"

	"github.com/de-tools/perfreport/pkg/models/domain"
)

const (
	errorMarker   = ":x:"
	warningMarker = ":warning:"
)

// BuildReport renders the dataset into 1+extraPages documents. The first page
// carries banners and significant changes; the extra pages share the
// meaningless changes between them.
func (r *Renderer) BuildReport(
	dataset domain.ComparisonDataset,
	skipped []string,
	extraPages int,
) []domain.ReportDocument {
	extraPages = max(extraPages, 0)
	total := extraPages + 1

	docs := make([]domain.ReportDocument, 0, total)
	docs = append(docs, domain.ReportDocument{
		Text:      r.firstPage(dataset, skipped, total).String(),
		PageIndex: 1,
		PageTotal: total,
	})

	details := r.DetailSections(dataset.Meaningless, extraPages)
	for j := 1; j <= extraPages; j++ {
		page := new(document).
			heading(1, r.title(j+1, total)).
			heading(2, fmt.Sprintf("Meaningless Changes (%d/%d)", j, extraPages)).
			raw(r.SummarySection(dataset.Meaningless, true))
		if len(details) >= j {
			page.raw(details[j-1])
		}
		docs = append(docs, domain.ReportDocument{
			Text:      page.String(),
			PageIndex: j + 1,
			PageTotal: total,
		})
	}

	r.logger.Debug().
		Int("pages", total).
		Int("significant", len(dataset.Significant)).
		Int("meaningless", len(dataset.Meaningless)).
		Msg("report built")

	return docs
}

func (r *Renderer) firstPage(dataset domain.ComparisonDataset, skipped []string, total int) *document {
	page := new(document).heading(1, r.title(1, total))

	if len(dataset.Errors) > 0 {
		page.heading(2, "Errors").list(errorMarker, dataset.Errors)
	}
	if len(dataset.Warnings) > 0 {
		page.heading(2, "Warnings").list(warningMarker, dataset.Warnings)
	}
	if len(skipped) > 0 {
		page.banner("Skipped tests: " + strings.Join(skipped, ", "))
	}

	page.heading(2, "Significant Changes").
		raw(r.SummarySection(dataset.Significant, false))
	if details := r.DetailSections(dataset.Significant, 1); len(details) > 0 {
		page.raw(details[0])
	}
	return page
}

func (r *Renderer) title(page, total int) string {
	if total == 1 {
		return r.options.Title
	}
	return fmt.Sprintf("%s (%d/%d)", r.options.Title, page, total)
}
