package markdown

import (
	"github.com/de-tools/perfreport/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	// NoEntriesPlaceholder stands in for a summary table with nothing to show
	NoEntriesPlaceholder = "_There are no entries._"

	summaryLabel = "Show entries"
	detailsLabel = "Show details"
)

var (
	summaryHeader = []string{"Test", "Duration"}
	detailsHeader = []string{"Test", "Details"}
)

// Renderer builds report sections and documents. Malformed entries are
// skipped and reported through the logger.
type Renderer struct {
	logger  zerolog.Logger
	options Options
}

// Options tune the rendered documents
type Options struct {
	Title string
}

// DefaultTitle heads every page when no title is configured.
const DefaultTitle = "Performance Comparison Report"

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Title: DefaultTitle}
}

// NewRenderer falls back to DefaultTitle when options leave the title empty.
func NewRenderer(logger zerolog.Logger, options Options) *Renderer {
	if options.Title == "" {
		options.Title = DefaultTitle
	}
	return &Renderer{
		logger:  logger,
		options: options,
	}
}

// SummarySection renders a table with one summary row per entry, optionally
// collapsed behind a disclosure element.
func (r *Renderer) SummarySection(entries []domain.ComparisonEntry, collapse bool) string {
	if len(entries) == 0 {
		return NoEntriesPlaceholder
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range r.validEntries(entries) {
		rows = append(rows, []string{entry.Name, SummaryCell(entry)})
	}

	table := RenderTable(summaryHeader, rows)
	if !collapse {
		return table
	}
	return collapsible(summaryLabel, table)
}

// DetailSections partitions entries into n collapsible detail blocks.
func (r *Renderer) DetailSections(entries []domain.ComparisonEntry, n int) []string {
	if len(entries) == 0 || n <= 0 {
		return nil
	}

	sections := make([]string, 0, n)
	for _, slice := range Partition(entries, n) {
		rows := make([][]string, 0, len(slice))
		for _, entry := range r.validEntries(slice) {
			rows = append(rows, []string{entry.Name, DetailBlock(entry)})
		}
		sections = append(sections, collapsible(detailsLabel, RenderTable(detailsHeader, rows)))
	}
	return sections
}

func (r *Renderer) validEntries(entries []domain.ComparisonEntry) []domain.ComparisonEntry {
	valid := make([]domain.ComparisonEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.Valid() {
			r.logger.Warn().
				Str("entry", entry.Name).
				Msg("skipping entry without baseline or current stats")
			continue
		}
		valid = append(valid, entry)
	}
	return valid
}

func collapsible(summary, body string) string {
	return "<details>\n<summary>" + summary + "</summary>\n\n" + body + "\n</details>"
}
