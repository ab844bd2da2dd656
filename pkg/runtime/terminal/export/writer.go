package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/perfreport/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	SingleFileName      = "output.md"
	defaultConcurrency  = 4
	numberedFilePattern = "output-%d.md"
)

var ErrNoDocuments = errors.New("no documents to write")

// WriteError is a failed write of one document
type WriteError struct {
	Name     string
	Location string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Location, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteResult is the outcome of writing one document
type WriteResult struct {
	Name     string
	Location string
	Err      error
}

type WriterConfig struct {
	// Concurrency caps in-flight writes; values <= 0 fall back to the default
	Concurrency int
}

func DefaultWriterConfig() WriterConfig {
	return WriterConfig{Concurrency: defaultConcurrency}
}

// Writer persists report documents to a Sink
type Writer struct {
	sink   Sink
	config WriterConfig
}

func NewWriter(sink Sink, config WriterConfig) *Writer {
	if config.Concurrency <= 0 {
		config.Concurrency = defaultConcurrency
	}
	return &Writer{
		sink:   sink,
		config: config,
	}
}

// FileNames returns output.md for a single document and output-1.md..output-n.md otherwise.
func FileNames(n int) []string {
	if n == 1 {
		return []string{SingleFileName}
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf(numberedFilePattern, i+1)
	}
	return names
}

// Write stores every document independently and concurrently. A failing
// write does not stop the others; the returned error joins all failures.
func (w *Writer) Write(ctx context.Context, documents []domain.ReportDocument) ([]WriteResult, error) {
	if len(documents) == 0 {
		return nil, ErrNoDocuments
	}

	logger := zerolog.Ctx(ctx)
	names := FileNames(len(documents))
	results := make([]WriteResult, len(documents))

	var g errgroup.Group
	g.SetLimit(w.config.Concurrency)
	for i, doc := range documents {
		g.Go(func() error {
			location, err := w.sink.Put(ctx, names[i], []byte(doc.Text))
			results[i] = WriteResult{Name: names[i], Location: location, Err: err}
			if err != nil {
				logger.Error().
					Err(err).
					Str("path", location).
					Str("page", doc.Label()).
					Msg("failed to write report")
				return nil
			}
			logger.Info().
				Str("path", location).
				Str("page", doc.Label()).
				Msg("report written")
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, &WriteError{Name: r.Name, Location: r.Location, Err: r.Err})
		}
	}
	return results, errors.Join(errs...)
}
