package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/perfreport/pkg/models/api"
	"github.com/de-tools/perfreport/pkg/runtime/terminal/export"
	"github.com/de-tools/perfreport/pkg/services/config"
	"github.com/de-tools/perfreport/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type RenderCmd struct {
	inputPath         string
	configPath        string
	outputDir         string
	extraPages        int
	maxEntriesPerPage int
	sinkType          string
	bucket            string
	prefix            string
	output            io.Writer
}

func NewRenderCmd(output io.Writer) *cobra.Command {
	rc := &RenderCmd{output: output}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a comparison dataset into Markdown reports",
		RunE:  rc.run,
	}

	cmd.Flags().StringVarP(&rc.inputPath, "input", "i", "", "Path to the comparison dataset (JSON)")
	cmd.Flags().StringVarP(&rc.configPath, "config", "c", "", "Path to the report configuration file")
	cmd.Flags().StringVarP(&rc.outputDir, "output-dir", "o", "", "Directory to write reports into")
	cmd.Flags().IntVar(&rc.extraPages, "extra-pages", 0, "Number of pages for meaningless changes")
	cmd.Flags().IntVar(&rc.maxEntriesPerPage, "max-entries-per-page", 0, "Derive extra pages from a page size")
	cmd.Flags().StringVar(&rc.sinkType, "sink", "", "Output sink: dir, s3 or gcs")
	cmd.Flags().StringVar(&rc.bucket, "bucket", "", "Bucket for the s3 and gcs sinks")
	cmd.Flags().StringVar(&rc.prefix, "prefix", "", "Object key prefix for the s3 and gcs sinks")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(rc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	rc.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	dataset, err := readDataset(rc.inputPath)
	if err != nil {
		return err
	}

	sink, err := report.NewSink(ctx, cfg)
	if err != nil {
		return err
	}
	writer := export.NewWriter(sink, export.WriterConfig{Concurrency: cfg.WriteConcurrency})
	svc := report.NewService(report.Settings{
		Title:             cfg.Title,
		ExtraPages:        cfg.ExtraPages,
		MaxEntriesPerPage: cfg.MaxEntriesPerPage,
	}, writer)

	results, err := svc.Publish(ctx, dataset)
	for _, r := range results {
		if r.Err == nil {
			_, _ = fmt.Fprintln(rc.output, r.Location)
		}
	}
	return err
}

// applyFlags lets explicitly set flags win over file and env values
func (rc *RenderCmd) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.OutputDir = rc.outputDir
	}
	if flags.Changed("extra-pages") {
		cfg.ExtraPages = rc.extraPages
		if !flags.Changed("max-entries-per-page") {
			cfg.MaxEntriesPerPage = 0
		}
	}
	if flags.Changed("max-entries-per-page") {
		cfg.MaxEntriesPerPage = rc.maxEntriesPerPage
	}
	if flags.Changed("sink") {
		cfg.Sink.Type = rc.sinkType
	}
	if flags.Changed("bucket") {
		cfg.Sink.Bucket = rc.bucket
	}
	if flags.Changed("prefix") {
		cfg.Sink.Prefix = rc.prefix
	}
}

func readDataset(path string) (api.ComparisonDataset, error) {
	var dataset api.ComparisonDataset

	f, err := os.Open(path)
	if err != nil {
		return dataset, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&dataset); err != nil {
		return dataset, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}
	return dataset, nil
}
