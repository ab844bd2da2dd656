package report

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/de-tools/perfreport/pkg/runtime/terminal/export"
	"github.com/de-tools/perfreport/pkg/services/config"
)

// NewSink builds the output sink selected by the configuration
func NewSink(ctx context.Context, cfg *config.Config) (export.Sink, error) {
	switch cfg.Sink.Type {
	case config.SinkDir, "":
		return export.NewDirSink(cfg.OutputDir), nil
	case config.SinkS3:
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Sink.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Sink.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return export.NewS3Sink(awsCfg, cfg.Sink.Bucket, cfg.Sink.Prefix), nil
	case config.SinkGCS:
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCS client: %w", err)
		}
		return export.NewGCSSink(client, cfg.Sink.Bucket, cfg.Sink.Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported sink type %q", cfg.Sink.Type)
	}
}
