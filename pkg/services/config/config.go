package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/perfreport/pkg/report/markdown"
	"github.com/spf13/viper"
)

const envPrefix = "PERFREPORT"

const (
	SinkDir = "dir"
	SinkS3  = "s3"
	SinkGCS = "gcs"
)

type Config struct {
	OutputDir         string     `mapstructure:"output_dir"`
	Title             string     `mapstructure:"title"`
	ExtraPages        int        `mapstructure:"extra_pages"`
	MaxEntriesPerPage int        `mapstructure:"max_entries_per_page"`
	WriteConcurrency  int        `mapstructure:"write_concurrency"`
	Sink              SinkConfig `mapstructure:"sink"`
}

type SinkConfig struct {
	Type   string `mapstructure:"type"`
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
	Region string `mapstructure:"region"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", ".")
	v.SetDefault("title", markdown.DefaultTitle)
	v.SetDefault("extra_pages", 0)
	v.SetDefault("max_entries_per_page", 0)
	v.SetDefault("write_concurrency", 4)
	v.SetDefault("sink.type", SinkDir)
	v.SetDefault("sink.bucket", "")
	v.SetDefault("sink.prefix", "")
	v.SetDefault("sink.region", "")
}

// LoadConfig reads the optional config file at path. Environment variables
// prefixed with PERFREPORT_ override both defaults and file values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ExtraPages < 0 {
		return fmt.Errorf("extra_pages must not be negative, got %d", c.ExtraPages)
	}
	if c.MaxEntriesPerPage < 0 {
		return fmt.Errorf("max_entries_per_page must not be negative, got %d", c.MaxEntriesPerPage)
	}
	switch c.Sink.Type {
	case SinkDir:
	case SinkS3, SinkGCS:
		if c.Sink.Bucket == "" {
			return fmt.Errorf("sink %q requires a bucket", c.Sink.Type)
		}
	default:
		return fmt.Errorf("unsupported sink type %q", c.Sink.Type)
	}
	return nil
}
