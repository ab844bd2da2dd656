package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/perfreport/pkg/report/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "perfreport.yaml")
	content := `output_dir: "reports"
title: "Nightly"
extra_pages: 2
max_entries_per_page: 50
write_concurrency: 8
sink:
  type: s3
  bucket: perf-reports
  prefix: nightly
  region: eu-west-1`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := LoadConfig(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "reports", cfg.OutputDir)
	assert.Equal(t, "Nightly", cfg.Title)
	assert.Equal(t, 2, cfg.ExtraPages)
	assert.Equal(t, 50, cfg.MaxEntriesPerPage)
	assert.Equal(t, 8, cfg.WriteConcurrency)
	assert.Equal(t, SinkConfig{Type: SinkS3, Bucket: "perf-reports", Prefix: "nightly", Region: "eu-west-1"}, cfg.Sink)
}

func TestLoadConfig_NoFile_UsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, markdown.DefaultTitle, cfg.Title)
	assert.Equal(t, 0, cfg.ExtraPages)
	assert.Equal(t, 4, cfg.WriteConcurrency)
	assert.Equal(t, SinkDir, cfg.Sink.Type)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "perfreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: from-file\nextra_pages: 1"), 0o644))
	t.Setenv("PERFREPORT_OUTPUT_DIR", "from-env")
	t.Setenv("PERFREPORT_SINK_TYPE", "gcs")
	t.Setenv("PERFREPORT_SINK_BUCKET", "bucket")

	// When
	cfg, err := LoadConfig(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OutputDir)
	assert.Equal(t, 1, cfg.ExtraPages)
	assert.Equal(t, SinkGCS, cfg.Sink.Type)
	assert.Equal(t, "bucket", cfg.Sink.Bucket)
}

func TestLoadConfig_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: a: b: c"), 0o644))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestLoadConfig_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Config{Sink: SinkConfig{Type: SinkDir}}},
		{name: "negative pages", cfg: Config{ExtraPages: -1, Sink: SinkConfig{Type: SinkDir}}, wantErr: true},
		{name: "negative page size", cfg: Config{MaxEntriesPerPage: -1, Sink: SinkConfig{Type: SinkDir}}, wantErr: true},
		{name: "s3 without bucket", cfg: Config{Sink: SinkConfig{Type: SinkS3}}, wantErr: true},
		{name: "gcs with bucket", cfg: Config{Sink: SinkConfig{Type: SinkGCS, Bucket: "b"}}},
		{name: "unknown sink", cfg: Config{Sink: SinkConfig{Type: "ftp"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
