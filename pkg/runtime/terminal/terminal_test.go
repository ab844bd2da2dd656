package terminal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataset = `{
  "significant": [
    {"name": "A", "unit": "ms",
     "baseline": {"mean": 100, "stdev": 5, "samples": [95, 105]},
     "current": {"mean": 90, "stdev": 4}}
  ],
  "meaningless": [
    {"name": "m1", "unit": "ms", "current": {"mean": 1, "stdev": 0}},
    {"name": "m2", "unit": "ms", "current": {"mean": 2, "stdev": 0}},
    {"name": "m3", "unit": "ms", "current": {"mean": 3, "stdev": 0}},
    {"name": "m4", "unit": "ms", "current": {"mean": 4, "stdev": 0}}
  ],
  "errors": ["build failed"],
  "warnings": [],
  "skipped_tests": ["slow"]
}`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o644))
	return path
}

func TestRender_SingleDocument(t *testing.T) {
	// Given
	input := writeDataset(t)
	outDir := t.TempDir()
	var out bytes.Buffer
	cli := NewCLI(Options{Output: &out})
	cli.SetArgs([]string{"render", "--input", input, "--output-dir", outDir})

	// When
	err := cli.Execute()

	// Then
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(outDir, "output.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# Performance Comparison Report\n"))
	assert.Contains(t, string(content), "1. :x: build failed")
	assert.Contains(t, out.String(), filepath.Join(outDir, "output.md"))
}

func TestRender_ExtraPagesFromFlag(t *testing.T) {
	input := writeDataset(t)
	outDir := t.TempDir()
	cli := NewCLI(Options{Output: new(bytes.Buffer)})
	cli.SetArgs([]string{"render", "-i", input, "-o", outDir, "--extra-pages", "2"})

	require.NoError(t, cli.Execute())

	for _, name := range []string{"output-1.md", "output-2.md", "output-3.md"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
	assert.NoFileExists(t, filepath.Join(outDir, "output.md"))
}

func TestRender_ExplicitZeroExtraPagesWinsOverPageSize(t *testing.T) {
	// Given a config splitting meaningless entries one per page
	input := writeDataset(t)
	outDir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "perfreport.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_entries_per_page: 1\ntitle: Nightly"), 0o644))
	cli := NewCLI(Options{Output: new(bytes.Buffer)})
	cli.SetArgs([]string{"render", "-i", input, "-c", cfgPath, "-o", outDir, "--extra-pages", "0"})

	// When
	require.NoError(t, cli.Execute())

	// Then the explicit zero keeps the report on a single page
	content, err := os.ReadFile(filepath.Join(outDir, "output.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# Nightly\n"))
	assert.NoFileExists(t, filepath.Join(outDir, "output-1.md"))
}

func TestRender_PageSizeFromFlag(t *testing.T) {
	// Given a config title and a page size on the command line
	input := writeDataset(t)
	outDir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "perfreport.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("title: Nightly\noutput_dir: ignored"), 0o644))
	cli := NewCLI(Options{Output: new(bytes.Buffer)})
	cli.SetArgs([]string{"render", "-i", input, "-c", cfgPath, "-o", outDir, "--max-entries-per-page", "1"})

	// When
	require.NoError(t, cli.Execute())

	// Then 4 meaningless entries -> 4 extra pages
	for i := 1; i <= 5; i++ {
		assert.FileExists(t, filepath.Join(outDir, fmt.Sprintf("output-%d.md", i)))
	}
	content, err := os.ReadFile(filepath.Join(outDir, "output-1.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# Nightly (1/5)\n"))
}

func TestRender_MissingInput(t *testing.T) {
	cli := NewCLI(Options{Output: new(bytes.Buffer)})
	cli.SetArgs([]string{"render", "--input", filepath.Join(t.TempDir(), "missing.json")})

	assert.Error(t, cli.Execute())
}

func TestRender_InvalidSink(t *testing.T) {
	cli := NewCLI(Options{Output: new(bytes.Buffer)})
	cli.SetArgs([]string{"render", "--input", writeDataset(t), "--sink", "s3"})

	err := cli.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket")
}
