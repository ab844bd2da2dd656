package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Sink stores one named document and returns where it ended up.
// The location should be meaningful even when err is non-nil.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) (location string, err error)
}

// DirSink writes documents as files into a local directory
type DirSink struct {
	dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

func (s *DirSink) Put(ctx context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if err := ctx.Err(); err != nil {
		return path, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, err
	}
	return path, nil
}
