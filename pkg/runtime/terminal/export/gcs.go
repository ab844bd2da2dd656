package export

import (
	"context"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
)

// ObjectWriterFunc opens a writer for bucket/object
type ObjectWriterFunc func(ctx context.Context, bucket, object string) io.WriteCloser

// GCSSink uploads documents to a Cloud Storage bucket under a prefix
type GCSSink struct {
	open   ObjectWriterFunc
	bucket string
	prefix string
}

func NewGCSSink(client *storage.Client, bucket, prefix string) *GCSSink {
	return NewGCSSinkWithWriter(func(ctx context.Context, bucket, object string) io.WriteCloser {
		w := client.Bucket(bucket).Object(object).NewWriter(ctx)
		w.ContentType = markdownContentType
		return w
	}, bucket, prefix)
}

func NewGCSSinkWithWriter(open ObjectWriterFunc, bucket, prefix string) *GCSSink {
	return &GCSSink{
		open:   open,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *GCSSink) Put(ctx context.Context, name string, data []byte) (string, error) {
	object := path.Join(s.prefix, name)
	location := fmt.Sprintf("gs://%s/%s", s.bucket, object)

	w := s.open(ctx, s.bucket, object)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return location, fmt.Errorf("failed to upload to GCS: %w", err)
	}
	// the object is only committed on Close
	if err := w.Close(); err != nil {
		return location, fmt.Errorf("failed to finalize GCS object: %w", err)
	}
	return location, nil
}
