package export

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const markdownContentType = "text/markdown; charset=utf-8"

// S3PutObjectAPI is the part of the S3 client the sink needs
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads documents to an S3 bucket under a key prefix
type S3Sink struct {
	client S3PutObjectAPI
	bucket string
	prefix string
}

func NewS3Sink(cfg aws.Config, bucket, prefix string) *S3Sink {
	return NewS3SinkWithClient(s3.NewFromConfig(cfg), bucket, prefix)
}

func NewS3SinkWithClient(client S3PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *S3Sink) Put(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(s.prefix, name)
	location := fmt.Sprintf("s3://%s/%s", s.bucket, key)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(markdownContentType),
	})
	if err != nil {
		return location, fmt.Errorf("failed to upload to S3: %w", err)
	}
	return location, nil
}
