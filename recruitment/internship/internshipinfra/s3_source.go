package internshipinfra

import (
	"context"
	"fmt"
	"io"

	"github.com/Abraxas-365/internmatch/pkg/errx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3GetObjectAPI is the slice of the S3 client used to fetch CSV uploads
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3CSVSource reads internship CSV files stored in a bucket
type S3CSVSource struct {
	client S3GetObjectAPI
	bucket string
}

// NewS3CSVSource creates a CSV source bound to bucket
func NewS3CSVSource(client S3GetObjectAPI, bucket string) *S3CSVSource {
	return &S3CSVSource{
		client: client,
		bucket: bucket,
	}
}

// Open returns the object body. The caller must close it.
func (s *S3CSVSource) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.bucket == "" {
		return nil, errx.New("no S3 bucket configured", errx.TypeValidation)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errx.Wrap(fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err), "failed to fetch CSV from S3", errx.TypeExternal)
	}

	return out.Body, nil
}
