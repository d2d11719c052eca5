package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/pkg/config"
)

type objectGetter interface {
	GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
}

// S3Source reads the catalog JSON from an S3-compatible bucket.
type S3Source struct {
	client objectGetter
	bucket string
	key    string
}

// NewS3Source creates a session for cfg. A custom endpoint switches to
// path-style addressing for MinIO and similar stores.
func NewS3Source(cfg config.S3Config) (*S3Source, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, fmt.Errorf("catalog s3 source requires bucket and key")
	}

	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}
	return newS3Source(s3.New(sess), cfg.Bucket, cfg.Key), nil
}

func newS3Source(client objectGetter, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

// Name implements Source.
func (s *S3Source) Name() string { return config.CatalogSourceS3 }

// Load implements Source.
func (s *S3Source) Load(ctx context.Context) ([]models.Scholarship, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog object: %w", err)
	}
	return Decode(payload)
}
