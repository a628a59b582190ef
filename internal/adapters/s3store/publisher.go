// Package s3store publishes finished reports to an S3-compatible bucket
// (AWS S3, Cloudflare R2, MinIO).
package s3store

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bft-labs/countryreport/internal/domain"
	"github.com/bft-labs/countryreport/internal/ports"
)

const contentType = "text/plain; charset=utf-8"

// Client is the subset of *s3.Client used by the publisher.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config selects the bucket and, optionally, a custom endpoint and static
// credentials. Without credentials the default AWS credential chain is used.
type Config struct {
	Bucket          string
	Key             string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

var _ ports.ReportPublisher = (*Publisher)(nil)

// Publisher implements ports.ReportPublisher with a single PutObject call.
type Publisher struct {
	client Client
	bucket string
	key    string
	logger ports.Logger
}

// NewPublisher builds an S3 client from cfg.
func NewPublisher(ctx context.Context, cfg Config, logger ports.Logger) (*Publisher, error) {
	region := cfg.Region
	if region == "" && cfg.Endpoint != "" {
		region = "auto"
	}

	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewPublisherWithClient(client, cfg.Bucket, cfg.Key, logger), nil
}

// NewPublisherWithClient wraps an existing client.
func NewPublisherWithClient(client Client, bucket, key string, logger ports.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, key: key, logger: logger}
}

// Publish uploads the file at path under the configured key.
func (p *Publisher) Publish(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &domain.OpError{Op: "report.publish", Kind: domain.KindIO, Path: path, Err: err}
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(p.key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return &domain.OpError{
			Op:   "report.publish",
			Kind: domain.KindIO,
			Path: path,
			Err:  fmt.Errorf("put s3://%s/%s: %w", p.bucket, p.key, err),
		}
	}

	p.logger.Info("report published", ports.RunFields(ctx,
		ports.String("bucket", p.bucket),
		ports.String("key", p.key),
		ports.Int("bytes", len(data)),
	)...)
	return nil
}
