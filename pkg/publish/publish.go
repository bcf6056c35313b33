// Package publish uploads finished renders to S3 compatible storage.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// ErrNotConfigured is returned when S3 settings are incomplete
var ErrNotConfigured = errors.New("s3 publisher not configured")

// Publisher stores encoded images under a key
type Publisher interface {
	Publish(ctx context.Context, key string, data []byte, contentType string) error
}

// S3Config holds the connection settings for an S3 compatible bucket
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string // Prepended to every key
}

// Enabled reports whether a bucket is configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// S3Publisher uploads objects with public-read ACL
type S3Publisher struct {
	client s3iface.S3API
	config S3Config
	logger core.Logger
}

// NewS3Publisher creates a path-style S3 client with static credentials
func NewS3Publisher(cfg S3Config, logger core.Logger) (*S3Publisher, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return newS3Publisher(s3.New(sess), cfg, logger), nil
}

func newS3Publisher(client s3iface.S3API, cfg S3Config, logger core.Logger) *S3Publisher {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &S3Publisher{client: client, config: cfg, logger: logger}
}

// Key joins the configured prefix and name
func (p *S3Publisher) Key(name string) string {
	if p.config.Prefix == "" {
		return name
	}
	return path.Join(p.config.Prefix, name)
}

// Publish uploads data under the prefixed key
func (p *S3Publisher) Publish(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key = p.Key(key)
	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	return nil
}
