// Package s3 implements the image-hosting collaborator on top of any
// S3-compatible object store (AWS S3, MinIO).
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/lostfound/community-api/internal/core/ports"
)

// Config captures the settings for the object store connection.
type Config struct {
	Endpoint  string // base endpoint, e.g. http://localhost:9000 for MinIO
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// PublicBaseURL is the externally reachable prefix returned to clients.
	// Defaults to Endpoint when empty.
	PublicBaseURL string
}

// ImageStore uploads images to a bucket and returns stable public URLs.
type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewImageStore builds the S3 client with static credentials and the custom
// base endpoint.
func NewImageStore(ctx context.Context, cfg Config) (*ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = cfg.Endpoint
	}

	return &ImageStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload stores the payload under a unique key inside the folder hint and
// returns the retrievable URL. Keys are date-sharded so buckets stay
// browsable.
func (s *ImageStore) Upload(ctx context.Context, input ports.UploadInput) (string, error) {
	key := objectKey(input.Folder)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(input.Data),
		ContentType: aws.String(input.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key), nil
}

func objectKey(folder string) string {
	now := time.Now().UTC()
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "uploads"
	}
	return fmt.Sprintf("%s/%d/%02d/%s", folder, now.Year(), now.Month(), uuid.New())
}
