// Package media turns stored blob references (project images, featured
// images) into URLs a browser can fetch.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Samandar-Komilov/voidpdev/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// DefaultURLTTL is how long presigned URLs stay valid.
const DefaultURLTTL = time.Hour

type Resolver interface {
	// URL returns a fetchable URL for key, or "" for an empty key.
	URL(ctx context.Context, key string) (string, error)
}

func isAbsolute(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}

// StaticResolver serves blobs from a fixed base URL such as a CDN or the
// site's own /media/ path.
type StaticResolver struct {
	BaseURL string
}

func (r StaticResolver) URL(_ context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || isAbsolute(key) {
		return key, nil
	}
	if r.BaseURL == "" {
		return "/" + strings.TrimPrefix(key, "/"), nil
	}
	return strings.TrimSuffix(r.BaseURL, "/") + "/" + strings.TrimPrefix(key, "/"), nil
}

type presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Resolver hands out short-lived presigned GET URLs for a private bucket.
type S3Resolver struct {
	client presigner
	bucket string
	ttl    time.Duration
}

func NewS3Resolver(client *s3.Client, bucket string, ttl time.Duration) *S3Resolver {
	if ttl <= 0 {
		ttl = DefaultURLTTL
	}
	return &S3Resolver{client: s3.NewPresignClient(client), bucket: bucket, ttl: ttl}
}

func (r *S3Resolver) URL(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || isAbsolute(key) {
		return key, nil
	}

	req, err := r.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(strings.TrimPrefix(key, "/")),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", r.bucket, key, err)
	}
	return req.URL, nil
}

// NewResolver picks S3 presigning when MEDIA_S3_BUCKET is set and a static
// base URL (MEDIA_BASE_URL) otherwise.
func NewResolver(ctx context.Context, cfg map[string]string) (Resolver, error) {
	bucket := config.GetString(cfg, "MEDIA_S3_BUCKET", "")
	if bucket == "" {
		return StaticResolver{BaseURL: config.GetString(cfg, "MEDIA_BASE_URL", "/media/")}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	ttl := time.Duration(config.GetInt(cfg, "MEDIA_URL_TTL_MINUTES", int(DefaultURLTTL/time.Minute))) * time.Minute
	log.Info().Str("bucket", bucket).Dur("ttl", ttl).Msg("Serving media through presigned S3 URLs")
	return NewS3Resolver(s3.NewFromConfig(awsCfg), bucket, ttl), nil
}

// ResolveURL resolves an optional reference for a view. Failures are logged
// and the URL left out rather than failing the page.
func ResolveURL(ctx context.Context, r Resolver, key *string) string {
	if r == nil || key == nil || *key == "" {
		return ""
	}
	u, err := r.URL(ctx, *key)
	if err != nil {
		log.Warn().Err(err).Str("key", *key).Msg("Failed to resolve media URL")
		return ""
	}
	return u
}
