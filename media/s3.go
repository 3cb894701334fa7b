// Package media stores uploaded images in S3.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// PutObjectAPI is the part of the S3 client the uploader needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client  PutObjectAPI
	bucket  string
	baseURL string
}

// NewS3Uploader loads the default AWS credential chain for region.
func NewS3Uploader(ctx context.Context, bucket, region, baseURL string) (*S3Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return NewUploader(s3.NewFromConfig(cfg), bucket, baseURL), nil
}

// NewUploader wraps an existing client. baseURL prefixes returned URLs.
func NewUploader(client PutObjectAPI, bucket, baseURL string) *S3Uploader {
	return &S3Uploader{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put %s/%s: %w", u.bucket, key, err)
	}
	return u.baseURL + "/" + key, nil
}

// ObjectKey builds "<folder>/<id>-<name>" with the folder and file name
// reduced to safe path segments.
func ObjectKey(folder, id, filename string) string {
	folder = strings.Trim(path.Clean("/"+folder), "/")
	if folder == "" || folder == "." {
		folder = "uploads"
	}
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "-")
	return fmt.Sprintf("%s/%s-%s", folder, id, name)
}
