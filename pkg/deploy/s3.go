package deploy

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader uploads an export directory to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	uploader := deploy.NewUploader(s3.NewFromConfig(cfg), "my-site-bucket", "")
//	n, err := uploader.UploadDir(ctx, "dist")
type Uploader struct {
	client S3API
	bucket string
	prefix string
	logger *slog.Logger
}

// NewUploader creates an uploader targeting the given bucket. The prefix
// is prepended to every object key; pass "" to upload at the bucket root.
func NewUploader(client S3API, bucket, prefix string) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: strings.TrimPrefix(prefix, "/"),
		logger: slog.Default(),
	}
}

// WithLogger sets the progress logger.
func (u *Uploader) WithLogger(logger *slog.Logger) *Uploader {
	u.logger = logger
	return u
}

// UploadDir uploads every file under dir, keyed by its path relative to
// dir. Returns the number of objects uploaded.
func (u *Uploader) UploadDir(ctx context.Context, dir string) (int, error) {
	uploaded := 0

	err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if u.prefix != "" {
			key = strings.TrimSuffix(u.prefix, "/") + "/" + key
		}

		if err := u.uploadFile(ctx, p, key); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, err
	}

	u.logger.Info("upload complete", "bucket", u.bucket, "objects", uploaded)
	return uploaded, nil
}

// uploadFile puts a single file into the bucket.
func (u *Uploader) uploadFile(ctx context.Context, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentTypeFor(key)),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	u.logger.Debug("uploaded object", "key", key)
	return nil
}

// contentTypeFor maps a key's extension to a Content-Type. S3 does not
// sniff, so an explicit type keeps browsers from downloading pages.
func contentTypeFor(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js", ".mjs":
		return "text/javascript; charset=utf-8"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".ico":
		return "image/x-icon"
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}
