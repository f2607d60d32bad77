// Package artifacts uploads the failure artifacts of a run (screenshots,
// traces, videos and the results stream) to S3-compatible storage.
package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/config"
)

// ObjectStore is the part of the MinIO client the uploader uses.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Uploader copies an artifacts directory into a bucket.
type Uploader struct {
	store  ObjectStore
	bucket string
	log    *zap.Logger
}

// NewUploader connects to the configured endpoint.
func NewUploader(cfg config.ArtifactStorageConfig, log *zap.Logger) (*Uploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}
	return NewUploaderWithStore(client, cfg.Bucket, log), nil
}

func NewUploaderWithStore(store ObjectStore, bucket string, log *zap.Logger) *Uploader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Uploader{store: store, bucket: bucket, log: log}
}

// EnsureBucket creates the bucket if it doesn't exist.
func (u *Uploader) EnsureBucket(ctx context.Context) error {
	exists, err := u.store.BucketExists(ctx, u.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket existence: %w", err)
	}
	if !exists {
		if err := u.store.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("creating bucket: %w", err)
		}
	}
	return nil
}

// RunPrefix names the folder one run's artifacts are stored under.
func RunPrefix(now time.Time) string {
	return fmt.Sprintf("runs/%s-%s", now.UTC().Format("20060102T150405Z"), uuid.NewString()[:8])
}

// ObjectKey joins prefix and a path relative to the artifacts directory
// using forward slashes.
func ObjectKey(prefix, rel string) string {
	return path.Join(prefix, filepath.ToSlash(rel))
}

// ContentType guesses the content type from the file extension.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".zip":
		return "application/zip"
	case ".webm":
		return "video/webm"
	case ".jsonl":
		return "application/x-ndjson"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// UploadDir uploads every regular file under dir and returns the S3 URIs.
// A missing dir uploads nothing.
func (u *Uploader) UploadDir(ctx context.Context, dir, prefix string) ([]string, error) {
	var uris []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := ObjectKey(prefix, rel)
		if _, err := u.store.FPutObject(ctx, u.bucket, key, p, minio.PutObjectOptions{
			ContentType: ContentType(p),
		}); err != nil {
			return fmt.Errorf("uploading %s: %w", rel, err)
		}
		uris = append(uris, fmt.Sprintf("s3://%s/%s", u.bucket, key))
		return nil
	})
	if err != nil {
		return uris, err
	}

	u.log.Info("uploaded artifacts",
		zap.String("bucket", u.bucket),
		zap.String("prefix", prefix),
		zap.Int("objects", len(uris)),
	)
	return uris, nil
}
