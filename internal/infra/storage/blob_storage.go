// Package storage keeps delivery proof images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"path"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through storage.bucketUrl
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket  *blob.Bucket
	baseURL *url.URL
	logger  *slog.Logger
}

// StorageParams holds dependencies for ProofStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewProofStorage opens the configured bucket and closes it on shutdown
func NewProofStorage(params StorageParams) (service.ProofStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	if publicBaseURL == "" {
		publicBaseURL = bucketURL
	}

	storage, err := NewBlobStorage(bucket, publicBaseURL, params.Logger)
	if err != nil {
		if closeErr := bucket.Close(); closeErr != nil {
			params.Logger.Warn("Failed to close proof storage bucket", slog.Any("error", closeErr))
		}

		return nil, err
	}

	params.Logger.Info("Proof storage bucket opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing proof storage bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return storage, nil
}

// NewBlobStorage wraps an open bucket; returned URLs are built from publicBaseURL
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) (*blobStorage, error) {
	baseURL, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid public base URL %s", publicBaseURL)
	}
	baseURL.RawQuery = ""
	baseURL.Fragment = ""

	return &blobStorage{
		bucket:  bucket,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// Upload writes data under key and returns the object URL
func (s *blobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("object key is required")
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	objectURL := s.objectURL(key)

	s.logger.Debug("Proof object stored",
		slog.String("key", key),
		slog.Int("size", len(data)),
		slog.String("url", objectURL),
	)

	return objectURL, nil
}

func (s *blobStorage) objectURL(key string) string {
	u := *s.baseURL
	u.Path = path.Join("/", u.Path, key)

	return u.String()
}
