// Package storage persists generated files in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"

	"bizhub/config"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "mem://"

type bucketStore struct {
	bucket *blob.Bucket
}

// BlobStoreParams holds dependencies for the blob store, injected by Fx
type BlobStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens blob.bucketUrl, defaulting to an in-memory bucket.
func NewBlobStore(params BlobStoreParams) (service.BlobStore, error) {
	bucketURL := defaultBucketURL
	if params.Config.Blob != nil && params.Config.Blob.BucketURL != "" {
		bucketURL = params.Config.Blob.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}
	params.Logger.Info("Blob bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStore(bucket), nil
}

// NewBucketStore wraps an opened bucket.
func NewBucketStore(bucket *blob.Bucket) service.BlobStore {
	return &bucketStore{bucket: bucket}
}

func (s *bucketStore) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat %s", key)
	}

	return ok, nil
}

func (s *bucketStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(service.ErrBlobNotFound, "key %s", key)
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

func (s *bucketStore) Write(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}
