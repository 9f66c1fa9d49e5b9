package service

import (
	"context"

	"bizhub/internal/errors"
)

// ErrBlobNotFound is returned by Read when the key does not exist.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore keeps generated artifacts such as certificate images.
type BlobStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key, contentType string, data []byte) error
}
