// Package blobstore implements the key-value persistence boundary on top of a
// gocloud.dev blob bucket. A file bucket serves local deployments; the in-memory
// bucket backs tests.
package blobstore

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the blob store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the bucket named by storage.bucketUrl and returns it as a
// repository.Store. The bucket is closed on application shutdown.
func New(ctx context.Context, params Params) (repository.Store, error) {
	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &blobStore{bucket: bucket}, nil
}

// NewWithBucket wraps an already-open bucket. Intended for tests.
func NewWithBucket(bucket *blob.Bucket) repository.Store {
	return &blobStore{bucket: bucket}
}

// Load returns the raw value stored under key.
func (s *blobStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read key %s", key)
	}

	return data, nil
}

// Save stores the raw value under key, replacing any previous value.
func (s *blobStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, nil); err != nil {
		return errors.Wrapf(err, "write key %s", key)
	}

	return nil
}

// Delete removes the value stored under key. Absent keys are ignored.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete key %s", key)
	}

	return nil
}
