package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"storefront/internal/domain/repository"
)

func createTestStore(t *testing.T) repository.Store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		require.NoError(t, bucket.Close())
	})

	return NewWithBucket(bucket)
}

func TestBlobStore_SaveAndLoad(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, repository.KeyCart, []byte(`[{"productId":"p1"}]`)))

	data, err := store.Load(ctx, repository.KeyCart)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":"p1"}]`, string(data))
}

func TestBlobStore_SaveReplacesPreviousValue(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, repository.KeyProducts, []byte(`["old"]`)))
	require.NoError(t, store.Save(ctx, repository.KeyProducts, []byte(`["new"]`)))

	data, err := store.Load(ctx, repository.KeyProducts)
	require.NoError(t, err)
	assert.JSONEq(t, `["new"]`, string(data))
}

func TestBlobStore_LoadMissingKey(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBlobStore_DeleteIsIdempotent(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, repository.KeyUser, []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, repository.KeyUser))
	require.NoError(t, store.Delete(ctx, repository.KeyUser))

	_, err := store.Load(ctx, repository.KeyUser)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}
