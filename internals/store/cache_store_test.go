package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCached(t *testing.T) (*CachedStore, *MemoryStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	inner := NewMemoryStore()
	return NewCachedStore(inner, rdb, time.Minute), inner, mr
}

func TestCachedStoreReadThrough(t *testing.T) {
	ctx := context.Background()
	cached, inner, mr := newCached(t)
	items := NewCollection[item](cached, "items")

	require.NoError(t, items.Add(ctx, "a", &item{ID: "a", Score: 1}))
	_, err := items.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, mr.Exists("ailms:record:items:a"))

	// tulis langsung ke inner: cache masih menyajikan nilai lama
	require.NoError(t, NewCollection[item](inner, "items").Update(ctx, "a", &item{ID: "a", Score: 5}))
	got, err := items.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Score)

	// update lewat cached store menghapus key
	require.NoError(t, items.Update(ctx, "a", &item{ID: "a", Score: 7}))
	assert.False(t, mr.Exists("ailms:record:items:a"))
	got, err = items.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.Score)

	require.NoError(t, items.Delete(ctx, "a"))
	_, err = items.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists("ailms:record:items:a"))
}

func TestCachedStoreFallsBackWhenRedisDown(t *testing.T) {
	ctx := context.Background()
	cached, _, mr := newCached(t)
	items := NewCollection[item](cached, "items")
	require.NoError(t, items.Add(ctx, "a", &item{ID: "a", Score: 3}))

	mr.Close()

	got, err := items.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Score)
	require.NoError(t, items.Update(ctx, "a", &item{ID: "a", Score: 4}))
}

func TestCachedStoreTransactionInvalidatesAfterCommit(t *testing.T) {
	ctx := context.Background()
	cached, _, mr := newCached(t)
	items := NewCollection[item](cached, "items")
	require.NoError(t, items.Add(ctx, "a", &item{ID: "a", Score: 1}))
	_, err := items.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, mr.Exists("ailms:record:items:a"))

	require.NoError(t, cached.Transaction(ctx, func(tx Store) error {
		return items.With(tx).Update(ctx, "a", &item{ID: "a", Score: 9})
	}))
	assert.False(t, mr.Exists("ailms:record:items:a"))

	got, err := items.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Score)
}
