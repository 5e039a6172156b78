// file: internals/store/cache_store.go
package store

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedStore: read-through cache redis untuk Get by id.
// Write (Update/Delete) menghapus key setelah store di bawahnya sukses.
// Kegagalan redis tidak pernah menggagalkan operasi; cukup di-log lalu fallback.
type CachedStore struct {
	Store
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewCachedStore(inner Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedStore{Store: inner, rdb: rdb, ttl: ttl, prefix: "ailms:record:"}
}

func (s *CachedStore) key(collection, id string) string {
	return s.prefix + collection + ":" + id
}

func (s *CachedStore) Get(ctx context.Context, collection, id string) (Raw, error) {
	k := s.key(collection, id)
	b, err := s.rdb.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		return Raw(b), nil
	case !errors.Is(err, redis.Nil):
		log.Printf("[CachedStore] WARN redis get %s: %v", k, err)
	}

	data, err := s.Store.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, k, []byte(data), s.ttl).Err(); err != nil {
		log.Printf("[CachedStore] WARN redis set %s: %v", k, err)
	}
	return data, nil
}

func (s *CachedStore) Update(ctx context.Context, collection, id string, data Raw) error {
	if err := s.Store.Update(ctx, collection, id, data); err != nil {
		return err
	}
	s.invalidate(ctx, s.key(collection, id))
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.Store.Delete(ctx, collection, id); err != nil {
		return err
	}
	s.invalidate(ctx, s.key(collection, id))
	return nil
}

// Transaction: key yang ditulis di dalam tx dihapus lagi setelah commit,
// supaya pembaca yang sempat mengisi cache di tengah tx tidak meninggalkan data basi.
func (s *CachedStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	var (
		mu      sync.Mutex
		touched []string
	)
	err := s.Store.Transaction(ctx, func(inner Store) error {
		return fn(&txCachedStore{Store: inner, parent: s, onWrite: func(k string) {
			mu.Lock()
			touched = append(touched, k)
			mu.Unlock()
		}})
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, touched...)
	return nil
}

func (s *CachedStore) invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CachedStore] WARN redis del %v: %v", keys, err)
	}
}

// txCachedStore: baca langsung dari tx (tanpa cache), catat key yang ditulis.
type txCachedStore struct {
	Store
	parent  *CachedStore
	onWrite func(key string)
}

func (t *txCachedStore) Update(ctx context.Context, collection, id string, data Raw) error {
	if err := t.Store.Update(ctx, collection, id, data); err != nil {
		return err
	}
	t.onWrite(t.parent.key(collection, id))
	return nil
}

func (t *txCachedStore) Delete(ctx context.Context, collection, id string) error {
	if err := t.Store.Delete(ctx, collection, id); err != nil {
		return err
	}
	t.onWrite(t.parent.key(collection, id))
	return nil
}
