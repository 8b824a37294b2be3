package blobstore

import (
	"context"

	"github.com/hupe1980/joux/internal/cache"
	"github.com/hupe1980/joux/resource"
)

// CachingStore wraps a BlobStore and keeps whole blobs in memory. Opening a
// cached blob does not touch the inner store.
type CachingStore struct {
	inner BlobStore
	cache *cache.LRU
}

// NewCachingStore caches up to capacity bytes of inner. If rc is non-nil the
// cached bytes count against its memory budget.
func NewCachingStore(inner BlobStore, capacity int64, rc *resource.Controller) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRU(capacity, rc),
	}
}

// Open serves name from the cache, loading it on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	if data, ok := s.cache.Get(name); ok {
		return &memoryBlob{data: data}, nil
	}

	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	data, err := ReadAll(ctx, b)
	if err != nil {
		return nil, err
	}
	if _, mapped := b.(Mappable); mapped {
		// The mapping goes away with b.
		data = append([]byte(nil), data...)
	}
	s.cache.Set(name, data)
	return &memoryBlob{data: data}, nil
}

// Create writes through to the inner store and drops any cached copy.
func (s *CachingStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	s.cache.Invalidate(name)
	return s.inner.Create(ctx, name)
}

// Put writes through to the inner store and drops any cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.cache.Invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Delete removes name from both the cache and the inner store.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.cache.Invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List delegates to the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns the cache hit and miss counters.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}

// Purge empties the cache.
func (s *CachingStore) Purge() {
	s.cache.Purge()
}
