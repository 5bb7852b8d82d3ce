package cache

import (
	"context"
	"sync"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
)

// MemcachedStore caches results in memcached. Memcached cannot enumerate
// keys, so the store tracks the keys it wrote in-process to give Clear its
// count; entries written by other processes expire via TTL instead.
type MemcachedStore struct {
	mc  *memcache.Client
	ttl int32

	mu   sync.Mutex
	keys map[string]struct{}
}

func NewMemcachedStore(addr string, ttlSeconds int32) *MemcachedStore {
	return &MemcachedStore{
		mc:   memcache.New(addr),
		ttl:  ttlSeconds,
		keys: make(map[string]struct{}),
	}
}

func (s *MemcachedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	item, err := s.mc.Get(key)
	if err == memcache.ErrCacheMiss {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "memcached get failed")
	}
	return item.Value, true, nil
}

func (s *MemcachedStore) Put(ctx context.Context, key string, value []byte) error {
	err := s.mc.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: s.ttl,
	})
	if err != nil {
		return errors.Wrap(err, "memcached set failed")
	}

	s.mu.Lock()
	s.keys[key] = struct{}{}
	s.mu.Unlock()

	return nil
}

func (s *MemcachedStore) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	s.keys = make(map[string]struct{})
	s.mu.Unlock()

	for _, k := range keys {
		err := s.mc.Delete(k)
		if err != nil && err != memcache.ErrCacheMiss {
			return 0, errors.Wrap(err, "memcached delete failed")
		}
	}
	return len(keys), nil
}

var _ Store = (*MemcachedStore)(nil)
