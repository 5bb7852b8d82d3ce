package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore caches results in-process. Useful for single-instance
// deployments and tests; entries do not survive restarts.
type MemoryStore struct {
	c *gocache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		c: gocache.New(ttl, ttl+5*time.Minute),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found := s.c.Get(key)
	if !found {
		return nil, false, nil
	}
	return value.([]byte), true, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	s.c.Set(key, value, gocache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) (int, error) {
	count := s.c.ItemCount()
	s.c.Flush()
	return count, nil
}

var _ Store = (*MemoryStore)(nil)
