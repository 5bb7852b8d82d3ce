package usecase

import (
	"context"
)

// CacheStore defines the result cache surface. The presence flag from Get is
// authoritative: an empty cached body is a hit.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) (int, error)
}

// QueryExecutor issues a query against the remote triple store.
type QueryExecutor interface {
	Execute(ctx context.Context, query string) ([]byte, error)
}
