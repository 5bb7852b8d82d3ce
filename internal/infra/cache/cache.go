// Package cache provides the content-addressed result cache backing the
// query pipeline. Keys are deterministic fingerprints of the final query
// text plus the pagination offset, so identical queries share entries across
// processes.
//
// Presence is explicit: Get reports a hit through its boolean, so an empty
// cached body is a hit, not a miss. A legitimately empty store response is
// therefore cached like any other.
package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zeebo/xxh3"
)

// keyPrefix namespaces cache entries so Clear can scope its scan on shared
// backends.
const keyPrefix = "sparql:"

// Store is the cache port. Implementations must be safe for concurrent use;
// no additional locking is layered on top.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) (int, error)
}

// Fingerprint derives the cache key for a query text and offset. Two calls
// with identical inputs produce identical keys in any process.
func Fingerprint(query string, offset int) string {
	sum := xxh3.Hash128([]byte(query + strconv.Itoa(offset)))
	return keyPrefix + fmt.Sprintf("%016x%016x", sum.Hi, sum.Lo)
}
