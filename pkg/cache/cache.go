// Package cache provides byte caches for computed codec results.
//
// Decoding long permutations through the arbitrary-precision path is the
// expensive operation in lehmer; the service layer memoizes its results
// under keys derived by a [Keyer]. Three backends implement [Cache]:
//
//   - [NullCache]: caching disabled
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for server deployments
//
// Cache failures are never fatal to callers; the service logs them and
// falls back to computing the result.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with an optional TTL.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
