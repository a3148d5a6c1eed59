// Package cache provides pluggable storage for memoized sort results and
// rendered artifacts.
//
// Sorting is deterministic: the same algorithm on the same row always yields
// the same result. The pipeline therefore keys results by algorithm and input
// and keeps them for a long time. Backends:
//
//   - [FileCache]: JSON files under a directory, for CLI use
//   - [RedisCache]: A shared redis instance, for the HTTP server
//   - [NullCache]: Stores nothing, used with --no-cache and in tests
//
// Keys are produced by a [Keyer] so callers never build key strings by hand.
package cache

import (
	"context"
	"time"
)

// Time-to-live values for cached entries.
const (
	// TTLResult applies to sort results. Results never go stale, the TTL
	// only bounds disk and memory use.
	TTLResult = 30 * 24 * time.Hour

	// TTLArtifact applies to rendered outputs (svg, dot, ...).
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
