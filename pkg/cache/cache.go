// Package cache stores rendered artifacts so identical scenes are not
// rasterized twice.
//
// Three backends share the [Cache] interface: [FileCache] for the CLI (one JSON
// entry per key under the user cache directory), [RedisCache] for the HTTP
// service when several instances share one store, and [NullCache] when caching
// is disabled. Keys come from a [Keyer] so that the same scene and render
// options always map to the same entry.
//
// Cache failures are never fatal: callers treat a read error as a miss and
// ignore write errors.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// TTLArtifact is how long rendered artifacts are kept. Artifacts are keyed by
// content hash, so staleness is not a concern; the TTL only bounds disk use.
const TTLArtifact = 30 * 24 * time.Hour
