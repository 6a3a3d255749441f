// Package cache stores rendered page bitmaps between runs.
//
// Rendering dominates the runtime of a mosaic run, so rendered pages are
// cached keyed by the document's content hash, the page index, and the
// requested pixel width. Re-running the tool against an unchanged PDF at the
// same width skips the rendering engine entirely.
package cache

import (
	"context"
	"time"
)

// TTLPage is how long rendered pages stay cached.
// Keys include the document content hash, so entries never go stale; the TTL
// only bounds disk growth for documents that are no longer used.
const TTLPage = 30 * 24 * time.Hour

// Cache is the interface for cache implementations.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// PageKey generates the cache key for a single rendered page.
// docHash is the content hash of the PDF file, so edited documents never
// collide with their previous versions.
func PageKey(docHash string, pageIndex, width int) string {
	return hashKey("page", docHash, pageIndex, width)
}
