// Package cache provides a small TTL cache for raw provider payloads, so
// repeated dashboard loads within a few minutes do not hammer the
// market-data API. Only provider responses are cached, never computed
// snapshots.
package cache

// Cache stores opaque payloads under string keys with a fixed TTL.
type Cache interface {
	// Get returns the payload and true if the key exists and is fresh.
	Get(key string) ([]byte, bool)
	Put(key string, payload []byte) error
	Close() error
}
