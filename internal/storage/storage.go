// Package storage provides the durable key-value adapter behind the
// aggregate store. Values are whole serialized collections, one key per
// collection; there are no partial or delta writes. Concurrent writers follow
// last-writer-wins at full-value granularity. That policy lives entirely
// behind the KV interface, so a stricter one can be substituted without
// touching the models.
package storage

// KV is a durable key-value store for serialized collections.
type KV interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(key string) ([]byte, error)

	// Set stores the full value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the key. Removing an absent key is not an error.
	Delete(key string) error

	// Close releases the underlying resources.
	Close() error
}
