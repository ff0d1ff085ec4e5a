// Package store owns the durable local state of the SDK: the device
// fingerprint cache and the append-only set of resolved identity↔age-gate
// linkages. The key-value mechanics live behind the KV interface so hosts can
// substitute their own secure storage.
package store

// KV is the local persistent key-value collaborator. Implementations must be
// safe for concurrent use; Storage serialises its own read-modify-write
// sequences on top.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
}
