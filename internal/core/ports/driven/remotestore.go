package driven

import "context"

// FetchResult is the outcome of a successful remote fetch.
type FetchResult struct {
	// Value is the raw document stored under the key.
	Value string

	// HasValue is false when the record exists but carries no value.
	// Such keys are skipped without self-healing: absence of a value
	// is not proof the key is dangling.
	HasValue bool
}

// RemoteStore is the distributed key-value store holding the
// authoritative copies of marketplace documents. Backed by the local
// DHT daemon in production.
//
// Implementations must be safe for concurrent use: the resolver keeps
// multiple fetches in flight at once.
type RemoteStore interface {
	// Get returns the raw document value stored under key.
	// A confirmed-missing key returns domain.ErrNotFound; transport
	// failures (including timeouts) wrap domain.ErrRemoteUnavailable.
	Get(ctx context.Context, key string) (FetchResult, error)

	// Put stores value under key.
	Put(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key. Used by the resolver
	// to self-heal dangling index pointers; best-effort.
	Remove(ctx context.Context, key string) error
}
