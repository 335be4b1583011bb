package core

import "context"

// Adapter defines the contract for durably storing the notebook collection.
// The whole collection travels as one unit: adapters persist a single
// serialized array of notebook records under a well-known location, so the
// core stays independent of the underlying substrate (flat file, KV store).
type Adapter interface {
	// Initialize ensures the underlying storage is ready
	// (e.g. create directories, open the database).
	Initialize(ctx context.Context) error

	// Load reads the persisted collection. ok is false when no state has
	// ever been written (first run); that is not an error.
	Load(ctx context.Context) (notebooks []Notebook, ok bool, err error)

	// Save persists the full collection, replacing any previous state.
	Save(ctx context.Context, notebooks []Notebook) error
}

// Watchable defines an interface for adapters that can observe
// out-of-process changes to the persisted collection.
type Watchable interface {
	// Watch emits an event per notebook whose persisted state changed.
	// pattern is a glob matched against notebook ids ("*" matches all).
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Closer is implemented by adapters holding resources that outlive a call
// (e.g. an embedded database handle).
type Closer interface {
	Close() error
}
