package platform

import (
	"log/slog"

	"github.com/neuronex/notekeep/pkg/core"
)

// options holds the internal configuration for the notekeep platform.
type options struct {
	adapter     core.Adapter
	logger      *slog.Logger
	adapterName string
	config      map[string]interface{}
}

// Option defines a functional option for configuring the store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:     nil,
		logger:      nil,
		adapterName: "fs",
		config:      make(map[string]interface{}),
	}
}

// WithAdapter selects the persistence adapter by name ("fs" or "badger").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapterName = name
	}
}

// WithRepository injects a custom persistence adapter (e.g. a mock).
// If provided, the named adapter is skipped.
func WithRepository(adapter core.Adapter) Option {
	return func(o *options) {
		o.adapter = adapter
	}
}

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFormat selects the on-disk serialization format for the fs adapter
// ("json" or "yaml"). Defaults to "json".
func WithFormat(format string) Option {
	return func(o *options) {
		o.config["format"] = format
	}
}

// WithAutoInit enables automatic creation of the store's parent directory.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithMustExist ensures the store file must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithForceTemp forces the store into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithEventBuffer sets the capacity of the channel returned by Watch.
// Zero means the adapter default.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithInMemory runs the badger adapter without touching disk.
func WithInMemory(inMemory bool) Option {
	return func(o *options) {
		o.config["in_memory"] = inMemory
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring during
// the watch loop, e.g. permission failures that are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
// By default (true), the store is forced into a temporary directory to
// prevent accidental writes to real data during development.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}
