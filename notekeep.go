package notekeep

import (
	"context"
	"log/slog"

	"github.com/neuronex/notekeep/internal/platform"
	"github.com/neuronex/notekeep/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithAdapter selects the persistence adapter by name ("fs" or "badger").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithRepository injects a custom persistence adapter (e.g. a mock).
func WithRepository(adapter core.Adapter) Option {
	return platform.WithRepository(adapter)
}

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithFormat selects the on-disk serialization format ("json" or "yaml").
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithAutoInit enables automatic creation of the store's parent directory.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the store file must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the store into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithEventBuffer sets the capacity of the channel returned by Watch.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithInMemory runs the badger adapter without touching disk.
func WithInMemory(inMemory bool) Option {
	return platform.WithInMemory(inMemory)
}

// WithWatcherErrorHandler registers a callback for errors in the watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithDevSafety controls the temp-directory sandbox used during `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// Open creates a notebook store backed by the configured adapter.
func Open(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	return platform.Open(ctx, path, opts...)
}

// Init builds and initializes the persistence adapter explicitly.
func Init(path string, opts ...Option) (core.Adapter, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// ResolveStorePath determines the actual store path based on safety rules.
func ResolveStorePath(userPath string, forceTemp bool) string {
	return platform.ResolveStorePath(userPath, forceTemp)
}

// DefaultStorePath returns the store location used when no path is given.
func DefaultStorePath() string {
	return platform.DefaultStorePath()
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
