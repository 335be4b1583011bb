// Package badgerkv implements core.Adapter on top of BadgerDB.
//
// The collection is stored as one serialized blob under a single well-known
// key; Badger provides the durable byte store and crash safety. This adapter
// suits embedding the store inside a long-lived process where a flat file
// plus atomic renames is not enough (e.g. many rapid mutations).
package badgerkv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/neuronex/notekeep/pkg/core"
)

// collectionKey is the single well-known key holding the serialized collection.
var collectionKey = []byte("notekeep/notebooks")

// Config holds configuration for the Badger-backed adapter.
type Config struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence). Useful for testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives BadgerDB's internal logging. If nil, it is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		SyncWrites: true,
	}
}

// InMemoryConfig returns configuration optimized for testing.
func InMemoryConfig() Config {
	return Config{
		InMemory: true,
	}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Adapter implements core.Adapter using an embedded BadgerDB instance.
type Adapter struct {
	db *badger.DB
}

// NewAdapter opens the database and returns a ready adapter.
// Callers must Close it when done.
func NewAdapter(cfg Config) (*Adapter, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, fmt.Errorf("badger path is required unless InMemory is set")
	}

	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %s: %w", cfg.Path, err)
	}

	return &Adapter{db: db}, nil
}

// Initialize is a no-op; opening the database already prepared the storage.
func (a *Adapter) Initialize(ctx context.Context) error { return nil }

// Load reads and decodes the collection blob.
// A missing key means "first run" and is not an error.
func (a *Adapter) Load(ctx context.Context) ([]core.Notebook, bool, error) {
	var blob []byte
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(collectionKey)
		if err != nil {
			return err
		}
		blob, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read collection key: %w", err)
	}

	notebooks, err := decode(blob)
	if err != nil {
		return nil, false, err
	}
	return notebooks, true, nil
}

// Save encodes the full collection and replaces the blob in one transaction.
func (a *Adapter) Save(ctx context.Context, notebooks []core.Notebook) error {
	blob, err := encode(notebooks)
	if err != nil {
		return err
	}

	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(collectionKey, blob)
	})
	if err != nil {
		return fmt.Errorf("failed to write collection key: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// record is the persisted shape of a single notebook, shared with the fs
// adapter's JSON layout so the two substrates stay interchangeable.
type record struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Tags         []string `json:"tags"`
	LastModified string   `json:"lastModified"`
}

func encode(notebooks []core.Notebook) ([]byte, error) {
	records := make([]record, len(notebooks))
	for i, n := range notebooks {
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		records[i] = record{
			ID:           n.ID,
			Title:        n.Title,
			Content:      n.Content,
			Tags:         tags,
			LastModified: n.LastModified.Format(time.RFC3339Nano),
		}
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return blob, nil
}

func decode(blob []byte) ([]core.Notebook, error) {
	var records []record
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("invalid collection blob: %w", err)
	}

	notebooks := make([]core.Notebook, len(records))
	for i, rec := range records {
		modified, err := time.Parse(time.RFC3339Nano, rec.LastModified)
		if err != nil {
			return nil, fmt.Errorf("malformed lastModified %q for notebook %s: %w", rec.LastModified, rec.ID, err)
		}
		tags := rec.Tags
		if tags == nil {
			tags = []string{}
		}
		notebooks[i] = core.Notebook{
			ID:           rec.ID,
			Title:        rec.Title,
			Content:      rec.Content,
			Tags:         tags,
			LastModified: modified,
		}
	}
	return notebooks, nil
}
