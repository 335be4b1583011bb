// Package fs implements core.Adapter on top of a single flat file.
//
// The whole notebook collection is serialized as one array (JSON by default,
// YAML optionally) and written atomically, so a crash mid-write never leaves
// a half-updated store behind.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/neuronex/notekeep/pkg/core"
)

// Config holds the configuration for the file-backed adapter.
type Config struct {
	Path      string // file that holds the serialized collection
	Format    string // "json" (default) or "yaml"
	AutoInit  bool   // create parent directories when missing
	MustExist bool   // require the parent directory to already exist
	Logger    *slog.Logger

	// EventBuffer is the capacity of the channel returned by Watch.
	// Zero means the default (16).
	EventBuffer int

	// ErrorHandler receives errors raised inside the Watch loop.
	ErrorHandler func(error)
}

// Adapter implements core.Adapter using a single file on disk.
type Adapter struct {
	Path       string
	config     Config
	serializer Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastKnown     map[string]time.Time // persisted state snapshot, for watch diffing
}

// NewAdapter creates a file-backed adapter. The serialization format is
// selected by Config.Format.
func NewAdapter(cfg Config) (*Adapter, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	serializer, err := ForFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	return &Adapter{
		Path:       cfg.Path,
		config:     cfg,
		serializer: serializer,
		lastKnown:  make(map[string]time.Time),
	}, nil
}

// Initialize ensures the directory holding the store file exists.
func (a *Adapter) Initialize(ctx context.Context) error {
	dir := filepath.Dir(a.Path)

	if a.config.MustExist {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("store directory does not exist: %s", dir)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path parent is not a directory: %s", dir)
		}
		return nil
	}

	if a.config.AutoInit {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	return nil
}

// Load reads and decodes the persisted collection.
// A missing or empty file means "first run" and is not an error.
func (a *Adapter) Load(ctx context.Context) ([]core.Notebook, bool, error) {
	data, err := os.ReadFile(a.Path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}

	notebooks, err := a.serializer.Decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode store file %s: %w", a.Path, err)
	}

	a.rememberSnapshot(notebooks)
	return notebooks, true, nil
}

// Save serializes the full collection and writes it atomically.
func (a *Adapter) Save(ctx context.Context, notebooks []core.Notebook) error {
	data, err := a.serializer.Encode(notebooks)
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := writeFileAtomic(a.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	a.rememberSnapshot(notebooks)
	return nil
}

// rememberSnapshot records id -> LastModified for the persisted state, so the
// watcher can derive per-notebook events from an out-of-process rewrite.
func (a *Adapter) rememberSnapshot(notebooks []core.Notebook) {
	snapshot := make(map[string]time.Time, len(notebooks))
	for _, n := range notebooks {
		snapshot[n.ID] = n.LastModified
	}

	a.mu.Lock()
	a.lastKnown = snapshot
	a.mu.Unlock()
}

// reconcile reloads the store file and diffs it against the last known
// snapshot, returning one event per created, modified, or deleted notebook.
func (a *Adapter) reconcile(ctx context.Context) ([]core.Event, error) {
	data, err := os.ReadFile(a.Path)
	if os.IsNotExist(err) {
		data = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var current []core.Notebook
	if len(data) > 0 {
		current, err = a.serializer.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode store file %s: %w", a.Path, err)
		}
	}

	a.mu.RLock()
	previous := a.lastKnown
	a.mu.RUnlock()

	now := time.Now().Unix()
	var events []core.Event
	seen := make(map[string]struct{}, len(current))

	for _, n := range current {
		seen[n.ID] = struct{}{}
		prev, ok := previous[n.ID]
		switch {
		case !ok:
			events = append(events, core.Event{Type: core.EventCreate, ID: n.ID, Timestamp: now})
		case !prev.Equal(n.LastModified):
			events = append(events, core.Event{Type: core.EventModify, ID: n.ID, Timestamp: now})
		}
	}
	for id := range previous {
		if _, ok := seen[id]; !ok {
			events = append(events, core.Event{Type: core.EventDelete, ID: id, Timestamp: now})
		}
	}

	a.rememberSnapshot(current)
	return events, nil
}
