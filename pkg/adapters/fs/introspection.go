package fs

import (
	"github.com/aretw0/introspection"
)

// AdapterState exposes internal state for observability.
type AdapterState struct {
	Path          string `json:"path"`
	Format        string `json:"format"`
	KnownEntries  int    `json:"known_entries"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (a *Adapter) State() any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	format := a.config.Format
	if format == "" {
		format = "json"
	}

	return AdapterState{
		Path:          a.Path,
		Format:        format,
		KnownEntries:  len(a.lastKnown),
		WatcherActive: a.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (a *Adapter) ComponentType() string {
	return "fs-adapter"
}

var _ introspection.Introspectable = (*Adapter)(nil)
var _ introspection.Component = (*Adapter)(nil)

func (a *Adapter) setWatcherActive(active bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.watcherActive = active
}
