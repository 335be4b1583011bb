// Package core contains the notebook domain: the entity, the store, the
// derived views, and the ports its adapters implement.
package core

import (
	"fmt"
	"time"
)

// Notebook is the central entity of the domain.
// It represents a single titled, tagged, free-text note.
// It is agnostic to the storage format (JSON file, YAML file, KV store).
type Notebook struct {
	ID           string
	Title        string
	Content      string
	Tags         []string
	LastModified time.Time
}

// Clone returns a deep copy so callers cannot alias store-internal state.
func (n Notebook) Clone() Notebook {
	c := n
	c.Tags = append([]string(nil), n.Tags...)
	return c
}

// HasTag reports whether the notebook carries the tag (case-sensitive).
func (n Notebook) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Patch describes a partial update. Nil fields are left unchanged,
// so an update is a merge, never a replace.
type Patch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a notebook.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
