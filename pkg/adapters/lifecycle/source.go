// Package lifecycle bridges notebook change events into the lifecycle
// runtime, so applications can compose the store's change feed with other
// managed event sources.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/neuronex/notekeep/pkg/core"
)

type notebookSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits notebook events.
// It bridges the typed event channel (from a store subscription or an
// adapter watch) to the generic lifecycle Event interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &notebookSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *notebookSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *notebookSource) Start(ctx context.Context) error {
	// Uses lifecycle.Go so the bridge itself is tracked and panic-safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
