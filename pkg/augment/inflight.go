package augment

import "sync"

// Inflight tracks which notebooks currently have an augmentation request in
// flight, so callers can refuse concurrent requests for the same notebook.
type Inflight struct {
	mu      sync.Mutex
	pending map[string]bool
}

func NewInflight() *Inflight {
	return &Inflight{pending: make(map[string]bool)}
}

// Begin marks the notebook as having an active request. It returns false if
// one is already running, in which case the caller should not proceed.
func (f *Inflight) Begin(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending[id] {
		return false
	}
	f.pending[id] = true
	return true
}

// End clears the active marker. Safe to call for ids never begun.
func (f *Inflight) End(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, id)
}

// Active reports whether the notebook has a request in flight.
func (f *Inflight) Active(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending[id]
}
