package core

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// DefaultTitle is the sentinel title for notebooks created without a hint.
	// Consumers may render empty titles as "Untitled"; the store never does.
	DefaultTitle = "Untitled Notebook"

	// ImportedTag marks notebooks created through the import boundary.
	ImportedTag = "Imported"
)

// Store is the in-memory authoritative collection of notebooks.
//
// Every mutation follows the same protocol: build the next collection,
// persist it through the adapter, and only then swap it in. A persistence
// failure therefore leaves the previous state fully observable (rollback),
// and the persisted blob and the in-memory collection never drift apart.
//
// Internal order is insertion order, most-recent-creation-first.
type Store struct {
	mu      sync.RWMutex
	adapter Adapter
	logger  *slog.Logger
	entries []Notebook
	subs    map[int]func(Event)
	nextSub int
	now     func() time.Time
	newID   func() string
}

// NewStore loads the persisted collection through the adapter, seeding the
// default sample notebooks on first run. Malformed persisted state surfaces
// as a PersistenceError, never as a silently empty collection.
func NewStore(ctx context.Context, adapter Adapter, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		adapter: adapter,
		logger:  logger,
		subs:    make(map[int]func(Event)),
		now:     time.Now,
		newID:   uuid.NewString,
	}

	if err := adapter.Initialize(ctx); err != nil {
		return nil, &PersistenceError{Op: "initialize", Err: err}
	}

	entries, ok, err := adapter.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	if !ok {
		entries = s.seed()
		if err := adapter.Save(ctx, entries); err != nil {
			return nil, &PersistenceError{Op: "seed", Err: err}
		}
		logger.Info("no persisted state found, seeded default notebooks", "count", len(entries))
	}

	s.entries = entries
	return s, nil
}

// seed builds the first-run sample collection.
func (s *Store) seed() []Notebook {
	now := s.now()
	return []Notebook{
		{
			ID:           s.newID(),
			Title:        "Advanced React Patterns",
			Content:      "React Hooks provide a powerful way to manage state logic...",
			Tags:         []string{"React", "Frontend"},
			LastModified: now,
		},
		{
			ID:           s.newID(),
			Title:        "Python Data Structures",
			Content:      "Lists are mutable sequences, typically used to store collections of homogeneous items.",
			Tags:         []string{"Python", "CS101"},
			LastModified: now.Add(-24 * time.Hour),
		},
	}
}

// Create allocates a fresh notebook and inserts it at the head of the collection.
// An empty titleHint falls back to DefaultTitle.
func (s *Store) Create(ctx context.Context, titleHint string) (Notebook, error) {
	title := titleHint
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	s.mu.Lock()
	n := Notebook{
		ID:           s.newID(),
		Title:        title,
		Tags:         []string{},
		LastModified: s.now(),
	}

	next := make([]Notebook, 0, len(s.entries)+1)
	next = append(next, n)
	next = append(next, s.entries...)

	if err := s.persist(ctx, "create", next); err != nil {
		s.mu.Unlock()
		return Notebook{}, err
	}
	s.entries = next
	out := n.Clone()
	s.mu.Unlock()

	s.notify(Event{Type: EventCreate, ID: n.ID, Timestamp: out.LastModified.Unix()})
	return out, nil
}

// Import creates a notebook from raw external text. The title is the source
// name with any file extension stripped, and the notebook starts with the
// Imported tag. Input that is not valid UTF-8 text is rejected.
func (s *Store) Import(ctx context.Context, name string, rawText string) (Notebook, error) {
	if !utf8.ValidString(rawText) {
		return Notebook{}, &ImportError{Name: name, Reason: "content is not valid UTF-8 text"}
	}

	title := strings.TrimSuffix(name, filepath.Ext(name))
	if title == "" {
		title = DefaultTitle
	}

	s.mu.Lock()
	n := Notebook{
		ID:           s.newID(),
		Title:        title,
		Content:      rawText,
		Tags:         []string{ImportedTag},
		LastModified: s.now(),
	}

	next := make([]Notebook, 0, len(s.entries)+1)
	next = append(next, n)
	next = append(next, s.entries...)

	if err := s.persist(ctx, "import", next); err != nil {
		s.mu.Unlock()
		return Notebook{}, err
	}
	s.entries = next
	out := n.Clone()
	s.mu.Unlock()

	s.notify(Event{Type: EventCreate, ID: n.ID, Timestamp: out.LastModified.Unix()})
	return out, nil
}

// Update applies the non-nil fields of patch to the notebook and refreshes
// LastModified. Omitted fields are unchanged (merge, not replace).
func (s *Store) Update(ctx context.Context, id string, patch Patch) (Notebook, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return Notebook{}, &NotFoundError{ID: id}
	}

	updated := s.entries[idx].Clone()
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Content != nil {
		updated.Content = *patch.Content
	}
	if patch.Tags != nil {
		updated.Tags = normalizeTags(*patch.Tags)
	}
	updated.LastModified = s.now()

	next := s.cloneEntries()
	next[idx] = updated

	if err := s.persist(ctx, "update", next); err != nil {
		s.mu.Unlock()
		return Notebook{}, err
	}
	s.entries = next
	out := updated.Clone()
	s.mu.Unlock()

	s.notify(Event{Type: EventModify, ID: id, Timestamp: out.LastModified.Unix()})
	return out, nil
}

// Delete permanently removes the notebook. There is no trash or undo.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return &NotFoundError{ID: id}
	}

	next := make([]Notebook, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)

	if err := s.persist(ctx, "delete", next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.entries = next
	s.mu.Unlock()

	s.notify(Event{Type: EventDelete, ID: id, Timestamp: s.now().Unix()})
	return nil
}

// AddTag adds a tag to the notebook's tag set. The tag is trimmed of leading
// and trailing whitespace first; an empty-after-trim tag and a tag already
// present are both silent no-ops that neither persist nor touch LastModified.
func (s *Store) AddTag(ctx context.Context, id string, tag string) (Notebook, error) {
	tag = strings.TrimSpace(tag)

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return Notebook{}, &NotFoundError{ID: id}
	}

	if tag == "" || s.entries[idx].HasTag(tag) {
		out := s.entries[idx].Clone()
		s.mu.Unlock()
		return out, nil
	}

	updated := s.entries[idx].Clone()
	updated.Tags = append(updated.Tags, tag)
	updated.LastModified = s.now()

	next := s.cloneEntries()
	next[idx] = updated

	if err := s.persist(ctx, "add tag", next); err != nil {
		s.mu.Unlock()
		return Notebook{}, err
	}
	s.entries = next
	out := updated.Clone()
	s.mu.Unlock()

	s.notify(Event{Type: EventModify, ID: id, Timestamp: out.LastModified.Unix()})
	return out, nil
}

// RemoveTag removes a tag from the notebook's tag set. Removing a tag that is
// not present is a silent no-op that neither persists nor touches LastModified.
func (s *Store) RemoveTag(ctx context.Context, id string, tag string) (Notebook, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return Notebook{}, &NotFoundError{ID: id}
	}

	if !s.entries[idx].HasTag(tag) {
		out := s.entries[idx].Clone()
		s.mu.Unlock()
		return out, nil
	}

	updated := s.entries[idx].Clone()
	tags := make([]string, 0, len(updated.Tags)-1)
	for _, t := range updated.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	updated.Tags = tags
	updated.LastModified = s.now()

	next := s.cloneEntries()
	next[idx] = updated

	if err := s.persist(ctx, "remove tag", next); err != nil {
		s.mu.Unlock()
		return Notebook{}, err
	}
	s.entries = next
	out := updated.Clone()
	s.mu.Unlock()

	s.notify(Event{Type: EventModify, ID: id, Timestamp: out.LastModified.Unix()})
	return out, nil
}

// Get returns a copy of the notebook with the given id.
func (s *Store) Get(id string) (Notebook, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Notebook{}, false
	}
	return s.entries[idx].Clone(), true
}

// List returns the full live collection in internal order.
// The returned notebooks are copies; mutating them does not touch the store.
func (s *Store) List() []Notebook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneEntries()
}

// Len returns the number of notebooks in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Subscribe registers fn to be invoked after every successful mutation.
// The returned cancel function removes the subscription. Callbacks run
// synchronously on the mutating goroutine, outside the store lock.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// persist writes the candidate collection through the adapter.
// Callers must hold the write lock and must not swap in the candidate
// unless persist returns nil.
func (s *Store) persist(ctx context.Context, op string, next []Notebook) error {
	if err := s.adapter.Save(ctx, next); err != nil {
		s.logger.Error("mutation rolled back", "op", op, "error", err)
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

func (s *Store) notify(evt Event) {
	s.mu.RLock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(evt)
	}
}

// indexOf returns the position of id in the collection, or -1.
// Callers must hold at least the read lock.
func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) cloneEntries() []Notebook {
	next := make([]Notebook, len(s.entries))
	for i := range s.entries {
		next[i] = s.entries[i].Clone()
	}
	return next
}

// normalizeTags enforces set semantics on a caller-supplied tag list:
// whitespace is trimmed, empties dropped, and the first occurrence wins.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
