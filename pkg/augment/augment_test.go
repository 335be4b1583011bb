package augment_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/neuronex/notekeep/pkg/augment"
)

// fakeCompleter records the prompt it was handed and returns a canned reply.
type fakeCompleter struct {
	lastPrompt string
	calls      int
	reply      string
	err        error
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestAugment_Explain_ForwardsTitleOnly(t *testing.T) {
	fake := &fakeCompleter{reply: "ok"}
	g := augment.NewGateway(fake, nil)

	snap := augment.Snapshot{
		Title:   "Graph Theory Basics",
		Content: "adjacency lists, BFS, DFS, secret-content-marker",
	}
	if _, err := g.Augment(context.Background(), augment.KindExplain, snap); err != nil {
		t.Fatalf("Augment: %v", err)
	}

	if !strings.Contains(fake.lastPrompt, `"Graph Theory Basics"`) {
		t.Errorf("prompt missing title: %q", fake.lastPrompt)
	}
	if !strings.Contains(fake.lastPrompt, `"Intermediate"`) {
		t.Errorf("prompt missing difficulty level: %q", fake.lastPrompt)
	}
	if strings.Contains(fake.lastPrompt, "secret-content-marker") {
		t.Error("explain prompt must not include notebook content")
	}
}

func TestAugment_Summarize_TruncatesContent(t *testing.T) {
	fake := &fakeCompleter{reply: "ok"}
	g := augment.NewGateway(fake, nil)

	content := strings.Repeat("a", 2500)
	snap := augment.Snapshot{Title: "Long Notes", Content: content}
	if _, err := g.Augment(context.Background(), augment.KindSummarize, snap); err != nil {
		t.Fatalf("Augment: %v", err)
	}

	if strings.Contains(fake.lastPrompt, strings.Repeat("a", 2001)) {
		t.Error("prompt carries more than 2000 content characters")
	}
	if !strings.Contains(fake.lastPrompt, strings.Repeat("a", 2000)) {
		t.Error("prompt should carry exactly the first 2000 content characters")
	}
}

func TestAugment_Quiz_IncludesTitleAndFormat(t *testing.T) {
	fake := &fakeCompleter{reply: "ok"}
	g := augment.NewGateway(fake, nil)

	snap := augment.Snapshot{Title: "Sorting", Content: strings.Repeat("b", 1500)}
	if _, err := g.Augment(context.Background(), augment.KindQuiz, snap); err != nil {
		t.Fatalf("Augment: %v", err)
	}

	if !strings.Contains(fake.lastPrompt, `"Sorting"`) {
		t.Errorf("prompt missing title: %q", fake.lastPrompt)
	}
	if !strings.Contains(fake.lastPrompt, "**Question 1:**") {
		t.Error("prompt missing quiz format block")
	}
	if strings.Contains(fake.lastPrompt, strings.Repeat("b", 1001)) {
		t.Error("quiz prompt carries more than 1000 content characters")
	}
}

func TestAugment_Unconfigured(t *testing.T) {
	g := augment.NewGateway(nil, nil)

	_, err := g.Augment(context.Background(), augment.KindExplain, augment.Snapshot{Title: "x"})
	if !errors.Is(err, augment.ErrUnconfigured) {
		t.Fatalf("want ErrUnconfigured, got %v", err)
	}
}

func TestAugment_ProviderFailure(t *testing.T) {
	boom := errors.New("connection refused")
	fake := &fakeCompleter{err: boom}
	g := augment.NewGateway(fake, nil)

	_, err := g.Augment(context.Background(), augment.KindSummarize, augment.Snapshot{Content: "notes"})

	var unavail *augment.UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("want *UnavailableError, got %v", err)
	}
	if unavail.Kind != augment.KindSummarize {
		t.Errorf("Kind = %q, want %q", unavail.Kind, augment.KindSummarize)
	}
	if !errors.Is(err, boom) {
		t.Error("UnavailableError should unwrap to the provider error")
	}
}

func TestAugment_UnknownKind(t *testing.T) {
	fake := &fakeCompleter{reply: "ok"}
	g := augment.NewGateway(fake, nil)

	if _, err := g.Augment(context.Background(), augment.Kind("translate"), augment.Snapshot{}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if fake.calls != 0 {
		t.Error("provider must not be called for an unknown kind")
	}
}

func TestTruncate_RuneBoundaries(t *testing.T) {
	// "héllo" — the é is two bytes; cutting inside it must back off.
	s := "héllo"
	got := augment.Truncate(s, 2)
	if got != "h" {
		t.Errorf("Truncate(%q, 2) = %q, want %q", s, got, "h")
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncated string is not valid UTF-8: %q", got)
	}

	if got := augment.Truncate("short", 100); got != "short" {
		t.Errorf("Truncate under budget = %q, want unchanged", got)
	}
}

func TestInflight(t *testing.T) {
	f := augment.NewInflight()

	if !f.Begin("n1") {
		t.Fatal("first Begin should succeed")
	}
	if f.Begin("n1") {
		t.Fatal("second Begin for same id should fail")
	}
	if !f.Begin("n2") {
		t.Fatal("Begin for a different id should succeed")
	}
	if !f.Active("n1") {
		t.Error("n1 should be active")
	}

	f.End("n1")
	if f.Active("n1") {
		t.Error("n1 should be cleared after End")
	}
	if !f.Begin("n1") {
		t.Error("Begin should succeed again after End")
	}

	f.End("never-started")
}
