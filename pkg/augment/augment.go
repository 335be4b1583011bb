// Package augment wraps the AI augmentation capability behind a
// request/response gateway. It shapes a notebook snapshot into a prompt,
// forwards it to a completion provider, and returns the text or a typed
// failure. It never writes to the notebook store; the caller decides
// whether to display or discard the result.
package augment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Kind selects the derived text to produce.
type Kind string

const (
	KindExplain   Kind = "explain"
	KindSummarize Kind = "summarize"
	KindQuiz      Kind = "quiz"
)

// Character budgets for forwarded content. Truncation happens before
// transmission so the payload size is bounded at the source.
const (
	summarizeBudget = 2000
	quizBudget      = 1000

	// explainLevel is the fixed difficulty hint forwarded with explanations.
	explainLevel = "Intermediate"
)

// Snapshot is the read-only slice of a notebook the gateway may see.
type Snapshot struct {
	Title   string
	Content string
}

// Completer is the minimal contract an augmentation provider implements.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Gateway is a stateless request/response wrapper around a Completer.
// It performs no retries; retry policy belongs to the caller.
type Gateway struct {
	completer Completer
	logger    *slog.Logger
}

// NewGateway wires a provider into a gateway. A nil completer yields a
// gateway that reports ErrUnconfigured on every call.
func NewGateway(completer Completer, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{completer: completer, logger: logger}
}

// Augment produces derived text for the snapshot. Provider failures surface
// as *UnavailableError; a gateway without a provider returns ErrUnconfigured.
// Exactly one result (text or error) is delivered per call.
func (g *Gateway) Augment(ctx context.Context, kind Kind, snap Snapshot) (string, error) {
	if g.completer == nil {
		return "", ErrUnconfigured
	}

	prompt, err := BuildPrompt(kind, snap)
	if err != nil {
		return "", err
	}

	g.logger.Debug("forwarding augmentation request", "kind", kind, "prompt_len", len(prompt))

	text, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		g.logger.Warn("augmentation failed", "kind", kind, "error", err)
		return "", &UnavailableError{Kind: kind, Err: err}
	}
	return text, nil
}

// BuildPrompt shapes the snapshot into the provider prompt for the given
// kind. Explanations forward only the title plus the fixed difficulty hint;
// summaries and quizzes forward content truncated to their budgets.
func BuildPrompt(kind Kind, snap Snapshot) (string, error) {
	switch kind {
	case KindExplain:
		return fmt.Sprintf(
			"Explain the concept of %q to a student at a %q level.\n"+
				"Keep it concise (under 150 words) and use bullet points for key takeaways.",
			snap.Title, explainLevel), nil

	case KindSummarize:
		return fmt.Sprintf(
			"Summarize the following notes into a concise paragraph with key bullet points:\n\n%s",
			Truncate(snap.Content, summarizeBudget)), nil

	case KindQuiz:
		var b strings.Builder
		fmt.Fprintf(&b, "Create a short 3-question multiple choice quiz based on the following notes about %q.\n\n", snap.Title)
		fmt.Fprintf(&b, "Notes:\n%s\n\n", Truncate(snap.Content, quizBudget))
		b.WriteString("Format:\n")
		b.WriteString("**Question 1:** [Question]\n")
		b.WriteString("A) [Option]\n")
		b.WriteString("B) [Option]\n")
		b.WriteString("C) [Option]\n")
		b.WriteString("**Correct Answer:** [Answer]\n")
		return b.String(), nil

	default:
		return "", fmt.Errorf("unknown augmentation kind: %q", kind)
	}
}

// Truncate cuts s to at most max bytes without splitting a rune, so a
// truncated payload is still valid UTF-8.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
