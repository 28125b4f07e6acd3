package highlight

import (
	"strings"
	"testing"
)

func TestApplyCaseInsensitive(t *testing.T) {
	in := "Hello there\nsecond hello\n"
	res := Apply(in, "hello", func(s string) string { return "[[" + s + "]]" })

	if res.Count != 2 {
		t.Fatalf("expected 2 matches, got %d", res.Count)
	}
	if len(res.LineIndex) != 2 || res.LineIndex[0] != 0 || res.LineIndex[1] != 1 {
		t.Fatalf("unexpected line indexes: %#v", res.LineIndex)
	}
	if !strings.Contains(res.Text, "[[Hello]]") || !strings.Contains(res.Text, "[[hello]]") {
		t.Fatalf("highlight wrapper not applied: %q", res.Text)
	}
}

func TestApplyCountsStyledLinesWithoutRewriting(t *testing.T) {
	in := "\x1b[1mhello styled\x1b[0m\nplain hello\n"
	res := Apply(in, "hello", func(s string) string { return "<" + s + ">" })

	if res.Count != 2 {
		t.Fatalf("expected both lines to count, got %d", res.Count)
	}
	if !strings.Contains(res.Text, "\x1b[1mhello styled\x1b[0m") {
		t.Fatalf("styled line must keep its original bytes: %q", res.Text)
	}
	if !strings.Contains(res.Text, "plain <hello>") {
		t.Fatalf("plain line must be wrapped: %q", res.Text)
	}
}

func TestApplyEmptyQueryPassesThrough(t *testing.T) {
	in := "anything at all\n"
	res := Apply(in, "   ", func(s string) string { return "<" + s + ">" })
	if res.Text != in || res.Count != 0 {
		t.Fatalf("expected pass-through for blank query, got %q count=%d", res.Text, res.Count)
	}
}

func TestApplyMultipleMatchesOnOneLine(t *testing.T) {
	res := Apply("ha ha ha", "ha", func(s string) string { return "<" + s + ">" })
	if res.Count != 3 {
		t.Fatalf("expected 3 matches, got %d", res.Count)
	}
	if res.Text != "<ha> <ha> <ha>" {
		t.Fatalf("unexpected output: %q", res.Text)
	}
	if len(res.LineIndex) != 1 || res.LineIndex[0] != 0 {
		t.Fatalf("unexpected line indexes: %#v", res.LineIndex)
	}
}
