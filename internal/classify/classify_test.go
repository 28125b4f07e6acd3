package classify

import (
	"fmt"
	"testing"

	"persona-trace/internal/archive"
)

func assistantChain(texts ...string) archive.Conversation {
	// texts are given tip-first; each node's parent is the next one.
	mapping := make(map[string]archive.Node, len(texts))
	for i, text := range texts {
		id := fmt.Sprintf("n%d", i)
		parent := fmt.Sprintf("n%d", i+1)
		if i == len(texts)-1 {
			parent = ""
		}
		mapping[id] = archive.Node{
			ID:     id,
			Parent: parent,
			Message: &archive.Message{
				ID:      id,
				Author:  archive.Author{Role: archive.RoleAssistant},
				Content: archive.Content{Parts: archive.Parts{text}},
			},
		}
	}
	return archive.Conversation{ID: "c", Mapping: mapping, CurrentNode: "n0"}
}

func TestClassifyTitleWinsCaseInsensitively(t *testing.T) {
	c := assistantChain("this message mentions Lester")
	c.Title = "Evening talks with OSHO"

	name, ok := Classify(c)
	if !ok || name != "Osho" {
		t.Fatalf("expected title match Osho, got %q ok=%v", name, ok)
	}
}

func TestClassifyFallsBackToAssistantContent(t *testing.T) {
	c := assistantChain(
		"nothing to see here",
		"as neville goddard taught, assume the feeling",
	)
	c.Title = "Untagged conversation"

	name, ok := Classify(c)
	if !ok || name != "Neville" {
		t.Fatalf("expected content match Neville, got %q ok=%v", name, ok)
	}
}

func TestClassifyStopsAfterScanLimit(t *testing.T) {
	// Persona name appears only in the sixth assistant message from the
	// tip, one past the scan bound.
	c := assistantChain(
		"one", "two", "three", "four", "five",
		"lester levenson on releasing",
	)
	c.Title = "Untagged"

	if name, ok := Classify(c); ok {
		t.Fatalf("expected no classification past the scan limit, got %q", name)
	}
}

func TestClassifySkipsNonAssistantMessagesUncounted(t *testing.T) {
	c := assistantChain("one", "two", "three", "four", "osho on silence")
	// Insert user messages between tip and root; they traverse without
	// consuming the assistant budget.
	c.Mapping["u0"] = archive.Node{
		ID:     "u0",
		Parent: "n0",
		Message: &archive.Message{
			ID:      "u0",
			Author:  archive.Author{Role: archive.RoleUser},
			Content: archive.Content{Parts: archive.Parts{"tell me more"}},
		},
	}
	c.CurrentNode = "u0"
	c.Title = "Untagged"

	name, ok := Classify(c)
	if !ok || name != "Osho" {
		t.Fatalf("expected fifth assistant message to still be scanned, got %q ok=%v", name, ok)
	}
}

func TestKnownCanonicalizes(t *testing.T) {
	name, ok := Known("neville")
	if !ok || name != "Neville" {
		t.Fatalf("expected canonical Neville, got %q ok=%v", name, ok)
	}
	if _, ok := Known("socrates"); ok {
		t.Fatalf("expected unknown persona to be rejected")
	}
}
