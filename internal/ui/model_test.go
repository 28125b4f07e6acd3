package ui

import (
	"strings"
	"testing"

	"persona-trace/internal/archive"
	"persona-trace/internal/config"
)

func testConversation(id, title string) archive.Conversation {
	return archive.Conversation{ID: id, Title: title}
}

func TestConvItemLabels(t *testing.T) {
	item := convItem{c: testConversation("c1", "Osho on silence")}
	if item.Title() != "Osho on silence" {
		t.Fatalf("unexpected title: %q", item.Title())
	}
	if !strings.HasPrefix(item.Description(), "Osho | ") {
		t.Fatalf("expected persona prefix in description, got %q", item.Description())
	}

	item.cleaned = true
	if item.Title() != "* Osho on silence" {
		t.Fatalf("expected cleaned marker, got %q", item.Title())
	}
}

func TestApplyFiltersKeepsSelectionWhenPossible(t *testing.T) {
	m := NewModel(config.Config{}, nil, nil, nil)
	m.conversations = []archive.Conversation{
		testConversation("a", "Osho on fear"),
		testConversation("b", "Neville on fear"),
		testConversation("c", "Osho on love"),
	}
	m.selectedID = "b"
	m.applyFilters()
	if m.selectedID != "b" {
		t.Fatalf("expected selection to survive, got %q", m.selectedID)
	}

	m.searchQuery = "osho"
	m.applyFilters()
	if m.selectedID != "a" {
		t.Fatalf("expected selection to fall back to first visible, got %q", m.selectedID)
	}
	if len(m.filtered) != 2 {
		t.Fatalf("expected 2 visible conversations, got %d", len(m.filtered))
	}
}

func TestRemoveConversationDropsSelection(t *testing.T) {
	m := NewModel(config.Config{}, nil, nil, nil)
	m.conversations = []archive.Conversation{
		testConversation("a", "First"),
		testConversation("b", "Second"),
	}
	m.selectedID = "a"
	m.applyFilters()

	m.removeConversation("a")
	if len(m.conversations) != 1 || m.conversations[0].ID != "b" {
		t.Fatalf("expected only b to remain, got %#v", m.conversations)
	}
	if m.selectedID != "b" {
		t.Fatalf("expected selection to move to the remaining conversation, got %q", m.selectedID)
	}
}

func TestNewModelKeepsInitialLoadCancelable(t *testing.T) {
	m := NewModel(config.Config{}, nil, nil, nil)
	if m.loadCancel == nil {
		t.Fatalf("expected the initial load's cancel handle on the returned model")
	}
	if m.initialLoad == nil {
		t.Fatalf("expected a prepared initial load command")
	}
	if m.Init() == nil {
		t.Fatalf("expected Init to return the startup commands")
	}
}

func TestLoadCmdCancelsInFlightLoad(t *testing.T) {
	m := NewModel(config.Config{}, nil, nil, nil)
	canceled := false
	m.loadCancel = func() { canceled = true }

	if cmd := m.loadCmd(); cmd == nil {
		t.Fatalf("expected a new load command")
	}
	if !canceled {
		t.Fatalf("expected a superseding load to cancel the in-flight one")
	}
	if m.loadCancel == nil {
		t.Fatalf("expected a fresh cancel handle after superseding")
	}
}

func TestShorten(t *testing.T) {
	if got := shorten("short", 10); got != "short" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := shorten("a very long conversation title", 10); got != "a very ..." {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestThreadMarkdownEmptyConversation(t *testing.T) {
	out := threadMarkdown(testConversation("c1", "Empty"))
	if !strings.Contains(out, "# Empty") {
		t.Fatalf("expected title heading, got:\n%s", out)
	}
	if !strings.Contains(out, "no displayable messages") {
		t.Fatalf("expected empty-thread placeholder, got:\n%s", out)
	}
}
