// Package classify infers which assistant persona a conversation
// belongs to. Titles are authoritative; message content is the fallback.
package classify

import (
	"strings"

	"persona-trace/internal/archive"
)

// Personas is the fixed set of known assistant names, in match-priority
// order. First match wins for both title and content classification.
var Personas = []string{"Osho", "Neville", "Lester"}

// assistantScanLimit bounds how many assistant-authored messages along
// the active branch are inspected before giving up.
const assistantScanLimit = 5

// Classify returns the persona a conversation belongs to. The title is
// checked first; failing that, up to assistantScanLimit assistant
// messages are scanned walking from the current node toward the root.
// Nodes with other roles are traversed but do not count against the
// limit. ok is false when nothing matches.
func Classify(c archive.Conversation) (name string, ok bool) {
	if name, ok = matchPersona(c.Title); ok {
		return name, true
	}

	checked := 0
	archive.WalkBranch(c, func(node archive.Node) bool {
		m := node.Message
		if m == nil || m.Author.Role != archive.RoleAssistant {
			return true
		}
		if name, ok = matchPersona(m.Text()); ok {
			return false
		}
		checked++
		return checked < assistantScanLimit
	})
	return name, ok
}

// Known reports whether name is one of the declared personas,
// case-insensitively, returning the canonical spelling.
func Known(name string) (string, bool) {
	for _, p := range Personas {
		if strings.EqualFold(p, name) {
			return p, true
		}
	}
	return "", false
}

func matchPersona(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, p := range Personas {
		if strings.Contains(lower, strings.ToLower(p)) {
			return p, true
		}
	}
	return "", false
}
