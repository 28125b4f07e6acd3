// Package highlight wraps case-insensitive query matches in already
// ANSI-styled text without corrupting the escape sequences around them.
package highlight

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Result struct {
	Text      string
	Count     int
	LineIndex []int
}

// Apply highlights every match of query in input, line by line, calling
// wrap on each matched segment. LineIndex records which lines matched so
// the viewer can jump between them. Lines containing escape sequences
// are matched on their stripped form and left unhighlighted; glamour
// only styles a fraction of output lines, so matches still land.
func Apply(input, query string, wrap func(string) string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Text: input}
	}
	if wrap == nil {
		wrap = func(s string) string { return s }
	}

	lines := strings.SplitAfter(input, "\n")
	var out strings.Builder
	var matched []int
	total := 0

	for lineNo, line := range lines {
		hasNewline := strings.HasSuffix(line, "\n")
		core := strings.TrimSuffix(line, "\n")

		if plain := ansi.Strip(core); plain != core {
			// Styled line: count matches on the stripped text but keep
			// the original bytes so the styling survives.
			if n := countMatches(plain, query); n > 0 {
				matched = append(matched, lineNo)
				total += n
			}
			out.WriteString(core)
		} else {
			rendered, n := wrapMatches(core, query, wrap)
			if n > 0 {
				matched = append(matched, lineNo)
				total += n
			}
			out.WriteString(rendered)
		}
		if hasNewline {
			out.WriteByte('\n')
		}
	}

	return Result{Text: out.String(), Count: total, LineIndex: matched}
}

func countMatches(s, query string) int {
	return strings.Count(strings.ToLower(s), strings.ToLower(query))
}

func wrapMatches(s, query string, wrap func(string) string) (string, int) {
	lower := strings.ToLower(s)
	q := strings.ToLower(query)
	if !strings.Contains(lower, q) {
		return s, 0
	}

	var out strings.Builder
	count := 0
	start := 0
	for {
		rel := strings.Index(lower[start:], q)
		if rel < 0 {
			out.WriteString(s[start:])
			break
		}
		idx := start + rel
		end := idx + len(q)
		out.WriteString(s[start:idx])
		out.WriteString(wrap(s[idx:end]))
		count++
		start = end
	}
	return out.String(), count
}
