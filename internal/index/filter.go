// Package index holds the in-memory conversation view and the sqlite
// store for user annotations.
package index

import (
	"strings"

	"persona-trace/internal/archive"
	"persona-trace/internal/classify"
)

// Filter derives the visible conversation list. A non-empty search term
// keeps conversations whose title contains it, case-insensitively. A
// non-empty persona set keeps conversations classified into the set;
// unclassifiable conversations drop whenever a persona filter is active.
// Input order is preserved and an empty result is valid.
func Filter(all []archive.Conversation, searchTerm string, personas map[string]struct{}) []archive.Conversation {
	searchTerm = strings.ToLower(strings.TrimSpace(searchTerm))

	out := make([]archive.Conversation, 0, len(all))
	for _, c := range all {
		if searchTerm != "" && !strings.Contains(strings.ToLower(c.Title), searchTerm) {
			continue
		}
		if len(personas) > 0 {
			name, ok := classify.Classify(c)
			if !ok {
				continue
			}
			if _, enabled := personas[name]; !enabled {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// WithoutDeleted subtracts store-deleted conversations from the loaded
// list, preserving order.
func WithoutDeleted(all []archive.Conversation, deleted map[string]struct{}) []archive.Conversation {
	if len(deleted) == 0 {
		return all
	}
	out := make([]archive.Conversation, 0, len(all))
	for _, c := range all {
		if _, gone := deleted[c.ID]; gone {
			continue
		}
		out = append(out, c)
	}
	return out
}
