package summarize

import (
	"strings"

	"persona-trace/internal/archive"
)

// Collect gathers the material for a summarization request: from every
// conversation whose title contains the persona name, each node along
// the active branch whose joined text mentions the topic. Excerpts are
// separated by blank lines and kept in walk order. An empty result means
// nothing matched and no remote call should be made.
func Collect(convs []archive.Conversation, req Request) string {
	personaLower := strings.ToLower(req.Persona)
	topicLower := strings.ToLower(req.Topic)

	var excerpts []string
	for _, c := range convs {
		if !strings.Contains(strings.ToLower(c.Title), personaLower) {
			continue
		}
		archive.WalkBranch(c, func(node archive.Node) bool {
			if node.Message == nil {
				return true
			}
			text := node.Message.Text()
			if text != "" && strings.Contains(strings.ToLower(text), topicLower) {
				excerpts = append(excerpts, text)
			}
			return true
		})
	}
	return strings.Join(excerpts, "\n\n")
}
