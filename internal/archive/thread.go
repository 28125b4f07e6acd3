package archive

// Thread walks parent links from the conversation's current node and
// returns the active branch root-to-tip. Nodes missing from the mapping
// end the walk; nodes without a well-formed message are skipped. A
// repeated id ends the walk so a corrupt export cannot loop.
func Thread(c Conversation) []Message {
	out := make([]Message, 0, len(c.Mapping))
	seen := make(map[string]struct{}, len(c.Mapping))

	cur := c.CurrentNode
	for cur != "" {
		if _, dup := seen[cur]; dup {
			break
		}
		seen[cur] = struct{}{}

		node, ok := c.Mapping[cur]
		if !ok {
			break
		}
		if m := node.Message; m != nil && m.wellFormed() {
			out = append(out, *m)
		}
		cur = node.Parent
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// WalkBranch visits the active branch tip-to-root, calling fn for every
// node present in the mapping, including ones without a message. The
// same dangling-id and cycle rules as Thread apply.
func WalkBranch(c Conversation, fn func(Node) bool) {
	seen := make(map[string]struct{}, len(c.Mapping))
	cur := c.CurrentNode
	for cur != "" {
		if _, dup := seen[cur]; dup {
			return
		}
		seen[cur] = struct{}{}

		node, ok := c.Mapping[cur]
		if !ok {
			return
		}
		if !fn(node) {
			return
		}
		cur = node.Parent
	}
}
