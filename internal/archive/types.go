package archive

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type Author struct {
	Role string `json:"role"`
}

// Parts is the ordered text fragments of a message. Exports mix plain
// strings with structured fragments (images, attachments); only the
// string fragments carry displayable text.
type Parts []string

func (p *Parts) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode content parts: %w", err)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	*p = out
	return nil
}

type Content struct {
	Parts Parts `json:"parts"`
}

type Message struct {
	ID         string  `json:"id"`
	Author     Author  `json:"author"`
	Content    Content `json:"content"`
	CreateTime float64 `json:"create_time"`
}

// Text joins the message's content parts into one displayable string.
func (m Message) Text() string {
	joined := strings.Join(m.Content.Parts, "\n")
	return strings.TrimSpace(joined)
}

// wellFormed reports whether the message carries enough structure to
// display: an author role and at least one content part.
func (m Message) wellFormed() bool {
	return m.Author.Role != "" && len(m.Content.Parts) > 0
}

// Node is one arena entry of a conversation tree. Parent and Children
// are node ids into the conversation's Mapping, never live references.
type Node struct {
	ID       string   `json:"id"`
	Message  *Message `json:"message"`
	Parent   string   `json:"parent"`
	Children []string `json:"children"`
}

type Conversation struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	CreateTime  float64         `json:"create_time"`
	Mapping     map[string]Node `json:"mapping"`
	CurrentNode string          `json:"current_node"`
}

func (c Conversation) DisplayTitle() string {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return "(untitled " + shortID(c.ID) + ")"
	}
	return title
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// MessageCount counts the well-formed messages along the active branch.
func (c Conversation) MessageCount() int {
	return len(Thread(c))
}
