package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"persona-trace/internal/archive"
	"persona-trace/internal/classify"
)

type Exporter struct {
	dir string
}

func New(dir string) (*Exporter, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve cwd: %w", err)
		}
		dir = cwd
	}
	return &Exporter{dir: dir}, nil
}

// Export writes the conversation's displayed thread as a markdown file
// named after the conversation title and returns the path.
func (e *Exporter) Export(conv archive.Conversation) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(e.dir, SafeFileName(conv.DisplayTitle())+".md")
	doc := BuildDocument(conv, time.Now().UTC())
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

// BuildDocument renders the full export document: a metadata header
// followed by the thread.
func BuildDocument(conv archive.Conversation, now time.Time) string {
	var b strings.Builder
	b.WriteString("# " + conv.DisplayTitle() + "\n\n")
	b.WriteString("Exported: " + now.Format(time.RFC3339) + "\n\n")
	b.WriteString("```text\n")
	persona := "unclassified"
	if name, ok := classify.Classify(conv); ok {
		persona = name
	}
	b.WriteString("assistant: " + persona + "\n")
	b.WriteString("created: " + archive.FormatCreateTime(conv.CreateTime) + "\n")
	b.WriteString(fmt.Sprintf("messages: %d\n", conv.MessageCount()))
	b.WriteString("```\n\n")
	b.WriteString(BuildThreadMarkdown(conv))
	return b.String()
}

// BuildThreadMarkdown renders the active branch root-to-tip with a
// heading per message.
func BuildThreadMarkdown(conv archive.Conversation) string {
	persona, _ := classify.Classify(conv)

	var b strings.Builder
	for _, m := range archive.Thread(conv) {
		text := m.Text()
		if text == "" {
			continue
		}
		b.WriteString("## " + roleHeading(m.Author.Role, persona) + "\n\n")
		b.WriteString(text + "\n\n")
	}
	return strings.TrimSpace(b.String()) + "\n"
}

func roleHeading(role, persona string) string {
	switch role {
	case archive.RoleUser:
		return "You"
	case archive.RoleAssistant:
		if persona != "" {
			return persona
		}
		return "Assistant"
	case archive.RoleSystem:
		return "System"
	case "":
		return "Unknown"
	default:
		return strings.ToUpper(role[:1]) + role[1:]
	}
}

// SafeFileName turns a conversation title into a usable file name.
func SafeFileName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "conversation"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_", "?", "_", "*", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	return replacer.Replace(s)
}
