// Package summarize answers the one natural-language command the viewer
// understands: summarizing a persona's conversations about a topic.
package summarize

import (
	"errors"
	"regexp"
	"strings"

	"persona-trace/internal/classify"
)

// Usage is shown verbatim whenever a prompt does not match the command.
const Usage = `Usage: Summarize all <Osho|Neville|Lester>-conversations about <topic>`

var ErrUsage = errors.New(Usage)

// Request is a parsed summarization command.
type Request struct {
	Persona string
	Topic   string
}

// The command grammar is deliberately this narrow: one fixed phrasing,
// one of the declared persona names, topic free text to end of input.
var commandRe = regexp.MustCompile(`(?i)^\s*summarize all\s+([a-z]+)-conversations about\s+(.+?)\s*$`)

// Interpret parses the command. Anything that does not match the full
// pattern, including an unknown persona name, is rejected with ErrUsage;
// there are no partial matches.
func Interpret(prompt string) (Request, error) {
	m := commandRe.FindStringSubmatch(prompt)
	if m == nil {
		return Request{}, ErrUsage
	}
	persona, ok := classify.Known(m[1])
	if !ok {
		return Request{}, ErrUsage
	}
	topic := strings.TrimSpace(m[2])
	if topic == "" {
		return Request{}, ErrUsage
	}
	return Request{Persona: persona, Topic: topic}, nil
}
