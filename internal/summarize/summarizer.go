package summarize

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"persona-trace/internal/archive"
)

var (
	// ErrNoContent means the command parsed but nothing in the archive
	// mentioned the topic; the remote API is not contacted.
	ErrNoContent = errors.New("no content found for that topic")

	// ErrMissingAPIKey is detected before any network call.
	ErrMissingAPIKey = errors.New("summarization needs an API key: set OPENAI_API_KEY")
)

// CompletionClient is the slice of the completion API the summarizer
// uses. Tests substitute a mock.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Summarizer struct {
	client CompletionClient
	model  string
}

// New builds a summarizer against the configured completion endpoint.
// An empty API key leaves the client unset; Run reports the missing
// credential only when a request would actually need it.
func New(apiKey, baseURL, model string) *Summarizer {
	s := &Summarizer{model: model}
	if apiKey == "" {
		return s
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	s.client = openai.NewClientWithConfig(cfg)
	return s
}

// NewWithClient wires an explicit client, used by tests.
func NewWithClient(client CompletionClient, model string) *Summarizer {
	return &Summarizer{client: client, model: model}
}

const systemPrompt = "You are a careful reader. Summarize the provided conversation excerpts " +
	"faithfully, without inventing content that is not present in them."

// Run executes the full command: interpret, collect, and, only when
// there is material to summarize, one system+user completion request.
// The response text is returned verbatim.
func (s *Summarizer) Run(ctx context.Context, convs []archive.Conversation, prompt string) (string, error) {
	req, err := Interpret(prompt)
	if err != nil {
		return "", err
	}

	content := Collect(convs, req)
	if content == "" {
		return "", ErrNoContent
	}
	if s.client == nil {
		return "", ErrMissingAPIKey
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(req.Topic, content)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response carried no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func userPrompt(topic, content string) string {
	return fmt.Sprintf("Summarize the following excerpts about %q:\n\n%s", topic, content)
}
