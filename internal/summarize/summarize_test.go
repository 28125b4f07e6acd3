package summarize

import (
	"context"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"persona-trace/internal/archive"
)

type mockClient struct {
	calls   int
	lastReq openai.ChatCompletionRequest
	resp    openai.ChatCompletionResponse
	err     error
}

func (m *mockClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.calls++
	m.lastReq = req
	return m.resp, m.err
}

func conversation(id, title string, texts ...string) archive.Conversation {
	mapping := make(map[string]archive.Node, len(texts))
	prev := ""
	for i, text := range texts {
		nodeID := id + "-n" + string(rune('a'+i))
		mapping[nodeID] = archive.Node{
			ID:     nodeID,
			Parent: prev,
			Message: &archive.Message{
				ID:      nodeID,
				Author:  archive.Author{Role: archive.RoleAssistant},
				Content: archive.Content{Parts: archive.Parts{text}},
			},
		}
		prev = nodeID
	}
	return archive.Conversation{ID: id, Title: title, Mapping: mapping, CurrentNode: prev}
}

func TestInterpretAcceptsCommand(t *testing.T) {
	req, err := Interpret("Summarize all Lester-conversations about fear")
	require.NoError(t, err)
	require.Equal(t, "Lester", req.Persona)
	require.Equal(t, "fear", req.Topic)
}

func TestInterpretIsCaseInsensitive(t *testing.T) {
	req, err := Interpret("  summarize all NEVILLE-conversations about the law of assumption ")
	require.NoError(t, err)
	require.Equal(t, "Neville", req.Persona)
	require.Equal(t, "the law of assumption", req.Topic)
}

func TestInterpretRejectsMalformed(t *testing.T) {
	for _, prompt := range []string{
		"",
		"summarize Osho about fear",
		"Summarize all Socrates-conversations about virtue",
		"Summarize all Osho-conversations about",
		"please Summarize all Osho-conversations about love",
	} {
		_, err := Interpret(prompt)
		require.ErrorIs(t, err, ErrUsage, "prompt %q", prompt)
	}
}

func TestCollectGathersTopicExcerpts(t *testing.T) {
	convs := []archive.Conversation{
		conversation("c1", "Osho on silence", "fear is a doorway", "unrelated aside"),
		conversation("c2", "Neville lecture", "fear again"),
		conversation("c3", "Osho night talk", "nothing relevant"),
	}

	out := Collect(convs, Request{Persona: "Osho", Topic: "fear"})
	require.Contains(t, out, "fear is a doorway")
	require.NotContains(t, out, "fear again", "other personas' conversations must not contribute")
	require.NotContains(t, out, "unrelated aside")
}

func TestRunReturnsNoContentWithoutCallingAPI(t *testing.T) {
	client := &mockClient{}
	s := NewWithClient(client, "gpt-4o-mini")

	convs := []archive.Conversation{conversation("c1", "Osho talk", "about silence")}
	_, err := s.Run(context.Background(), convs, "Summarize all Osho-conversations about taxes")
	require.ErrorIs(t, err, ErrNoContent)
	require.Zero(t, client.calls, "no completion request may be sent for an empty collection")
}

func TestRunReportsMissingAPIKeyOnlyWhenNeeded(t *testing.T) {
	s := New("", "", "gpt-4o-mini")
	convs := []archive.Conversation{conversation("c1", "Osho talk", "fear dissolves in awareness")}

	_, err := s.Run(context.Background(), convs, "Summarize all Osho-conversations about fear")
	require.ErrorIs(t, err, ErrMissingAPIKey)

	// An empty collection short-circuits before the key check.
	_, err = s.Run(context.Background(), convs, "Summarize all Osho-conversations about taxes")
	require.ErrorIs(t, err, ErrNoContent)
}

func TestRunSendsExcerptsAndReturnsResponseVerbatim(t *testing.T) {
	client := &mockClient{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "Fear dissolves when observed."}},
			},
		},
	}
	s := NewWithClient(client, "gpt-4o-mini")
	convs := []archive.Conversation{conversation("c1", "Osho talk", "fear dissolves in awareness")}

	out, err := s.Run(context.Background(), convs, "Summarize all Osho-conversations about fear")
	require.NoError(t, err)
	require.Equal(t, "Fear dissolves when observed.", out)
	require.Equal(t, 1, client.calls)
	require.Equal(t, "gpt-4o-mini", client.lastReq.Model)
	require.Len(t, client.lastReq.Messages, 2)
	require.Equal(t, openai.ChatMessageRoleSystem, client.lastReq.Messages[0].Role)
	require.True(t, strings.Contains(client.lastReq.Messages[1].Content, "fear dissolves in awareness"))
}

func TestRunRejectsBadPromptBeforeAnythingElse(t *testing.T) {
	client := &mockClient{}
	s := NewWithClient(client, "gpt-4o-mini")

	_, err := s.Run(context.Background(), nil, "tell me a joke")
	require.ErrorIs(t, err, ErrUsage)
	require.Zero(t, client.calls)
}
