package answer

import (
	"context"
	"errors"
	"testing"

	"voice-agent/internal/knowledge"

	openai "github.com/sashabaranov/go-openai"
)

type stubChat struct {
	resp openai.ChatCompletionResponse
	err  error
}

func (s stubChat) CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return s.resp, s.err
}

func completion(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: text}},
		},
	}
}

func TestOpenAIBackendAnswer(t *testing.T) {
	b := NewOpenAIBackend(stubChat{resp: completion("  we build chatbots  ")},
		knowledge.NewService(knowledge.NewMemoryRepository(nil)), OpenAIBackendConfig{}, nil)

	got, err := b.Answer(context.Background(), "What do you build?")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "we build chatbots" {
		t.Fatalf("expected trimmed completion, got %q", got)
	}
}

func TestOpenAIBackendNotConfigured(t *testing.T) {
	b := NewOpenAIBackend(nil, nil, OpenAIBackendConfig{}, nil)
	_, err := b.Answer(context.Background(), "hello")
	if KindOf(err) != FailureNotConfigured {
		t.Fatalf("expected not_configured, got %v", err)
	}
}

func TestOpenAIBackendQuota(t *testing.T) {
	b := NewOpenAIBackend(stubChat{err: &openai.APIError{HTTPStatusCode: 429}}, nil, OpenAIBackendConfig{}, nil)
	_, err := b.Answer(context.Background(), "hello")
	if KindOf(err) != FailureQuota {
		t.Fatalf("expected quota, got %v", err)
	}
}

func TestOpenAIBackendTimeout(t *testing.T) {
	b := NewOpenAIBackend(stubChat{err: context.DeadlineExceeded}, nil, OpenAIBackendConfig{}, nil)
	_, err := b.Answer(context.Background(), "hello")
	if KindOf(err) != FailureTimeout {
		t.Fatalf("expected timeout, got %v", err)
	}
}

func TestOpenAIBackendServerError(t *testing.T) {
	b := NewOpenAIBackend(stubChat{err: &openai.APIError{HTTPStatusCode: 503}}, nil, OpenAIBackendConfig{}, nil)
	_, err := b.Answer(context.Background(), "hello")
	if KindOf(err) != FailureUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestOpenAIBackendEmptyCompletion(t *testing.T) {
	b := NewOpenAIBackend(stubChat{resp: completion("   ")}, nil, OpenAIBackendConfig{}, nil)
	_, err := b.Answer(context.Background(), "hello")
	if KindOf(err) != FailureUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestGreet(t *testing.T) {
	b := NewOpenAIBackend(stubChat{resp: completion("Hello there!")}, nil, OpenAIBackendConfig{}, nil)
	got, err := b.Greet(context.Background(), "+911234567890")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "Hello there!" {
		t.Fatalf("unexpected greeting %q", got)
	}

	down := NewOpenAIBackend(stubChat{err: errors.New("down")}, nil, OpenAIBackendConfig{}, nil)
	if _, err := down.Greet(context.Background(), "+911234567890"); err == nil {
		t.Fatalf("expected error")
	}
}
