package answer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"voice-agent/internal/knowledge"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient is the slice of the OpenAI client the backend needs. Satisfied
// by *openai.Client; tests substitute a stub.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

const (
	answerSystemPrompt = "You are a helpful customer service agent for NextCore AI, a Bangalore-based " +
		"digital transformation company. Provide clear, concise responses about our services. " +
		"Always be professional and helpful. Keep responses under 80 words for phone calls."

	greetingSystemPrompt = "You are a professional customer service representative for NextCore AI, a " +
		"Bangalore-based digital transformation company. Be warm, helpful, and concise. " +
		"Respond in under 50 words."

	defaultAnswerTimeout = 10 * time.Second
)

// OpenAIBackend answers questions by retrieving knowledge-base context and
// asking the chat model for a conversational phone-sized reply.
type OpenAIBackend struct {
	client    ChatClient
	knowledge *knowledge.Service
	model     string
	timeout   time.Duration
	log       *slog.Logger
}

type OpenAIBackendConfig struct {
	Model   string
	Timeout time.Duration
}

// NewOpenAIBackend returns a backend over the given chat client. A nil client
// means the API key was never configured; Answer then fails with
// FailureNotConfigured so the resolver can fall through.
func NewOpenAIBackend(client ChatClient, ks *knowledge.Service, cfg OpenAIBackendConfig, log *slog.Logger) *OpenAIBackend {
	if cfg.Model == "" {
		cfg.Model = openai.GPT3Dot5Turbo
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultAnswerTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &OpenAIBackend{
		client:    client,
		knowledge: ks,
		model:     cfg.Model,
		timeout:   cfg.Timeout,
		log:       log,
	}
}

func (b *OpenAIBackend) Answer(ctx context.Context, question string) (string, error) {
	if b.client == nil {
		return "", newFailure(FailureNotConfigured, errors.New("openai api key not set"))
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	// Retrieval failures only cost us context, not the whole answer.
	contextBlock := ""
	if b.knowledge != nil {
		block, err := b.knowledge.Context(ctx, question)
		if err != nil {
			b.log.Warn("knowledge retrieval failed", "err", err)
		} else {
			contextBlock = block
		}
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: answerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: answerPrompt(question, contextBlock)},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", newFailure(FailureUnavailable, errors.New("no choices in completion"))
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", newFailure(FailureUnavailable, errors.New("empty completion"))
	}
	return text, nil
}

// Greet produces a short personalized greeting for the caller. Callers fall
// back to a canned greeting on error.
func (b *OpenAIBackend) Greet(ctx context.Context, callerNumber string) (string, error) {
	if b.client == nil {
		return "", newFailure(FailureNotConfigured, errors.New("openai api key not set"))
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"A customer with number %s just called NextCore AI. Greet them politely and ask how we can "+
			"assist with NextCore AI services. Keep it brief and professional.", callerNumber)

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: greetingSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   100,
		Temperature: 0.7,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", newFailure(FailureUnavailable, errors.New("no choices in completion"))
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", newFailure(FailureUnavailable, errors.New("empty completion"))
	}
	return text, nil
}

func answerPrompt(question, contextBlock string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer said: %q\n\n", question)
	if contextBlock != "" {
		fmt.Fprintf(&b, "Relevant information about NextCore AI:\n%s\n\n", contextBlock)
	}
	b.WriteString("Provide a conversational, helpful response that addresses their question directly, " +
		"mentions relevant NextCore AI services, stays under 80 words, sounds natural and " +
		"professional, and asks if they need more information.")
	return b.String()
}

// classify maps transport and API errors onto failure kinds.
func classify(err error) *Failure {
	if errors.Is(err, context.DeadlineExceeded) {
		return newFailure(FailureTimeout, err)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == 429 {
			return newFailure(FailureQuota, err)
		}
		return newFailure(FailureUnavailable, err)
	}
	return newFailure(FailureUnavailable, err)
}
