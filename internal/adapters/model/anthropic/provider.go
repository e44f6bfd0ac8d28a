package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
)

const openingPrefix = "You opened the conversation with:\n"

// Provider adapts the Messages API to ports.ModelProvider.
type Provider struct {
	client anthropic.Client
}

var _ ports.ModelProvider = (*Provider)(nil)

// New builds a provider. Retries are disabled; a failed turn surfaces to the
// user who decides whether to resend.
func New(apiKey string, opts ...option.RequestOption) *Provider {
	base := []option.RequestOption{option.WithMaxRetries(0)}
	if apiKey != "" {
		base = append(base, option.WithAPIKey(apiKey))
	}

	return &Provider{client: anthropic.NewClient(append(base, opts...)...)}
}

func (p *Provider) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	msg, err := p.client.Messages.New(ctx, buildParams(req))
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			reply.WriteString(text.Text)
		}
	}

	return reply.String(), nil
}

func (p *Provider) Stream(ctx context.Context, req domain.CompletionRequest, onDelta func(string)) error {
	stream := p.client.Messages.NewStreaming(ctx, buildParams(req))
	defer func() { _ = stream.Close() }()

	for stream.Next() {
		event, ok := stream.Current().AsAny().(anthropic.ContentBlockDeltaEvent)
		if !ok {
			continue
		}
		if delta, ok := event.Delta.AsAny().(anthropic.TextDelta); ok && delta.Text != "" && onDelta != nil {
			onDelta(delta.Text)
		}
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("stream message: %w", err)
	}

	return nil
}

// buildParams maps a completion request onto the Messages API. The API
// requires the first message to come from the user, so assistant messages
// that open the transcript (the greeting) are moved into the system prompt.
// top_p is only sent when it narrows sampling.
func buildParams(req domain.CompletionRequest) anthropic.MessageNewParams {
	system := req.System
	messages := make([]anthropic.MessageParam, 0, len(req.Messages))

	leading := true
	for _, utterance := range req.Messages {
		if leading && utterance.Role == domain.RoleAssistant {
			system += "\n\n" + openingPrefix + utterance.Content
			continue
		}
		leading = false

		block := anthropic.NewTextBlock(utterance.Content)
		switch utterance.Role {
		case domain.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(block))
		case domain.RoleUser:
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   int64(req.MaxTokens),
		Messages:    messages,
		Temperature: anthropic.Float(clampTemperature(req.Temperature)),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: strings.TrimSpace(system)}}
	}
	if req.TopP > 0 && req.TopP < 1 {
		params.TopP = anthropic.Float(req.TopP)
	}

	return params
}

// clampTemperature fits the OpenAI-style 0..2 range into 0..1.
func clampTemperature(t float64) float64 {
	if t > 1 {
		return 1
	}
	if t < 0 {
		return 0
	}
	return t
}
