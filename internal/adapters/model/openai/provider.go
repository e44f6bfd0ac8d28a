package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
)

const (
	GroqBaseURL   = "https://api.groq.com/openai/v1"
	OpenAIBaseURL = "https://api.openai.com/v1"

	completionsPath   = "chat/completions"
	maxErrorBodyBytes = 4096
	doneSentinel      = "[DONE]"
)

// Provider talks to any OpenAI-compatible chat completions endpoint. Groq is
// the default target.
type Provider struct {
	BaseURL        string
	APIKey         string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.ModelProvider = (*Provider)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	Temperature         float64       `json:"temperature"`
	TopP                float64       `json:"top_p"`
	MaxCompletionTokens int           `json:"max_completion_tokens,omitempty"`
	Stream              bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("chat completions: status %d", e.StatusCode)
	}
	if e.Type == "" {
		return fmt.Sprintf("chat completions: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("chat completions: status %d: %s: %s", e.StatusCode, e.Type, e.Message)
}

func (p *Provider) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	ctx, cancel := p.requestContext(ctx)
	defer cancel()

	resp, err := p.post(ctx, buildRequest(req, false))
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", errors.New("chat completion has no choices")
	}

	return payload.Choices[0].Message.Content, nil
}

// Stream posts a streaming request and hands every content delta to
// onDelta in arrival order.
func (p *Provider) Stream(ctx context.Context, req domain.CompletionRequest, onDelta func(string)) error {
	ctx, cancel := p.requestContext(ctx)
	defer cancel()

	resp, err := p.post(ctx, buildRequest(req, true))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	scanner := newSSEScanner(resp.Body)
	for scanner.Next() {
		data := scanner.Data()
		if data == doneSentinel {
			return nil
		}

		var chunk chatChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return fmt.Errorf("decode stream chunk: %w", err)
		}
		if chunk.Error != nil {
			return fmt.Errorf("stream error: %s: %s", chunk.Error.Type, chunk.Error.Message)
		}

		for _, choice := range chunk.Choices {
			if choice.Delta.Content != "" && onDelta != nil {
				onDelta(choice.Delta.Content)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}

	return nil
}

func buildRequest(req domain.CompletionRequest, stream bool) chatRequest {
	wire := chatRequest{
		Model:               req.Model,
		Temperature:         req.Temperature,
		TopP:                req.TopP,
		MaxCompletionTokens: req.MaxTokens,
		Stream:              stream,
	}

	if req.System != "" {
		wire.Messages = append(wire.Messages, chatMessage{Role: string(domain.RoleSystem), Content: req.System})
	}
	for _, message := range req.Messages {
		wire.Messages = append(wire.Messages, chatMessage{Role: string(message.Role), Content: message.Content})
	}

	return wire
}

func (p *Provider) post(ctx context.Context, body chatRequest) (*http.Response, error) {
	endpoint, err := p.endpoint()
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if body.Stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}
	if p.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.APIKey)
	}

	resp, err := p.httpClient().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send chat request: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()
		return nil, decodeStatusError(resp)
	}

	return resp, nil
}

func decodeStatusError(resp *http.Response) error {
	statusErr := &StatusError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	var payload struct {
		Error apiError `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error.Message != "" {
		statusErr.Type = payload.Error.Type
		statusErr.Message = payload.Error.Message
		return statusErr
	}

	statusErr.Message = strings.TrimSpace(string(raw))
	return statusErr
}

func (p *Provider) endpoint() (string, error) {
	baseURL := p.BaseURL
	if baseURL == "" {
		baseURL = GroqBaseURL
	}

	parsed, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("base url host is required")
	}

	return parsed.JoinPath(completionsPath).String(), nil
}

func (p *Provider) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return http.DefaultClient
}

func (p *Provider) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := p.RequestTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return context.WithTimeout(ctx, timeout)
}
