package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
	"google.golang.org/genai"
)

type Provider struct {
	client *genai.Client
}

var _ ports.ModelProvider = (*Provider)(nil)

type Options struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func New(ctx context.Context, opts Options) (*Provider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      opts.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  opts.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Provider{client: client}, nil
}

func (p *Provider) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	contents, config := buildRequest(req)

	resp, err := p.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}

func (p *Provider) Stream(ctx context.Context, req domain.CompletionRequest, onDelta func(string)) error {
	contents, config := buildRequest(req)

	for resp, err := range p.client.Models.GenerateContentStream(ctx, req.Model, contents, config) {
		if err != nil {
			return fmt.Errorf("stream content: %w", err)
		}
		if text := resp.Text(); text != "" && onDelta != nil {
			onDelta(text)
		}
	}

	return nil
}

// buildRequest maps the transcript onto Gemini contents. The assistant role
// is called "model" there; the system prompt travels as SystemInstruction.
func buildRequest(req domain.CompletionRequest) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, utterance := range req.Messages {
		switch utterance.Role {
		case domain.RoleUser:
			contents = append(contents, genai.NewContentFromText(utterance.Content, genai.RoleUser))
		case domain.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(utterance.Content, genai.RoleModel))
		}
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		TopP:            genai.Ptr(float32(req.TopP)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if system := strings.TrimSpace(req.System); system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	return contents, config
}
