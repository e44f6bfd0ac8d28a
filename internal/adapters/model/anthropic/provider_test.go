package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/bnema/careerbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string   `json:"model"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
	TopP        *float64 `json:"top_p"`
	Stream      bool     `json:"stream"`
	System      []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func testRequest() domain.CompletionRequest {
	return domain.CompletionRequest{
		Model:  "claude-3-5-haiku-latest",
		System: "You are a career advisor.",
		Messages: []domain.Utterance{
			{Seq: 1, Role: domain.RoleAssistant, Content: "Here are 7 growing industries."},
			{Seq: 2, Role: domain.RoleUser, Content: "I like art"},
		},
		Temperature: 1,
		TopP:        1,
		MaxTokens:   1024,
	}
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*Provider, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, captured))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return New("test-key", option.WithBaseURL(server.URL), option.WithHTTPClient(server.Client())), captured
}

func TestProviderCompleteMovesGreetingIntoSystem(t *testing.T) {
	t.Parallel()

	provider, captured := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",`+
			`"content":[{"type":"text","text":"Consider graphic design."}],"stop_reason":"end_turn",`+
			`"usage":{"input_tokens":10,"output_tokens":5}}`)
	})

	reply, err := provider.Complete(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "Consider graphic design.", reply)

	require.Len(t, captured.System, 1)
	assert.True(t, strings.HasPrefix(captured.System[0].Text, "You are a career advisor."))
	assert.Contains(t, captured.System[0].Text, "Here are 7 growing industries.")
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "I like art", captured.Messages[0].Content[0].Text)
	assert.Equal(t, 1024, captured.MaxTokens)
	require.NotNil(t, captured.Temperature)
	assert.InDelta(t, 1.0, *captured.Temperature, 1e-9)
	assert.Nil(t, captured.TopP)
}

func TestProviderStreamEmitsTextDeltas(t *testing.T) {
	t.Parallel()

	provider, captured := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		events := []string{
			`{"type":"message_start","message":{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest","content":[],"stop_reason":null,"usage":{"input_tokens":10,"output_tokens":1}}}`,
			`{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`,
			`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Art "}}`,
			`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"school?"}}`,
			`{"type":"content_block_stop","index":0}`,
			`{"type":"message_stop"}`,
		}
		for _, event := range events {
			var head struct {
				Type string `json:"type"`
			}
			_ = json.Unmarshal([]byte(event), &head)
			_, _ = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", head.Type, event)
		}
	})

	var reply strings.Builder
	err := provider.Stream(context.Background(), testRequest(), func(delta string) {
		reply.WriteString(delta)
	})
	require.NoError(t, err)
	assert.Equal(t, "Art school?", reply.String())
	assert.True(t, captured.Stream)
}

func TestProviderSurfacesAPIErrors(t *testing.T) {
	t.Parallel()

	provider, _ := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = fmt.Fprint(w, `{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`)
	})

	_, err := provider.Complete(context.Background(), testRequest())
	assert.ErrorContains(t, err, "create message")
}

func TestBuildParamsKeepsNarrowTopPAndClampsTemperature(t *testing.T) {
	t.Parallel()

	req := testRequest()
	req.TopP = 0.9
	req.Temperature = 1.6

	params := buildParams(req)
	assert.Equal(t, 0.9, params.TopP.Value)
	assert.Equal(t, 1.0, params.Temperature.Value)
}
