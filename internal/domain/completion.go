package domain

// CompletionRequest is the provider-neutral shape of one model call.
type CompletionRequest struct {
	Model       string
	System      string
	Messages    []Utterance
	Temperature float64
	TopP        float64
	MaxTokens   int
	Stream      bool
}

// SamplingParams carries the configured model settings between turns.
type SamplingParams struct {
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Stream      bool
}

// NewCompletionRequest pairs a rendered prompt with sampling settings. System
// utterances in the transcript are folded into the system message because
// not every provider accepts them inline.
func NewCompletionRequest(prompt Prompt, params SamplingParams) CompletionRequest {
	req := CompletionRequest{
		Model:       params.Model,
		System:      prompt.System,
		Temperature: params.Temperature,
		TopP:        params.TopP,
		MaxTokens:   params.MaxTokens,
		Stream:      params.Stream,
	}
	for _, utterance := range prompt.Transcript {
		if utterance.Role == RoleSystem {
			req.System += "\n\n" + utterance.Content
			continue
		}
		req.Messages = append(req.Messages, utterance)
	}
	return req
}
