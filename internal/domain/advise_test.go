package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvise(t *testing.T) {
	t.Parallel()

	const (
		software = "Have you considered learning programming languages like Python or Java?"
		business = "Building a strong portfolio and networking can be beneficial."
		art      = "Developing a portfolio and exploring different mediums can be helpful."
		clarify  = "Can you tell me more about your career interests?"
	)

	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{name: "coding", utterance: "I want to learn coding", want: software},
		{name: "marketing", utterance: "I like marketing", want: business},
		{name: "design", utterance: "I enjoy painting and design", want: art},
		{name: "unknown", utterance: "I don't know", want: clarify},
		{name: "empty", utterance: "", want: clarify},
		{name: "case insensitive", utterance: "SOFTWARE please", want: software},
		{name: "software before business", utterance: "business software", want: software},
		{name: "business before art", utterance: "creative advertising", want: business},
		{name: "substring is not a keyword", utterance: "I love artists", want: clarify},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Advise(tc.utterance))
		})
	}
}

func TestMatchRuleReportsCategory(t *testing.T) {
	t.Parallel()

	rule, ok := DefaultLexicon().MatchRule("a creative job")
	assert.True(t, ok)
	assert.Equal(t, "art", rule.Category)

	_, ok = DefaultLexicon().MatchRule("nothing here")
	assert.False(t, ok)
}
