package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	default:
		return false
	}
}

// Utterance is one transcript entry. Seq starts at 1 and increases by one for
// every appended utterance.
type Utterance struct {
	Seq     int    `json:"seq"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Prompt is what gets sent to the model on each turn.
type Prompt struct {
	System     string
	Transcript []Utterance
}

const advisorInstruction = "You are a friendly career advisor for South African high-school learners in Grades 10 to 12. " +
	"Give practical guidance on career paths, subject choices, study options, bursaries and in-demand skills. " +
	"Keep answers concise and encouraging."

// Conversation is the state of one chat session: the transcript plus the
// learner context accumulated from every user message so far.
type Conversation struct {
	ID     string
	UserID string

	lexicon    *Lexicon
	context    ContextAttributes
	transcript []Utterance
}

// NewConversation starts an empty conversation. An empty userID marks a
// guest session whose messages are never persisted.
func NewConversation(id, userID string) *Conversation {
	return &Conversation{ID: id, UserID: userID, lexicon: defaultLexicon}
}

func (c *Conversation) IsGuest() bool {
	return c.UserID == ""
}

// Append adds an utterance to the transcript and returns it.
func (c *Conversation) Append(role Role, content string) Utterance {
	utterance := Utterance{
		Seq:     len(c.transcript) + 1,
		Role:    role,
		Content: content,
	}
	c.transcript = append(c.transcript, utterance)
	return utterance
}

// Merge folds a partial extraction into the accumulated context.
func (c *Conversation) Merge(partial ContextAttributes) {
	c.context.Merge(partial)
}

// Observe handles an incoming user message: it extracts attributes, merges
// them and appends the message to the transcript. The extracted partial is
// returned.
func (c *Conversation) Observe(text string) ContextAttributes {
	partial := c.lexicon.Extract(text)
	c.Merge(partial)
	c.Append(RoleUser, text)
	return partial
}

func (c *Conversation) Context() ContextAttributes {
	return c.context.Clone()
}

func (c *Conversation) Transcript() []Utterance {
	return append([]Utterance(nil), c.transcript...)
}

// LastReply returns the most recent assistant utterance, if any.
func (c *Conversation) LastReply() (Utterance, bool) {
	for i := len(c.transcript) - 1; i >= 0; i-- {
		if c.transcript[i].Role == RoleAssistant {
			return c.transcript[i], true
		}
	}
	return Utterance{}, false
}

// RenderPrompt builds the system message from the accumulated context and
// pairs it with a copy of the transcript.
func (c *Conversation) RenderPrompt() Prompt {
	return Prompt{
		System:     SystemPrompt(c.context),
		Transcript: c.Transcript(),
	}
}

// SystemPrompt renders the advisor instruction with the learner context
// embedded.
func SystemPrompt(ctx ContextAttributes) string {
	var b strings.Builder
	b.WriteString(advisorInstruction)
	b.WriteString("\n\n")

	lines := ctx.Lines()
	if len(lines) == 0 {
		b.WriteString("No learner context is known yet. Ask about their grade, career interests and activities when it helps.")
		return b.String()
	}

	b.WriteString("Known learner context:\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("Tailor your advice to this context.")

	return b.String()
}
