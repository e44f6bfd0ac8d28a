package chat

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlainRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := NewRenderer(Options{Plain: true, WordWrap: 100})
	require.NoError(t, err)
	return r
}

func TestRendererIndustries(t *testing.T) {
	t.Parallel()

	output := newPlainRenderer(t).Industries([]domain.Industry{
		{Name: "Healthcare", GrowthEstimate: "15% annually"},
		{Name: "Renewable Energy", GrowthEstimate: "8% annually"},
	})

	assert.Contains(t, output, "Growing industries")
	assert.Contains(t, output, "industries: 2")
	assert.Contains(t, output, " 1. Healthcare (15% annually)")
	assert.Contains(t, output, " 2. Renewable Energy (8% annually)")
}

func TestRendererIndustriesEmpty(t *testing.T) {
	t.Parallel()

	output := newPlainRenderer(t).Industries(nil)
	assert.Contains(t, output, "No industries available.")
}

func TestRendererContext(t *testing.T) {
	t.Parallel()

	r := newPlainRenderer(t)

	assert.Equal(t, "Nothing learned about you yet.", r.Context(domain.ContextAttributes{}))

	output := r.Context(domain.ContextAttributes{
		GradeLevel:     "11th",
		CareerInterest: "nurse",
		Activities:     []string{"volunteer", "internship"},
	})
	assert.Contains(t, output, "Grade level: 11th")
	assert.Contains(t, output, "Career interest: nurse")
	assert.Contains(t, output, "Activities: volunteer, internship")
}

func TestRendererHistory(t *testing.T) {
	t.Parallel()

	r := newPlainRenderer(t)

	assert.Contains(t, r.History(nil), "No saved messages.")

	output := r.History([]domain.HistoryMessage{
		{Role: domain.RoleUser, Content: "I like robots", CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		{Role: domain.RoleAssistant, Content: "Try a robotics club."},
	})
	assert.Contains(t, output, "messages: 2")
	assert.Contains(t, output, "You:")
	assert.Contains(t, output, "I like robots")
	assert.Contains(t, output, "Advisor:")
	assert.Contains(t, output, "Try a robotics club.")
}

func TestRendererReplyRendersMarkdown(t *testing.T) {
	t.Parallel()

	output := newPlainRenderer(t).Reply("1. **Healthcare** - Estimated Growth: 15% annually")
	assert.Contains(t, output, "Healthcare")
	assert.NotContains(t, output, "**")
}

func TestRunWithSpinnerReturnsSendError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	wantErr := errors.New("model down")

	err := RunWithSpinner(context.Background(), nil, &out, "Thinking...", func(_ context.Context, progress func(string)) error {
		progress("partial ")
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
}

func TestRunWithSpinnerSucceedsAfterProgress(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	var seen int

	err := RunWithSpinner(context.Background(), nil, &out, "Thinking...", func(_ context.Context, progress func(string)) error {
		for _, delta := range []string{"Nursing ", "", "is in demand."} {
			progress(delta)
			seen++
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, seen)
}

func TestReplySpinnerModelViewHidesWhenDone(t *testing.T) {
	t.Parallel()

	m := newReplySpinnerModel("Thinking...", nil, nil)
	assert.Contains(t, m.View(), "Thinking...")
	assert.NotContains(t, m.View(), "esc to cancel")

	updated, _ := m.Update(replyDoneMsg{})
	assert.Empty(t, updated.View())

	ticked, cmd := m.Update(spinner.TickMsg{})
	assert.Contains(t, ticked.View(), "Thinking...")
	assert.NotNil(t, cmd)
}

func TestReplySpinnerModelCountsStreamedChars(t *testing.T) {
	t.Parallel()

	var m tea.Model = newReplySpinnerModel("Thinking...", nil, nil)
	m, _ = m.Update(replyProgressMsg{chars: 8})
	m, _ = m.Update(replyProgressMsg{chars: 5})

	assert.Contains(t, m.View(), "Thinking... 13 chars")
}

func TestReplySpinnerModelCancelKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{name: "esc", key: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", key: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			var m tea.Model = newReplySpinnerModel("Thinking...", nil, func() { calls++ })
			assert.Contains(t, m.View(), "esc to cancel")

			m, cmd := m.Update(tc.key)
			assert.Nil(t, cmd, "the model waits for the send to return")
			assert.Contains(t, m.View(), "Canceling...")

			m, _ = m.Update(tc.key)
			assert.Equal(t, 1, calls)

			m, cmd = m.Update(replyDoneMsg{err: context.Canceled})
			assert.NotNil(t, cmd)
			final := m.(replySpinnerModel)
			assert.True(t, final.canceled)
			assert.Empty(t, final.View())
		})
	}
}

func TestReplySpinnerModelIgnoresKeysWithoutCancel(t *testing.T) {
	t.Parallel()

	var m tea.Model = newReplySpinnerModel("Thinking...", nil, nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.(replySpinnerModel).canceled)
	assert.Contains(t, m.View(), "Thinking...")
}
