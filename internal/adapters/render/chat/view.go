package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWordWrap = 80
	plainStyle      = "notty"
)

type Options struct {
	// Plain disables colors and markdown styling, e.g. when stdout is not a
	// terminal.
	Plain    bool
	WordWrap int
}

// Renderer formats advisor output for the terminal.
type Renderer struct {
	opts     Options
	styles   styles
	markdown *glamour.TermRenderer
}

func NewRenderer(opts Options) (*Renderer, error) {
	if opts.WordWrap <= 0 {
		opts.WordWrap = defaultWordWrap
	}

	style := "dark"
	if opts.Plain {
		style = plainStyle
	}
	markdown, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(opts.WordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}

	s := newStyles()
	if opts.Plain {
		s = plainStyles()
	}

	return &Renderer{opts: opts, styles: s, markdown: markdown}, nil
}

// Reply renders an assistant message as markdown. Content that fails to
// render is returned as is.
func (r *Renderer) Reply(content string) string {
	rendered, err := r.markdown.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n") + "\n"
}

func (r *Renderer) Industries(industries []domain.Industry) string {
	s := r.styles
	lines := []string{
		s.title.Render("Growing industries"),
		s.header.Render(fmt.Sprintf("industries: %d", len(industries))),
	}
	if len(industries) == 0 {
		lines = append(lines, s.empty.Render("No industries available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, industry := range industries {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.index.Render(fmt.Sprintf("%2d.", i+1)),
			" ",
			s.industry.Render(industry.Name),
			" ",
			s.growth.Render("("+industry.GrowthEstimate+")"),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Context renders what the advisor knows about the learner.
func (r *Renderer) Context(attrs domain.ContextAttributes) string {
	s := r.styles
	if attrs.IsEmpty() {
		return s.empty.Render("Nothing learned about you yet.")
	}

	lines := make([]string, 0, 3)
	for _, line := range attrs.Lines() {
		label, value, _ := strings.Cut(line, ": ")
		lines = append(lines, s.label.Render(label+":")+" "+s.value.Render(value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) History(messages []domain.HistoryMessage) string {
	s := r.styles
	lines := []string{
		s.title.Render("Chat history"),
		s.header.Render(fmt.Sprintf("messages: %d", len(messages))),
	}
	if len(messages) == 0 {
		lines = append(lines, s.empty.Render("No saved messages."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, message := range messages {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			r.speaker(message.Role)+" "+s.stamp.Render(formatStamp(message.CreatedAt)),
			message.Content,
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Prompt is the label printed before the user's input.
func (r *Renderer) Prompt() string {
	return r.styles.user.Render("You:") + " "
}

func (r *Renderer) Speaker(role domain.Role) string {
	return r.speaker(role)
}

func (r *Renderer) Warning(message string) string {
	return r.styles.warning.Render(message)
}

func (r *Renderer) Error(message string) string {
	return r.styles.errorText.Render(message)
}

func (r *Renderer) speaker(role domain.Role) string {
	switch role {
	case domain.RoleUser:
		return r.styles.user.Render("You:")
	case domain.RoleAssistant:
		return r.styles.assistant.Render("Advisor:")
	default:
		return r.styles.label.Render(string(role) + ":")
	}
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		title:     plain,
		header:    plain,
		index:     plain,
		industry:  plain,
		growth:    plain,
		user:      plain,
		assistant: plain,
		label:     plain,
		value:     plain,
		warning:   plain,
		errorText: plain,
		empty:     plain,
		section:   plain.MarginTop(1),
		stamp:     plain,
	}
}
