package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user stops a reply with esc or ctrl+c.
var ErrCanceled = errors.New("reply canceled")

type replyDoneMsg struct {
	err error
}

type replyProgressMsg struct {
	chars int
}

// replySpinnerModel waits for one model reply. It counts streamed
// characters and lets esc or ctrl+c cancel the request.
type replySpinnerModel struct {
	spinner  spinner.Model
	label    string
	send     tea.Cmd
	cancel   context.CancelFunc
	chars    int
	canceled bool
	err      error
	done     bool
}

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func newReplySpinnerModel(label string, send tea.Cmd, cancel context.CancelFunc) replySpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return replySpinnerModel{
		spinner: s,
		label:   label,
		send:    send,
		cancel:  cancel,
	}
}

func (m replySpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.send)
}

func (m replySpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case replyProgressMsg:
		m.chars += msg.chars
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			if !m.canceled && m.cancel != nil {
				m.canceled = true
				m.cancel()
			}
		}
		// The send command still delivers replyDoneMsg once it sees the
		// canceled context.
		return m, nil
	case replyDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m replySpinnerModel) View() string {
	if m.done {
		return ""
	}
	if m.canceled {
		return fmt.Sprintf("%s Canceling...", m.spinner.View())
	}

	view := fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	if m.chars > 0 {
		view += fmt.Sprintf(" %d chars", m.chars)
	}
	if m.cancel != nil {
		view += hintStyle.Render("  (esc to cancel)")
	}
	return view
}

// RunWithSpinner shows label next to a spinner on output until send returns.
// send reports streamed text through progress. When input is non-nil, esc or
// ctrl+c cancels the context passed to send and ErrCanceled is returned.
func RunWithSpinner(ctx context.Context, input io.Reader, output io.Writer, label string, send func(ctx context.Context, progress func(string)) error) error {
	sendCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var p *tea.Program
	progress := func(delta string) {
		if n := utf8.RuneCountInString(delta); n > 0 {
			p.Send(replyProgressMsg{chars: n})
		}
	}
	sendCmd := func() tea.Msg {
		return replyDoneMsg{err: send(sendCtx, progress)}
	}

	var keyCancel context.CancelFunc
	if input != nil {
		keyCancel = cancel
	}

	p = tea.NewProgram(
		newReplySpinnerModel(label, sendCmd, keyCancel),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(replySpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	if result.canceled {
		return ErrCanceled
	}

	return result.err
}
