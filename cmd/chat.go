package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	chatrender "github.com/bnema/careerbot/internal/adapters/render/chat"
	"github.com/bnema/careerbot/internal/application"
	"github.com/bnema/careerbot/internal/domain"
	"github.com/spf13/cobra"
)

const (
	quitCommand    = "quit"
	contextCommand = "/context"
	thinkingLabel  = "Thinking..."
)

type chatOptions struct {
	email string
	plain bool
}

func newChatCmd(app *app) *cobra.Command {
	opts := chatOptions{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive advisor conversation",
		Long: "Start an interactive conversation with the career advisor. Type \"quit\" to leave " +
			"and \"/context\" to see what the advisor has learned about you. " +
			"Log in with --email to keep your chat history.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "log in with this email to save chat history")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable colors, markdown and the spinner")

	return cmd
}

func runChat(cmd *cobra.Command, app *app, opts chatOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	input := newLineReader(cmd.InOrStdin(), out)

	interactive := !opts.plain && isTerminal(out)
	var keys io.Reader
	if interactive {
		keys = terminalInput(cmd.InOrStdin())
	}
	renderer, err := app.newRenderer(!interactive)
	if err != nil {
		return err
	}

	var identity *domain.Identity
	if opts.email != "" {
		logged, message, err := loginInteractive(ctx, app, input, opts.email)
		if err != nil {
			return err
		}
		identity = &logged
		_, _ = fmt.Fprintln(out, message)
	}

	service, cleanup, err := app.newChatService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	conv, err := service.NewConversation(ctx, identity)
	if err != nil {
		if conv == nil {
			return err
		}
		_, _ = fmt.Fprintln(out, renderer.Warning(domain.Describe(err)))
	}
	if service.Offline() {
		_, _ = fmt.Fprintln(out, renderer.Warning("Offline mode: answers come from the keyword advisor."))
	}

	printTranscript(out, renderer, conv.Transcript())

	for {
		line, err := input.ReadLine(renderer.Prompt())
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		text := strings.TrimSpace(line)
		switch strings.ToLower(text) {
		case "":
			continue
		case quitCommand:
			_, _ = fmt.Fprintln(out, "Goodbye! Good luck with your career journey.")
			return nil
		case contextCommand:
			_, _ = fmt.Fprintln(out, renderer.Context(conv.Context()))
			continue
		}

		result, err := runTurn(ctx, out, keys, renderer, service, conv, text, interactive)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, chatrender.ErrCanceled) {
				_, _ = fmt.Fprintln(out, renderer.Warning("Reply canceled."))
				continue
			}
			_, _ = fmt.Fprintln(out, renderer.Error(domain.Describe(err)))
			continue
		}
		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintln(out, renderer.Warning(warning))
		}
	}
}

// runTurn shows a spinner and renders the full reply as markdown on a
// terminal; otherwise deltas are written as they arrive. keys, when set,
// lets esc cancel the reply.
func runTurn(ctx context.Context, out io.Writer, keys io.Reader, renderer *chatrender.Renderer, service *application.ChatService, conv *domain.Conversation, text string, interactive bool) (application.TurnResult, error) {
	if !interactive {
		_, _ = fmt.Fprint(out, renderer.Speaker(domain.RoleAssistant)+" ")
		result, err := service.Send(ctx, conv, text, func(delta string) {
			_, _ = fmt.Fprint(out, delta)
		})
		_, _ = fmt.Fprintln(out)
		return result, err
	}

	var result application.TurnResult
	err := chatrender.RunWithSpinner(ctx, keys, out, thinkingLabel, func(ctx context.Context, progress func(string)) error {
		var sendErr error
		result, sendErr = service.Send(ctx, conv, text, progress)
		return sendErr
	})
	if err != nil {
		return result, err
	}

	_, _ = fmt.Fprintln(out, renderer.Speaker(domain.RoleAssistant))
	_, _ = fmt.Fprint(out, renderer.Reply(result.Reply.Content))
	return result, nil
}

func printTranscript(out io.Writer, renderer *chatrender.Renderer, transcript []domain.Utterance) {
	for _, utterance := range transcript {
		_, _ = fmt.Fprintln(out, renderer.Speaker(utterance.Role))
		if utterance.Role == domain.RoleAssistant {
			_, _ = fmt.Fprint(out, renderer.Reply(utterance.Content))
			continue
		}
		_, _ = fmt.Fprintln(out, utterance.Content)
	}
}

func loginInteractive(ctx context.Context, app *app, input *lineReader, email string) (domain.Identity, string, error) {
	password, err := input.ReadPassword("Password: ")
	if err != nil {
		return domain.Identity{}, "", err
	}

	identity, outcome := app.accounts.Login(ctx, application.Credentials{Email: email, Password: password})
	if !outcome.OK {
		return domain.Identity{}, "", errors.New(outcome.Message)
	}
	return identity, outcome.Message, nil
}
