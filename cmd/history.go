package cmd

import (
	"fmt"

	"github.com/bnema/careerbot/internal/config"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your saved chat history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.cfg.History.Backend == config.HistoryNone {
				return fmt.Errorf("chat history is disabled (history.backend = %q)", config.HistoryNone)
			}

			ctx := cmd.Context()
			input := newLineReader(cmd.InOrStdin(), cmd.ErrOrStderr())
			identity, _, err := loginInteractive(ctx, app, input, email)
			if err != nil {
				return err
			}

			store, cleanup, err := app.openHistory()
			if err != nil {
				return err
			}
			defer cleanup()

			messages, err := store.List(ctx, identity.UserID)
			if err != nil {
				return fmt.Errorf("list chat history: %w", err)
			}

			renderer, err := app.newRenderer(!isTerminal(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.History(messages))
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email address")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
