package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/careerbot/internal/application"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Register, log in and verify your email",
	}

	cmd.AddCommand(
		newAccountActionCmd(app, "register", "Create an account", func(ctx context.Context, creds application.Credentials) application.Outcome {
			return app.accounts.Register(ctx, creds)
		}),
		newAccountActionCmd(app, "login", "Check your credentials and verification status", func(ctx context.Context, creds application.Credentials) application.Outcome {
			_, outcome := app.accounts.Login(ctx, creds)
			return outcome
		}),
		newAccountActionCmd(app, "resend-verification", "Send a new verification email", func(ctx context.Context, creds application.Credentials) application.Outcome {
			return app.accounts.ResendVerification(ctx, creds)
		}),
	)

	return cmd
}

func newAccountActionCmd(app *app, use, short string, action func(context.Context, application.Credentials) application.Outcome) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := newLineReader(cmd.InOrStdin(), cmd.ErrOrStderr())
			password, err := input.ReadPassword("Password: ")
			if err != nil {
				return err
			}

			outcome := action(cmd.Context(), application.Credentials{Email: email, Password: password})
			if !outcome.OK {
				return errors.New(outcome.Message)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), outcome.Message)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email address")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
