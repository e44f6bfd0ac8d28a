package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/careerbot/internal/config"
	"github.com/bnema/careerbot/internal/ports"
	"github.com/spf13/cobra"
)

var keyProviders = []string{config.ProviderGroq, config.ProviderOpenAI, config.ProviderAnthropic, config.ProviderGemini}

func newKeyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Store model provider API keys",
		Long: "Store model provider API keys in pass, falling back to a private file. " +
			"Environment variables such as GROQ_API_KEY take precedence over stored keys.",
	}

	cmd.AddCommand(
		newKeySetCmd(app),
		newKeyRemoveCmd(app),
	)

	return cmd
}

func newKeySetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:       "set <provider>",
		Short:     "Store an API key",
		Args:      cobra.ExactArgs(1),
		ValidArgs: keyProviders,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := parseKeyProvider(args[0])
			if err != nil {
				return err
			}

			if value == "" {
				input := newLineReader(cmd.InOrStdin(), cmd.ErrOrStderr())
				value, err = input.ReadPassword(fmt.Sprintf("%s API key: ", provider))
				if err != nil {
					return err
				}
			}
			value = strings.TrimSpace(value)
			if value == "" {
				return errors.New("api key is empty")
			}

			if err := app.secretStore.Put(cmd.Context(), ports.APIKeyRef(provider), value); err != nil {
				return fmt.Errorf("store %s api key: %w", provider, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Stored %s API key.\n", provider)
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "API key value (prompted when omitted)")

	return cmd
}

func newKeyRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "remove <provider>",
		Short:     "Remove a stored API key",
		Args:      cobra.ExactArgs(1),
		ValidArgs: keyProviders,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := parseKeyProvider(args[0])
			if err != nil {
				return err
			}

			if err := app.secretStore.Delete(cmd.Context(), ports.APIKeyRef(provider)); err != nil {
				return fmt.Errorf("remove %s api key: %w", provider, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s API key.\n", provider)
			return err
		},
	}
}

func parseKeyProvider(raw string) (string, error) {
	provider := strings.ToLower(strings.TrimSpace(raw))
	for _, known := range keyProviders {
		if provider == known {
			return provider, nil
		}
	}
	return "", fmt.Errorf("unknown provider %q (expected one of %s)", raw, strings.Join(keyProviders, ", "))
}
