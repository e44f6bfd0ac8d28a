package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/spf13/cobra"
)

func newAdviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "advise <message>",
		Short:       "Get one piece of offline keyword advice",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{skipWireAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), domain.Advise(strings.Join(args, " ")))
			return err
		},
	}
}
