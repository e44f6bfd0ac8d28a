package cmd

import (
	"fmt"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/spf13/cobra"
)

func newIndustriesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:         "industries",
		Short:       "List growing industries and their estimated growth",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipWireAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer, err := app.newRenderer(!isTerminal(cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.Industries(domain.GrowingIndustries()))
			return err
		},
	}
}
