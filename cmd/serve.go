package cmd

import (
	"github.com/bnema/careerbot/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the advisor over HTTP",
		Long: "Serve the advisor over HTTP. POST /chat answers {\"input\"} from the offline keyword advisor; " +
			"POST /api/sessions and POST /api/sessions/{id}/messages chat with the configured model.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			service, cleanup, err := app.newChatService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if addr == "" {
				addr = app.cfg.ServerAddr
			}
			srv := server.New(service, app.logger.Named("server"), server.Options{
				MaxSessions: app.cfg.Sessions.Max,
				SessionTTL:  app.cfg.Sessions.TTL,
				Now:         app.clock.Now,
			})
			return srv.Serve(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to server.addr)")

	return cmd
}
