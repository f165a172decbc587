package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-docgen/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.environment()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = env.cfg.Server.Addr
			}
			srv, err := server.New(cmd.Context(),
				server.WithOrchestrator(env.orchestrator),
				server.WithExporter(env.exporter),
				server.WithMaxBodyBytes(env.cfg.Server.MaxBodyBytes),
				server.WithLogger(env.logger),
			)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
