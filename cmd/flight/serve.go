package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/flight-desk/internal/infrastructure/httpserver"
	"github.com/ersonp/flight-desk/internal/infrastructure/observability"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Serves /v1/resolve, /v1/destinations, /v1/chat, /healthz and /metrics until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				if addr == "" {
					addr = d.Config.Server.Addr
				}

				srv := httpserver.New(d.Logger)
				reg := observability.InitRegistry()
				srv.Mount("/metrics", observability.MetricsHandler(reg))
				srv.MountHandlers(&httpserver.Handlers{
					Resolve: d.ResolveHandler,
					Catalog: d.Catalog,
					Chat:    d.ChatHandler,
				})

				if d.ChatHandler == nil {
					d.Logger.Warn().Msg("no OpenAI API key configured, /v1/chat will return 503")
				}
				return srv.ListenAndServe(cmd.Context(), addr)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr)")

	return cmd
}
