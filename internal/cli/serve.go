package cli

import (
	"github.com/spf13/cobra"

	"github.com/pcdshub/hxr-attenuator/internal/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP solver API",
		Long: `Run the HTTP solver API.

Endpoints:
  GET  /healthz              liveness check
  POST /v1/solve             floor/ceiling configuration for a transmission vector
  POST /v1/solve/priority    material-priority configuration
  GET  /v1/transmission      builtin absorption table lookup

The API is read-only: it returns target patterns but never moves blades.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			return server.New(logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")

	return cmd
}
