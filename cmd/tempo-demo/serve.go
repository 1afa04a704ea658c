package main

import (
	"github.com/spf13/cobra"

	"github.com/aalemi-dev/tempo-demo/app"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server and the trace pipeline.

The process exits with 0 after a graceful shutdown triggered by SIGINT or
SIGTERM, and with 1 when startup fails.

Examples:
  # Serve on the default address
  tempo-demo serve

  # Override the listen address
  tempo-demo serve --addr 0.0.0.0:8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "listen address (default 127.0.0.1:3000)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	return app.Run(cmd.Context(), app.Options{Addr: serveFlags.addr})
}
