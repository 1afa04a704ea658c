package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tempo-demo",
	Short: "HTTP service exporting traces to an OTLP collector",
	Long: `tempo-demo serves a single page and exports a request span and a handler
span for every request to an OTLP/HTTP trace collector.

Required environment:
  OTEL_TEMPO_USERNAME   collector username
  OTEL_TEMPO_PASSWORD   collector password
  OTEL_TEMPO_ENDPOINT   collector base URL

Optional environment:
  LOG_FILTER            log filter, default "tempo_demo=info,gin=debug,gin.rejection=trace"
  SERVER_DRAIN_TIMEOUT  drain window on shutdown, default 10s

Without a sub-command the server is started.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command and exits with 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "listen address (default 127.0.0.1:3000)")
}
