package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/uri-core/server"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var (
		addr      string
		noMetrics bool
		rateLimit float64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve URI parsing over HTTP",
		Long: `Start an HTTP service answering GET/POST /v1/parse, /healthz and /metrics.

The service stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverOpts := server.OptionsFromConfig(opts.cfg)
			if addr != "" {
				serverOpts.Addr = addr
			}
			if noMetrics {
				serverOpts.Metrics = false
			}
			if cmd.Flags().Changed("rate-limit") {
				if rateLimit < 0 {
					return fmt.Errorf("--rate-limit cannot be negative")
				}
				serverOpts.RateLimit = rateLimit
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return server.New(serverOpts).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, 127.0.0.1:8080)")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Do not expose /metrics")
	cmd.Flags().Float64Var(&rateLimit, "rate-limit", 0, "Requests per second, 0 disables limiting (default from config, 50)")
	return cmd
}
