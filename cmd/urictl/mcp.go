package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jongio/uri-core/mcptool"
	"github.com/jongio/uri-core/version"
)

func newMCPCommand(opts *rootOptions, info *version.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the parse_uri tool over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcptool.NewServer(info, mcptool.Options{
				PathDelimiter: opts.cfg.PathDelimiter,
				RateLimit:     opts.cfg.Server.Rate(),
				Burst:         opts.cfg.Server.Burst,
			})

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return mcptool.ServeStdio(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
