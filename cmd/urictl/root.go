package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/uri-core/cliout"
	"github.com/jongio/uri-core/config"
	"github.com/jongio/uri-core/logutil"
	"github.com/jongio/uri-core/version"
)

// rootOptions holds the global flags and the configuration they resolve to.
type rootOptions struct {
	configPath string
	output     string
	debug      bool
	noColor    bool

	cfg *config.Config
}

func newRootCommand(info *version.Info) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "urictl",
		Short:         "Split URIs into scheme, host, port and path segments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	opts.bindFlags(root.PersistentFlags())

	root.AddCommand(
		newParseCommand(opts),
		newServeCommand(opts),
		newMCPCommand(opts, info),
		version.NewCommand(info),
	)
	return root
}

func (o *rootOptions) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "Path to config file (default ./"+config.FileName+")")
	fs.StringVarP(&o.output, "output", "o", "", "Output format: default, json, yaml")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
}

// setup loads the config, applies flag overrides and configures output and
// logging for the command about to run.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	cliout.SetOutput(cmd.OutOrStdout())
	if err := cliout.SetFormat(cfg.Output); err != nil {
		return err
	}
	if o.noColor {
		cliout.NoColor()
	}

	structured, err := logutil.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	logutil.Configure(cmd.ErrOrStderr(), logutil.ParseLevel(cfg.LogLevel), structured)
	logutil.Debug("configuration loaded", "output", cfg.Output, "delimiter", cfg.PathDelimiter)
	return nil
}
