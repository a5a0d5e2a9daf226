// Package cli implements the rebind command line.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dshills/rebind/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel  string
	LogFormat string
}

// NewRootCommand creates the root command for the rebind CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rebind",
		Short: "Context-prioritized input remapping",
		Long: `rebind maps raw keyboard, mouse and window input to application actions
through a stack of prioritized binding contexts.

Bindings are read from YAML, TOML or Lua files. The commands below validate
binding files, replay recorded input traces and run an interactive terminal
demo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.LogLevel != "" {
				if _, err := logging.ParseLevel(opts.LogLevel); err != nil {
					return NewExitError(ExitCommandError, err.Error())
				}
			}
			if opts.LogFormat != "" {
				if _, err := logging.ParseFormat(opts.LogFormat); err != nil {
					return NewExitError(ExitCommandError, err.Error())
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (text|json)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))

	return cmd
}

// apply overrides cfg with the global flags that were set.
func (o *RootOptions) apply(cfg logging.Config) logging.Config {
	if o.LogLevel != "" {
		cfg.Level, _ = logging.ParseLevel(o.LogLevel)
	}
	if o.LogFormat != "" {
		cfg.Format, _ = logging.ParseFormat(o.LogFormat)
	}
	return cfg
}

// logger returns a logger writing to the command's error stream.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LevelWarn
	return logging.NewWithWriter(cmd.ErrOrStderr(), o.apply(cfg))
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
