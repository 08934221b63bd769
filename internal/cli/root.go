// Package cli implements the spvgen command line.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/spvgen/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	LogFormat string // "text" | "json"

	// Logger is built from the flags before a command runs.
	Logger *slog.Logger
}

// ValidLogFormats defines the allowed log formats.
var ValidLogFormats = []string{logger.FormatText, logger.FormatJSON}

// NewRootCommand creates the root command for the spvgen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "spvgen",
		Short:   "spvgen - shader IR to SPIR-V compiler",
		Long:    "Compile shader IR (YAML or msgpack) to SPIR-V modules for Vulkan, and inspect the result.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidLogFormat(opts.LogFormat) {
				return fmt.Errorf("invalid log format %q: must be one of %v", opts.LogFormat, ValidLogFormats)
			}
			l, err := logger.New(opts.loggerConfig(cmd))
			if err != nil {
				return err
			}
			opts.Logger = l
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log backend debug events")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", logger.FormatText, "log format (text|json)")

	cmd.AddCommand(NewCompileCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewDisCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func (o *RootOptions) loggerConfig(cmd *cobra.Command) logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Format = o.LogFormat
	cfg.Output = cmd.ErrOrStderr()
	if o.Verbose {
		cfg.Level = slog.LevelDebug
	}
	return cfg
}

// isValidLogFormat checks if the format is one of the allowed values.
func isValidLogFormat(format string) bool {
	for _, f := range ValidLogFormats {
		if f == format {
			return true
		}
	}
	return false
}
