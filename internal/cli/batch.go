package cli

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/spvgen"
	"github.com/gogpu/spvgen/internal/config"
	"github.com/gogpu/spvgen/internal/logger"
	"github.com/gogpu/spvgen/ir"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	Jobs int // overrides the config's job count when > 0
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <spvgen.toml>",
		Short: "Compile every shader listed in a batch file",
		Long: `Compile the [[shader]] entries of a TOML batch file concurrently.

Each stage is compiled by its own backend. Nothing is written unless
every stage compiles.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "stages compiled at once (default: config, then GOMAXPROCS)")

	return cmd
}

func runBatch(opts *BatchOptions, path string, cmd *cobra.Command) error {
	cfg, err := config.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading batch file", err)
	}
	log, err := opts.batchLogger(cfg, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "configuring logger", err)
	}
	version, _ := cfg.Version()

	jobs := make([]spvgen.Job, len(cfg.Shaders))
	for i, sh := range cfg.Shaders {
		input := cfg.InputPath(sh)
		shader, err := ir.LoadShader(input)
		if err != nil {
			return WrapExitError(ExitCommandError, "loading shader", err)
		}
		jobOpts := spvgen.Options{
			SPIRVVersion: version,
			Debug:        cfg.Debug,
			Validate:     cfg.ValidateIR,
			Logger:       log.With("input", input),
		}
		if xfb := cfg.XfbPath(sh); xfb != "" {
			if jobOpts.StreamOutput, err = ir.LoadStreamOutput(xfb); err != nil {
				return WrapExitError(ExitCommandError, "reading transform feedback descriptor", err)
			}
		}
		jobs[i] = spvgen.Job{Name: input, Shader: shader, Options: jobOpts}
	}

	limit := cfg.Jobs
	if opts.Jobs > 0 {
		limit = opts.Jobs
	}
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	results, err := spvgen.CompileAll(cmd.Context(), jobs, limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "compilation failed", err)
	}
	log.Info("batch compiled", "stages", len(results), "jobs", limit, "elapsed", time.Since(start))

	w := cmd.OutOrStdout()
	for i, r := range results {
		output := cfg.OutputPath(cfg.Shaders[i])
		if err := writeOutput(output, r.Binary); err != nil {
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
		fmt.Fprintf(w, "%s %s -> %s (%d words)\n",
			successColor.Sprint("✓"), r.Name, pathColor.Sprint(output), len(r.Binary)/4)
	}
	fmt.Fprintf(w, "Compiled %d stage(s)\n", len(results))
	return nil
}

// batchLogger applies the batch file's [log] section. --verbose and an
// explicit --log-format take precedence.
func (o *BatchOptions) batchLogger(cfg *config.Config, cmd *cobra.Command) (*slog.Logger, error) {
	lc := o.loggerConfig(cmd)
	if !o.Verbose {
		level, err := logger.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		lc.Level = level
	}
	if !cmd.Flags().Changed("log-format") {
		lc.Format = cfg.Log.Format
	}
	return logger.New(lc)
}
