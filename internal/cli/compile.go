package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/spvgen"
	"github.com/gogpu/spvgen/ir"
	"github.com/gogpu/spvgen/spirv"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Output       string // output file path
	SPIRVVersion string
	Xfb          string // transform feedback descriptor (YAML)
	Debug        bool
	Validate     bool
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <shader.yaml|shader.nirb>",
		Short: "Compile one shader stage to SPIR-V",
		Long: `Compile one shader stage from IR to a SPIR-V module.

The IR encoding is chosen by extension: .yaml and .yml are the text
form, .nirb is msgpack. Without --output the module is written next to
the input with a .spv extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&opts.SPIRVVersion, "spirv-version", spirv.DefaultOptions().Version.String(), "target SPIR-V version (1.0 to 1.6)")
	cmd.Flags().StringVar(&opts.Xfb, "xfb", "", "transform feedback descriptor (YAML)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "emit OpName debug names")
	cmd.Flags().BoolVar(&opts.Validate, "validate", true, "validate the IR before code generation")

	return cmd
}

func runCompile(opts *CompileOptions, input string, cmd *cobra.Command) error {
	version, err := spirv.ParseVersion(opts.SPIRVVersion)
	if err != nil {
		return WrapExitError(ExitUsage, "invalid --spirv-version", err)
	}

	compileOpts := spvgen.Options{
		SPIRVVersion: version,
		Debug:        opts.Debug,
		Validate:     opts.Validate,
		Logger:       opts.Logger.With("input", input),
	}
	if opts.Xfb != "" {
		so, err := ir.LoadStreamOutput(opts.Xfb)
		if err != nil {
			return WrapExitError(ExitCommandError, "reading transform feedback descriptor", err)
		}
		compileOpts.StreamOutput = so
	}

	binary, err := spvgen.CompileFile(input, compileOpts)
	if err != nil {
		return WrapExitError(ExitCommandError, "compilation failed", err)
	}

	output := opts.Output
	if output == "" {
		output = defaultOutput(input)
	}
	if err := writeOutput(output, binary); err != nil {
		return WrapExitError(ExitCommandError, "writing output file", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Compiled %s -> %s (%d words)\n",
		successColor.Sprint("✓"), input, pathColor.Sprint(output), len(binary)/4)
	return nil
}

// defaultOutput replaces the IR extension of input with .spv.
func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".spv"
}
