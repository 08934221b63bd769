package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/spvgen/internal/spvdis"
)

// DisOptions holds flags for the dis command.
type DisOptions struct {
	*RootOptions
	Output string
}

// NewDisCommand creates the dis command.
func NewDisCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DisOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dis <module.spv>",
		Short: "Disassemble a SPIR-V module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDis(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the disassembly to a file instead of stdout")

	return cmd
}

func runDis(opts *DisOptions, input string, cmd *cobra.Command) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return WrapExitError(ExitCommandError, "reading module", err)
	}
	text, err := spvdis.Disassemble(data)
	if err != nil {
		return WrapExitError(ExitCommandError, "disassembling "+input, err)
	}
	opts.Logger.Debug("disassembled module", "input", input, "bytes", len(data))

	if opts.Output != "" {
		if err := writeOutput(opts.Output, []byte(text)); err != nil {
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write([]byte(text))
	return err
}
