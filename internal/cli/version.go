package cli

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information. These can be overridden at build time via -ldflags.
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
)

var versionColor = color.New(color.FgYellow, color.Bold)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "spvgen %s\n", versionColor.Sprint(Version))
			if GitCommit != "" {
				fmt.Fprintf(w, "commit: %s\n", GitCommit)
			}
			fmt.Fprintf(w, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
