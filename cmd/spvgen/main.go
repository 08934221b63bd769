// Command spvgen compiles shader IR to SPIR-V.
//
// Usage:
//
//	spvgen compile [flags] <shader.yaml|shader.nirb>
//	spvgen batch [flags] <spvgen.toml>
//	spvgen dis <module.spv>
//	spvgen version
package main

import (
	"os"

	"github.com/gogpu/spvgen/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
