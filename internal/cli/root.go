// Package cli builds the roxc command tree with cobra, generalizing the
// teacher's cmd/root.go (persistent --out flag, one subcommand per verb)
// from the COBOL/job-runner domain to rox's generate/compile/run/fmt/init
// verbs.
package cli

import (
	"github.com/spf13/cobra"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:   "roxc",
	Short: "roxc — the rox compiler",
	Long: `roxc compiles rox source files to C++.

Commands:
  generate  Generate C++ from a (.rox) rox source file
  compile   Compile a (.rox) rox source file into a native binary
  run       Compile and run a (.rox) rox source file
  fmt       Format a (.rox) rox source file
  init      Scaffold a starter rox source file
`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for build artifacts")
	rootCmd.AddCommand(GenerateCmd, CompileCmd, RunCmd, FmtCmd, InitCmd)
}
