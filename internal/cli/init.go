package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roxlang/roxc/internal/compiler"
)

const initTemplate = `function main() -> none {
  print("hello, rox");
  return none;
}
`

// InitCmd scaffolds a single starter .rox file, generalizing the teacher's
// cmd/init.go (a directory-scaffolding TODO) to rox's single-file-program
// domain: there is no multi-file job layout to lay out, so "scaffold" means
// "write one named starter file" (SPEC_FULL.md §9).
var InitCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a starter rox source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !strings.HasSuffix(name, compiler.SourceExt) {
			name += compiler.SourceExt
		}
		if _, err := os.Stat(name); err == nil {
			errColor.Fprintf(cmd.ErrOrStderr(), "%s already exists\n", name)
			return os.ErrExist
		}
		if err := os.WriteFile(name, []byte(initTemplate), 0o644); err != nil {
			return err
		}
		okColor.Fprintf(cmd.OutOrStdout(), "scaffolded %s\n", name)
		return nil
	},
}
