package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roxlang/roxc/internal/compiler/format"
)

var writeInPlace bool

// FmtCmd formats a .rox file, printing the result to stdout by default or
// rewriting the file in place with -w (SPEC_FULL.md §7's formatter,
// supplemented from original_source/src/formatter.cc).
var FmtCmd = &cobra.Command{
	Use:   "fmt [file.rox]",
	Short: "Format a rox source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		formatted, err := format.Source(string(content))
		if err != nil {
			errColor.Fprintln(cmd.ErrOrStderr(), err.Error())
			return err
		}

		if writeInPlace {
			return os.WriteFile(path, []byte(formatted), 0o644)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatted)
		return nil
	},
}

func init() {
	FmtCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "rewrite the file in place instead of printing to stdout")
}
