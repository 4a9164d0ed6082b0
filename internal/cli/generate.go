package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roxlang/roxc/internal/compiler"
)

var errColor = color.New(color.FgRed, color.Bold)
var okColor = color.New(color.FgGreen)

// GenerateCmd runs the core pipeline and writes the generated C++ without
// invoking any external toolchain (SPEC_FULL.md §9).
var GenerateCmd = &cobra.Command{
	Use:   "generate [file.rox]",
	Short: "Generate C++ from a rox source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outFile, err := compiler.GenerateAndWrite(args[0], outDir)
		if err != nil {
			errColor.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
			return err
		}
		okColor.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outFile)
		return nil
	},
}
