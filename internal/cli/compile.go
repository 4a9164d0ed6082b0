package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roxlang/roxc/internal/compiler"
)

// CompileCmd generates C++ from a rox source file and invokes the external
// C++ toolchain on it, producing a native binary alongside the generated
// source (SPEC_FULL.md §9: "shells out to $CXX ... with -std=c++20").
var CompileCmd = &cobra.Command{
	Use:   "compile [file.rox]",
	Short: "Compile a rox source file into a native binary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		binPath, _, err := compileToBinary(cmd, args[0], outDir)
		if err != nil {
			return err
		}
		okColor.Fprintf(cmd.OutOrStdout(), "wrote %s\n", binPath)
		return nil
	},
}

// compileToBinary generates and compiles srcPath, returning the resulting
// binary's path and the .cc path it was built from.
func compileToBinary(cmd *cobra.Command, srcPath, outDir string) (string, string, error) {
	ccPath, err := compiler.GenerateAndWrite(srcPath, outDir)
	if err != nil {
		errColor.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
		return "", "", err
	}

	binPath := strings.TrimSuffix(ccPath, compiler.GeneratedExt)
	if err := compileBinary(ccPath, binPath, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
		errColor.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", cxx(), err)
		return "", "", err
	}
	return binPath, ccPath, nil
}
