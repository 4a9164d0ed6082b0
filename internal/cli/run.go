package cli

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

// RunCmd compiles a rox source file to a temporary binary and executes it,
// streaming its stdout/stderr through (SPEC_FULL.md §9).
var RunCmd = &cobra.Command{
	Use:   "run [file.rox]",
	Short: "Compile and run a rox source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpDir, err := os.MkdirTemp("", "roxc-run-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmpDir)

		binPath, _, err := compileToBinary(cmd, args[0], tmpDir)
		if err != nil {
			return err
		}

		run := exec.Command(binPath)
		run.Stdout = cmd.OutOrStdout()
		run.Stderr = cmd.ErrOrStderr()
		run.Stdin = os.Stdin
		return run.Run()
	},
}
