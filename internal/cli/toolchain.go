package cli

import (
	"io"
	"os"
	"os/exec"
)

// cxx resolves the C++ compiler to shell out to, honoring $CXX the way the
// teacher's build tooling honors an external toolchain path, defaulting to
// "c++" (SPEC_FULL.md §9).
func cxx() string {
	if v := os.Getenv("CXX"); v != "" {
		return v
	}
	return "c++"
}

// compileBinary invokes the C++ toolchain to build ccPath into binPath,
// streaming its stderr/stdout through so compiler diagnostics are visible.
func compileBinary(ccPath, binPath string, stdout, stderr io.Writer) error {
	cmd := exec.Command(cxx(), "-std=c++20", "-o", binPath, ccPath)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
