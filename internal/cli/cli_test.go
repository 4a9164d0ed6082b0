package cli

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateCmd_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.rox")
	require.NoError(t, os.WriteFile(srcPath, []byte(`function main() -> none { print("hi"); return none; }`), 0o644))

	outDir := filepath.Join(dir, "out")
	stdout, _, err := runRoot(t, "generate", srcPath, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote")

	data, err := os.ReadFile(filepath.Join(outDir, "main.cc"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "int main()")
}

func TestGenerateCmd_RejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.txt")
	require.NoError(t, os.WriteFile(srcPath, []byte(`function main() -> none { return none; }`), 0o644))

	_, stderr, err := runRoot(t, "generate", srcPath, "--out", filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, stderr, "extension")
}

func TestCompileCmd_BuildsBinary(t *testing.T) {
	if _, err := exec.LookPath(cxx()); err != nil {
		t.Skipf("no C++ toolchain on PATH: %v", err)
	}
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.rox")
	require.NoError(t, os.WriteFile(srcPath, []byte(`function main() -> none { print("hi"); return none; }`), 0o644))

	outDir := filepath.Join(dir, "out")
	stdout, _, err := runRoot(t, "compile", srcPath, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote")

	info, err := os.Stat(filepath.Join(outDir, "main"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestFmtCmd_PrintsFormattedSource(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.rox")
	require.NoError(t, os.WriteFile(srcPath, []byte(`function main()->none{print("hi");return none;}`), 0o644))

	stdout, _, err := runRoot(t, "fmt", srcPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "-> none")
}

func TestInitCmd_ScaffoldsStarterFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeter")

	_, _, err := runRoot(t, "init", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path + ".rox")
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello, rox")
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeter.rox")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

	_, _, err := runRoot(t, "init", path)
	require.Error(t, err)
}
