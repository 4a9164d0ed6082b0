package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FullPipeline(t *testing.T) {
	out, err := Generate(`function main() -> none { print("hi"); return none; }`)
	require.NoError(t, err)
	assert.Contains(t, out, "int main()")
	assert.Contains(t, out, `print(rox_str("hi"))`)
}

func TestGenerate_LexErrorPropagates(t *testing.T) {
	_, err := Generate(`int64 roxv26_x = 1;`)
	require.Error(t, err)
}

func TestGenerate_ParseErrorPropagates(t *testing.T) {
	_, err := Generate(`function f(`)
	require.Error(t, err)
}

func TestGenerate_CodegenErrorPropagates(t *testing.T) {
	_, err := Generate(`
function main() -> none {
  rox_result[int64] r = error("boom");
  print(getValue(r));
  return none;
}
`)
	require.Error(t, err)
}

func TestGenerateAndWrite_RejectsWrongExtension(t *testing.T) {
	_, err := GenerateAndWrite("main.txt", t.TempDir())
	require.Error(t, err)
}

func TestGenerateAndWrite_WritesCcFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.rox")
	require.NoError(t, os.WriteFile(srcPath, []byte(`function main() -> none { print("hi"); return none; }`), 0o644))

	outDir := filepath.Join(dir, "out")
	outFile, err := GenerateAndWrite(srcPath, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "main.cc"), outFile)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "int main()")
}
