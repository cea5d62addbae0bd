package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss/internal/config"
)

func newChecker(opts options) (*checker, *bytes.Buffer) {
	color.NoColor = true
	var out bytes.Buffer
	return &checker{opts: opts, cfg: config.Default(), out: &out}, &out
}

func TestCheckPrintsAST(t *testing.T) {
	c, out := newChecker(options{})
	require.True(t, c.checkAll([]string{"../../examples/user.oss"}))

	assert.Contains(t, out.String(), "class=User")
	assert.Contains(t, out.String(), "Successfully processed 1 file(s)")
}

func TestCheckReportsDiagnostic(t *testing.T) {
	c, out := newChecker(options{})
	require.False(t, c.checkAll([]string{"../../examples/broken.oss"}))

	assert.Contains(t, out.String(), "E0110")
	assert.Contains(t, out.String(), "expected ';' but found 'editable'")
	assert.Contains(t, out.String(), "Check failed")
}

func TestCheckWithGrammar(t *testing.T) {
	c, out := newChecker(options{grammar: true, quiet: true})
	require.True(t, c.checkAll([]string{"../../examples/catalog.oss"}))
	assert.Empty(t, out.String())
}

func TestDumpTokens(t *testing.T) {
	c, out := newChecker(options{tokens: true})
	require.True(t, c.check("../../examples/user.oss"))

	assert.Contains(t, out.String(), "2:1\t'class'")
	assert.Contains(t, out.String(), "end of input")
}

func TestExpandDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.oss"), []byte("class=A;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".cache"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cache", "b.oss"), []byte("class=B;"), 0o644))

	c, _ := newChecker(options{})
	files, ok := c.expand([]string{dir})
	require.True(t, ok)
	assert.Equal(t, []string{filepath.Join(dir, "a.oss")}, files)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500))
	assert.Equal(t, "1.5ms", formatDuration(1500000))
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandChecksFiles(t *testing.T) {
	out, err := runRoot(t, "--quiet", "../../examples/user.oss", "../../examples/catalog.oss")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootCommandFailsOnSyntaxError(t *testing.T) {
	out, err := runRoot(t, "-q", "../../examples/broken.oss")
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "E0110")
}

func TestRootCommandTokens(t *testing.T) {
	out, err := runRoot(t, "--tokens", "../../examples/user.oss")
	require.NoError(t, err)
	assert.Contains(t, out, "2:1\t'class'")
}

func TestRootCommandRequiresFiles(t *testing.T) {
	_, err := runRoot(t)
	assert.Error(t, err)
}

func TestRootCommandMissingConfig(t *testing.T) {
	_, err := runRoot(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "../../examples/user.oss")
	assert.Error(t, err)
}
