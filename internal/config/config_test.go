package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output:
  color: never
  context_lines: 0
log:
  verbosity: 2
  file: oss.log
watch:
  extensions: [".oss", ".style"]
  debounce: 50ms
lsp:
  max_diagnostics: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ColorNever, cfg.Output.Color)
	assert.Equal(t, 0, cfg.Output.Lines())
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "oss.log", cfg.Log.File)
	assert.Equal(t, []string{".oss", ".style"}, cfg.Watch.Extensions)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, 5, cfg.LSP.MaxDiagnostics)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log:\n  verbosity: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Equal(t, DefaultContextLines, cfg.Output.Lines())
	assert.Equal(t, DefaultExtensions, cfg.Watch.Extensions)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.Equal(t, DefaultMaxDiagnostics, cfg.LSP.MaxDiagnostics)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := Load(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration file")

	cfg, err := LoadOrDefault(missing)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "output: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse configuration file")

	_, err = LoadOrDefault(writeConfig(t, "output: [unclosed"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OSS_OUTPUT_COLOR", "always")
	t.Setenv("OSS_OUTPUT_CONTEXT_LINES", "3")
	t.Setenv("OSS_LOG_VERBOSITY", "-1")
	t.Setenv("OSS_LOG_FILE", "/tmp/oss.log")
	t.Setenv("OSS_WATCH_EXTENSIONS", ".oss, .rules ,")
	t.Setenv("OSS_WATCH_DEBOUNCE", "1s")
	t.Setenv("OSS_LSP_MAX_DIAGNOSTICS", "7")

	cfg, err := Load(writeConfig(t, "output:\n  color: never\n"))
	require.NoError(t, err)

	assert.Equal(t, ColorAlways, cfg.Output.Color)
	assert.Equal(t, 3, cfg.Output.Lines())
	assert.Equal(t, -1, cfg.Log.Verbosity)
	assert.Equal(t, "/tmp/oss.log", cfg.Log.File)
	assert.Equal(t, []string{".oss", ".rules"}, cfg.Watch.Extensions)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, 7, cfg.LSP.MaxDiagnostics)
}

func TestEnvOverridesIgnoreUnparsableValues(t *testing.T) {
	t.Setenv("OSS_WATCH_DEBOUNCE", "soon")
	t.Setenv("OSS_LSP_MAX_DIAGNOSTICS", "many")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.Equal(t, DefaultMaxDiagnostics, cfg.LSP.MaxDiagnostics)
}

func TestValidate(t *testing.T) {
	negative := -2
	cfg := Default()
	cfg.Output.Color = "sometimes"
	cfg.Output.ContextLines = &negative
	cfg.Watch.Extensions = []string{"oss"}
	cfg.Watch.Debounce = -time.Second
	cfg.LSP.MaxDiagnostics = -1

	err := Validate(cfg)
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, len(verr.Errors))
	for i, fe := range verr.Errors {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{
		"output.color",
		"output.context_lines",
		"watch.extensions[0]",
		"watch.debounce",
		"lsp.max_diagnostics",
	}, fields)
	assert.Contains(t, err.Error(), "5 errors:")
}

func TestValidationErrorSingle(t *testing.T) {
	cfg := Default()
	cfg.Output.Color = "rainbow"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Equal(t, `output.color: must be one of "auto", "always" or "never", got "rainbow"`, err.Error())
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, "lsp:\n  max_diagnostics: -3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "lsp.max_diagnostics")
}
