// Package config loads the settings shared by the oss command line tool and
// the language server. Settings come from a YAML file, usually oss.yaml,
// with OSS_* environment variables taking precedence.
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	// Output controls how diagnostics are rendered on a terminal.
	Output OutputConfig `yaml:"output"`

	// Log configures the commonlog backend used by the binaries.
	Log LogConfig `yaml:"log"`

	// Watch configures the file watcher behind `oss --watch`.
	Watch WatchConfig `yaml:"watch"`

	// LSP configures the language server.
	LSP LSPConfig `yaml:"lsp"`
}

// OutputConfig contains settings for terminal output.
type OutputConfig struct {
	// Color is one of "auto", "always" or "never".
	// Default: "auto"
	Color string `yaml:"color"`

	// ContextLines is the number of source lines shown around the offending
	// line of a diagnostic. Nil selects the default of 1.
	ContextLines *int `yaml:"context_lines"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Verbosity follows commonlog: 0 is notice, 1 info, 2 and above debug,
	// negative values silence more.
	Verbosity int `yaml:"verbosity"`

	// File is the log destination. Empty means stderr.
	File string `yaml:"file"`
}

// WatchConfig contains file watcher settings.
type WatchConfig struct {
	// Extensions lists the file extensions that trigger a re-check.
	// Default: [".oss"]
	Extensions []string `yaml:"extensions"`

	// Debounce is the quiet period after the last change before files are
	// checked again.
	// Default: 200ms
	Debounce time.Duration `yaml:"debounce"`
}

// LSPConfig contains language server settings.
type LSPConfig struct {
	// MaxDiagnostics bounds the diagnostics published per document.
	// Default: 20
	MaxDiagnostics int `yaml:"max_diagnostics"`
}

// Lines returns the configured context line count.
func (o OutputConfig) Lines() int {
	if o.ContextLines == nil {
		return DefaultContextLines
	}
	return *o.ContextLines
}
