package config

import "time"

// Default values for configuration fields.
const (
	// DefaultFile is the configuration file looked up in the working directory
	DefaultFile = "oss.yaml"

	DefaultColor          = ColorAuto
	DefaultContextLines   = 1
	DefaultVerbosity      = 0
	DefaultDebounce       = 200 * time.Millisecond
	DefaultMaxDiagnostics = 20
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultExtensions are the file extensions watched when none are configured
var DefaultExtensions = []string{".oss"}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Color == "" {
		cfg.Output.Color = DefaultColor
	}

	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}

	if cfg.LSP.MaxDiagnostics == 0 {
		cfg.LSP.MaxDiagnostics = DefaultMaxDiagnostics
	}
}
