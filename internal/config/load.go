package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path, applies defaults and
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	return finish(&cfg)
}

// LoadOrDefault behaves like Load but falls back to the defaults when the
// file does not exist. Environment overrides apply in both cases.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return finish(&Config{})
	}
	return cfg, err
}

func finish(cfg *Config) (*Config, error) {
	ApplyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Variables use the format OSS_SECTION_FIELD. Values that do
// not parse are ignored.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("OSS_OUTPUT_COLOR"); val != "" {
		cfg.Output.Color = val
	}
	if val := os.Getenv("OSS_OUTPUT_CONTEXT_LINES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Output.ContextLines = &i
		}
	}

	if val := os.Getenv("OSS_LOG_VERBOSITY"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Log.Verbosity = i
		}
	}
	if val := os.Getenv("OSS_LOG_FILE"); val != "" {
		cfg.Log.File = val
	}

	if val := os.Getenv("OSS_WATCH_EXTENSIONS"); val != "" {
		var exts []string
		for _, ext := range strings.Split(val, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				exts = append(exts, ext)
			}
		}
		if len(exts) > 0 {
			cfg.Watch.Extensions = exts
		}
	}
	if val := os.Getenv("OSS_WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.Debounce = d
		}
	}

	if val := os.Getenv("OSS_LSP_MAX_DIAGNOSTICS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.LSP.MaxDiagnostics = i
		}
	}
}
