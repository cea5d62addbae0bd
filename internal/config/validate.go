package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "watch.debounce").
	Field string

	// Message is a human-readable error message.
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every field error found in a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors:", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks the configuration and returns a ValidationError listing
// every problem, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, FieldError{
			Field:   "output.color",
			Message: fmt.Sprintf("must be one of %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, cfg.Output.Color),
		})
	}
	if cfg.Output.ContextLines != nil && *cfg.Output.ContextLines < 0 {
		errs = append(errs, FieldError{Field: "output.context_lines", Message: "must not be negative"})
	}

	for i, ext := range cfg.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("watch.extensions[%d]", i),
				Message: fmt.Sprintf("must start with '.', got %q", ext),
			})
		}
	}
	if cfg.Watch.Debounce < 0 {
		errs = append(errs, FieldError{Field: "watch.debounce", Message: "must not be negative"})
	}

	if cfg.LSP.MaxDiagnostics < 1 {
		errs = append(errs, FieldError{Field: "lsp.max_diagnostics", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
