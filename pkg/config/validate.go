package config

import (
	"fmt"
	"strings"
)

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates all validation failures of one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = "  - " + err.Error()
	}
	return fmt.Sprintf("configuration validation failed with %d errors:\n%s",
		len(e), strings.Join(msgs, "\n"))
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"json": true, "text": true}
)

// Validate checks the configuration for invalid values. Path existence is not
// checked here; commands verify their inputs when they run.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if !validLevels[cfg.Telemetry.Logging.Level] {
		errs = append(errs, ValidationError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid level %q (debug, info, warn, error)", cfg.Telemetry.Logging.Level),
		})
	}
	if !validFormats[cfg.Telemetry.Logging.Format] {
		errs = append(errs, ValidationError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid format %q (json, text)", cfg.Telemetry.Logging.Format),
		})
	}
	if cfg.Output.Dir == "" {
		errs = append(errs, ValidationError{
			Field:   "output.dir",
			Message: "field is required",
		})
	}
	if cfg.History.Enabled && cfg.History.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "history.path",
			Message: "field is required when history is enabled",
		})
	}
	if cfg.History.RetentionDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "history.retention_days",
			Message: "must not be negative",
		})
	}
	if cfg.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
