package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// validLogLevels lists recognized log level names.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for correctness. Weight entries for
// analyzer names that are not enabled are tolerated (they are simply
// never part of the denominator) but logged, since they usually indicate
// a typo.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateWeights(cfg)...)
	errs = append(errs, validateMode(cfg)...)
	errs = append(errs, validateSeverity(cfg)...)
	errs = append(errs, validateTools(cfg)...)
	errs = append(errs, validateSystem(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateWeights(cfg *Config) []ValidationError {
	var errs []ValidationError

	enabled := make(map[string]bool, len(cfg.Analyzers))
	for _, name := range cfg.Analyzers {
		enabled[name] = true
	}

	for name, w := range cfg.Weights {
		if w <= 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("weights.%s", name),
				Message: "must be a positive integer",
				Value:   w,
				Wrapped: ErrInvalidConfig,
			})
		}
		if !enabled[name] {
			slog.Warn("weight configured for analyzer that is not enabled", "analyzer", name)
		}
	}

	return errs
}

func validateMode(cfg *Config) []ValidationError {
	if cfg.Mode == "" || cfg.Mode.IsValid() {
		return nil
	}
	return []ValidationError{{
		Field:   "mode",
		Message: "must be one of: plain, exploratory",
		Value:   string(cfg.Mode),
		Wrapped: ErrInvalidMode,
	}}
}

func validateSeverity(cfg *Config) []ValidationError {
	if cfg.MinSeverity == "" || cfg.MinSeverity.IsValid() {
		return nil
	}
	return []ValidationError{{
		Field:   "min_severity",
		Message: "must be one of: CRITICAL, ERROR, WARNING, INFO",
		Value:   string(cfg.MinSeverity),
		Wrapped: ErrInvalidSeverity,
	}}
}

func validateTools(cfg *Config) []ValidationError {
	var errs []ValidationError

	if cfg.Tools.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "tools.timeout",
			Message: "must not be negative",
			Value:   cfg.Tools.Timeout.String(),
			Wrapped: ErrInvalidConfig,
		})
	}
	if cfg.Tools.Workers < 0 {
		errs = append(errs, ValidationError{
			Field:   "tools.workers",
			Message: "must not be negative",
			Value:   cfg.Tools.Workers,
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

func validateSystem(cfg *Config) []ValidationError {
	level := strings.ToLower(cfg.System.LogLevel)
	if level == "" || validLogLevels[level] {
		return nil
	}
	return []ValidationError{{
		Field:   "system.log_level",
		Message: "must be one of: debug, info, warn, error",
		Value:   cfg.System.LogLevel,
		Wrapped: ErrInvalidConfig,
	}}
}
