package config

import (
	"errors"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) error = %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  error
		wantText string
	}{
		{
			name:    "zero_weight",
			mutate:  func(c *Config) { c.Weights["lint"] = 0 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative_weight",
			mutate:  func(c *Config) { c.Weights["coverage"] = -5 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad_mode",
			mutate:  func(c *Config) { c.Mode = "verbose" },
			wantErr: ErrInvalidMode,
		},
		{
			name:    "bad_min_severity",
			mutate:  func(c *Config) { c.MinSeverity = "FATAL" },
			wantErr: ErrInvalidSeverity,
		},
		{
			name:    "negative_timeout",
			mutate:  func(c *Config) { c.Tools.Timeout = -1 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad_log_level",
			mutate:  func(c *Config) { c.System.LogLevel = "trace" },
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want errors.Is %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Weights["lint"] = -1
	cfg.Mode = "bogus"
	cfg.MinSeverity = "BOGUS"

	err := Validate(cfg)
	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error type = %T, want *ValidationErrors", err)
	}
	if len(verrs.Errors) != 3 {
		t.Errorf("collected %d errors, want 3: %v", len(verrs.Errors), verrs)
	}
}
