package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project configuration file.
const ConfigFileName = "codegrade.yaml"

// Load reads codegrade.yaml under root, merges it over defaults, and
// validates the result. A missing file is not an error: defaults apply
// and a warning is logged. Malformed YAML or failed validation blocks
// the run.
func Load(root string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}
	merge(cfg, &loaded)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	slog.Debug("config loaded",
		"path", path,
		"analyzers", len(cfg.Analyzers),
		"mode", cfg.Mode)
	return cfg, nil
}

// merge overlays loaded values onto defaults. Zero values in the loaded
// config keep the default.
func merge(dst, src *Config) {
	if len(src.Analyzers) > 0 {
		dst.Analyzers = src.Analyzers
	}
	if len(src.Weights) > 0 {
		dst.Weights = src.Weights
	}
	dst.Rules = src.Rules
	if len(src.Ignore) > 0 {
		dst.Ignore = src.Ignore
	}
	if src.MinSeverity != "" {
		dst.MinSeverity = src.MinSeverity
	}
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if len(src.Reports) > 0 {
		dst.Reports = src.Reports
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
	if src.Tools.Timeout > 0 {
		dst.Tools.Timeout = src.Tools.Timeout
	}
	if src.Tools.Workers > 0 {
		dst.Tools.Workers = src.Tools.Workers
	}
	if src.Tools.Retries > 0 {
		dst.Tools.Retries = src.Tools.Retries
	}
	if src.System.LogLevel != "" {
		dst.System.LogLevel = src.System.LogLevel
	}
	if src.System.NoColor {
		dst.System.NoColor = true
	}
}
