package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Analyzers) != len(DefaultAnalyzers) {
		t.Errorf("Analyzers = %v, want defaults", cfg.Analyzers)
	}
	if cfg.Mode != ModePlain {
		t.Errorf("Mode = %q, want plain", cfg.Mode)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
analyzers: [lint, coverage]
weights:
  lint: 40
  coverage: 60
mode: exploratory
min_severity: WARNING
tools:
  timeout: 30s
  workers: 8
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Analyzers) != 2 || cfg.Analyzers[0] != "lint" {
		t.Errorf("Analyzers = %v", cfg.Analyzers)
	}
	if cfg.Weights["coverage"] != 60 {
		t.Errorf("Weights[coverage] = %d, want 60", cfg.Weights["coverage"])
	}
	if cfg.Mode != ModeExploratory {
		t.Errorf("Mode = %q, want exploratory", cfg.Mode)
	}
	if cfg.Tools.Timeout != 30*time.Second {
		t.Errorf("Tools.Timeout = %v, want 30s", cfg.Tools.Timeout)
	}
	if cfg.Tools.Workers != 8 {
		t.Errorf("Tools.Workers = %d, want 8", cfg.Tools.Workers)
	}
	// Unset fields keep defaults.
	if cfg.Output != ".codegrade/reports" {
		t.Errorf("Output = %q, want default", cfg.Output)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "analyzers: [unclosed\n")

	_, err := Load(dir)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("Load() error = %v, want ErrInvalidYAML", err)
	}
}

func TestLoadInvalidConfigBlocks(t *testing.T) {
	dir := writeConfig(t, `
weights:
  lint: -3
`)

	_, err := Load(dir)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestResolveInlineRules(t *testing.T) {
	rc := RulesConfig{}
	rs, err := rc.Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if rs.Len() != 0 {
		t.Errorf("empty inline config produced %d rules", rs.Len())
	}
}
