package config

import (
	"time"

	"github.com/codegrade/codegrade/internal/rules"
)

// Mode selects between the two report policies.
type Mode string

const (
	// ModePlain renders only the primary visual report. Default for
	// automated pipelines.
	ModePlain Mode = "plain"

	// ModeExploratory additionally renders the condensed narrative
	// summary for assisted/interactive workflows.
	ModeExploratory Mode = "exploratory"
)

// IsValid checks whether the Mode is a recognized value.
func (m Mode) IsValid() bool {
	return m == ModePlain || m == ModeExploratory
}

// Config is the resolved auditor configuration for one run.
type Config struct {
	// Analyzers lists the enabled analyzer names, in requested order.
	Analyzers []string `yaml:"analyzers"`

	// Weights is the per-analyzer weight table used for score
	// normalization. Entries must be positive.
	Weights map[string]int `yaml:"weights"`

	// Rules configures the custom rule set, inline or by template name.
	Rules RulesConfig `yaml:"rules"`

	// Ignore lists glob patterns excluded from file scans.
	Ignore []string `yaml:"ignore"`

	// MinSeverity drops custom-rule violations below this severity.
	// Empty means no filtering.
	MinSeverity rules.Severity `yaml:"min_severity"`

	// Mode selects the default report policy.
	Mode Mode `yaml:"mode"`

	// Reports, when non-empty, overrides the mode's default report list
	// item-by-item.
	Reports []string `yaml:"reports"`

	// Output is the directory report artifacts are written to.
	Output string `yaml:"output"`

	Tools  ToolsConfig  `yaml:"tools"`
	System SystemConfig `yaml:"system"`
}

// RulesConfig selects the rule set source. When Template is set it names
// a YAML template under the project's .codegrade directory; otherwise
// the inline rules and categories are used.
type RulesConfig struct {
	Template   string           `yaml:"template,omitempty"`
	Inline     []rules.Rule     `yaml:"inline,omitempty"`
	Categories []rules.Category `yaml:"categories,omitempty"`
}

// Resolve builds the RuleSet from the configured source. The result is
// unvalidated; the caller runs Validate and blocks the run on errors.
func (rc *RulesConfig) Resolve(root string) (*rules.RuleSet, error) {
	if rc.Template != "" {
		return rules.LoadTemplate(root, rc.Template)
	}
	return rules.New(rc.Inline, rc.Categories), nil
}

// ToolsConfig bounds external tool execution.
type ToolsConfig struct {
	// Timeout caps each external tool invocation.
	Timeout time.Duration `yaml:"timeout"`

	// Workers bounds the analyzer worker pool.
	Workers int `yaml:"workers"`

	// Retries is the number of retry attempts for transient tool failures.
	Retries int `yaml:"retries"`
}

// SystemConfig holds ambient settings.
type SystemConfig struct {
	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`
}
