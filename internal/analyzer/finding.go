// Package analyzer runs the configured set of checks over a project
// tree. Each analyzer produces its own finding shape; the orchestrator
// isolates failures so one broken analyzer never prevents the rest from
// producing results.
package analyzer

import (
	"fmt"

	"github.com/codegrade/codegrade/internal/rules"
)

// Finding is the result one analyzer produces for one run. Every
// analyzer owns a concrete finding type; consumers resolve behavior
// through this interface instead of probing fields.
type Finding interface {
	// Score maps the finding to a sub-score in [0,100].
	Score() int

	// Summary returns a one-line human summary.
	Summary() string

	// Succeeded reports whether the analyzer ran to completion.
	Succeeded() bool
}

// FailureFinding records an analyzer that could not produce a result:
// tool missing, timeout, crash, or unparsable state. It scores zero so a
// broken analyzer drags the grade down instead of silently vanishing
// from the denominator.
type FailureFinding struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewFailure builds a FailureFinding from an error.
func NewFailure(err error) *FailureFinding {
	return &FailureFinding{Error: err.Error()}
}

func (f *FailureFinding) Score() int      { return 0 }
func (f *FailureFinding) Summary() string { return "failed: " + f.Error }
func (f *FailureFinding) Succeeded() bool { return false }

// ToolIssue is a single parsed diagnostic from an external tool.
type ToolIssue struct {
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Severity string `json:"severity,omitempty"`
	Message  string `json:"message"`
}

// Violation is one custom-rule match in one file.
type Violation struct {
	File       string         `json:"file"`
	Line       int            `json:"line"`
	RuleID     string         `json:"rule_id"`
	Severity   rules.Severity `json:"severity"`
	Message    string         `json:"message"`
	Suggestion string         `json:"suggestion"`
	Matched    string         `json:"matched"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%d [%s] %s: %s", v.File, v.Line, v.Severity, v.RuleID, v.Message)
}

// clampScore saturates a sub-score at the [0,100] boundaries.
func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
