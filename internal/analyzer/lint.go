package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
)

// LintFinding is the result of the lint analyzer.
type LintFinding struct {
	Success  bool        `json:"success"`
	Errors   int         `json:"errors"`
	Warnings int         `json:"warnings"`
	Issues   []ToolIssue `json:"issues,omitempty"`
}

// Score deducts 2 per error and 1 per warning from 100, clamped at 0.
func (f *LintFinding) Score() int {
	return clampScore(100 - (f.Errors*2 + f.Warnings))
}

func (f *LintFinding) Summary() string {
	return fmt.Sprintf("%d errors, %d warnings", f.Errors, f.Warnings)
}

func (f *LintFinding) Succeeded() bool { return f.Success }

// eslintResult is the per-file shape of `eslint -f json` output.
type eslintResult struct {
	FilePath string `json:"filePath"`
	Messages []struct {
		Line     int    `json:"line"`
		Severity int    `json:"severity"` // 1 = warning, 2 = error
		Message  string `json:"message"`
	} `json:"messages"`
	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
}

// runLint invokes the linter in JSON mode and counts errors and
// warnings. Malformed output degrades to an empty finding.
func runLint(ctx context.Context, env *Env) (Finding, error) {
	output, err := runTool(ctx, env, "eslint", ".", "-f", "json")
	if err != nil {
		return nil, err
	}

	finding := &LintFinding{Success: true}

	var results []eslintResult
	if jsonErr := json.Unmarshal(trimToJSON(output), &results); jsonErr != nil {
		return finding, nil
	}

	for _, r := range results {
		finding.Errors += r.ErrorCount
		finding.Warnings += r.WarningCount
		for _, m := range r.Messages {
			sev := "warning"
			if m.Severity == 2 {
				sev = "error"
			}
			finding.Issues = append(finding.Issues, ToolIssue{
				File:     r.FilePath,
				Line:     m.Line,
				Severity: sev,
				Message:  m.Message,
			})
		}
	}

	return finding, nil
}
