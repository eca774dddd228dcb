package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/codegrade/codegrade/internal/analyzer"
	"github.com/codegrade/codegrade/internal/rules"
	"github.com/codegrade/codegrade/pkg/models"
)

// summaryRenderer writes the condensed narrative summary used by
// assisted workflows: critical issues first, then suggested fixes, then
// a priority classification of everything else.
type summaryRenderer struct{}

func (s *summaryRenderer) Render(data *Data) (*models.ReportArtifact, error) {
	if err := os.MkdirAll(data.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(data.OutputDir, "summary.md")
	content := buildSummary(data)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &models.ReportArtifact{Type: TypeSummary, Path: path, Size: info.Size()}, nil
}

// buildSummary assembles the narrative markdown.
func buildSummary(data *Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Quality summary — %d/100 (%s)\n\n", data.Score.Overall, data.Score.Grade)

	if failed := failedAnalyzers(data.Findings); len(failed) > 0 {
		b.WriteString("## Incomplete analyzers\n\n")
		for _, name := range failed {
			fmt.Fprintf(&b, "- `%s`: %s\n", name, data.Findings[name].Summary())
		}
		b.WriteString("\n")
	}

	violations := collectViolations(data.Findings)

	critical := filterBySeverity(violations, rules.SeverityCritical)
	if len(critical) > 0 {
		b.WriteString("## Critical issues\n\n")
		for _, v := range critical {
			fmt.Fprintf(&b, "- **%s:%d** `%s` — %s\n", v.File, v.Line, v.RuleID, v.Message)
		}
		b.WriteString("\n")
	}

	if fixes := suggestedFixes(violations); len(fixes) > 0 {
		b.WriteString("## Suggested fixes\n\n")
		for _, fix := range fixes {
			fmt.Fprintf(&b, "- %s\n", fix)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Priority classification\n\n")
	for _, sev := range rules.ValidSeverities {
		n := len(filterBySeverity(violations, sev))
		if n > 0 {
			fmt.Fprintf(&b, "- %s: %d\n", sev, n)
		}
	}
	if len(violations) == 0 {
		b.WriteString("No rule violations.\n")
	}

	return b.String()
}

// collectViolations extracts the custom-rule violations, if that
// analyzer ran.
func collectViolations(findings map[string]analyzer.Finding) []analyzer.Violation {
	for _, f := range findings {
		if rf, ok := f.(*analyzer.RulesFinding); ok {
			return rf.Violations
		}
	}
	return nil
}

func filterBySeverity(violations []analyzer.Violation, sev rules.Severity) []analyzer.Violation {
	var out []analyzer.Violation
	for _, v := range violations {
		if v.Severity == sev {
			out = append(out, v)
		}
	}
	return out
}

// suggestedFixes deduplicates violation suggestions, strongest
// severities first.
func suggestedFixes(violations []analyzer.Violation) []string {
	seen := make(map[string]bool)
	var fixes []string
	for _, sev := range rules.ValidSeverities {
		for _, v := range filterBySeverity(violations, sev) {
			if v.Suggestion == "" || seen[v.Suggestion] {
				continue
			}
			seen[v.Suggestion] = true
			fixes = append(fixes, fmt.Sprintf("%s (`%s`)", v.Suggestion, v.RuleID))
		}
	}
	return fixes
}

// RenderMarkdown renders markdown for terminal display with glamour.
// On render failure the raw markdown is returned so the caller always
// has something to print.
func RenderMarkdown(markdown string) string {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		return markdown
	}
	return out
}
