package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// BugFinding is the result of the bug-detection analyzer. Counts are
// split by category because correctness and security findings must
// dominate the grade more than stylistic ones.
type BugFinding struct {
	Success     bool        `json:"success"`
	Critical    int         `json:"critical"`
	Security    int         `json:"security"`
	General     int         `json:"general"`
	Performance int         `json:"performance"`
	Issues      []ToolIssue `json:"issues,omitempty"`
}

// Score starts at 100 and subtracts per-category penalties: critical
// bugs 25, security risks 30, general potential issues 5, performance
// issues 10. Clamped at 0.
func (f *BugFinding) Score() int {
	return clampScore(100 - f.Critical*25 - f.Security*30 - f.General*5 - f.Performance*10)
}

func (f *BugFinding) Summary() string {
	total := f.Critical + f.Security + f.General + f.Performance
	if total == 0 {
		return "no potential bugs"
	}
	return fmt.Sprintf("%d potential bugs (%d critical, %d security)", total, f.Critical, f.Security)
}

func (f *BugFinding) Succeeded() bool { return f.Success }

// semgrepOutput is the subset of `semgrep --json` output we read.
type semgrepOutput struct {
	Results []struct {
		CheckID string `json:"check_id"`
		Path    string `json:"path"`
		Start   struct {
			Line int `json:"line"`
		} `json:"start"`
		Extra struct {
			Severity string `json:"severity"`
			Message  string `json:"message"`
			Metadata struct {
				Category string `json:"category"`
			} `json:"metadata"`
		} `json:"extra"`
	} `json:"results"`
}

// runBugs invokes the bug detector and buckets each result into one of
// the four penalty categories.
func runBugs(ctx context.Context, env *Env) (Finding, error) {
	output, err := runTool(ctx, env, "semgrep", "--json", "--quiet", "--config", "auto", ".")
	if err != nil {
		return nil, err
	}

	finding := &BugFinding{Success: true}

	var report semgrepOutput
	if jsonErr := json.Unmarshal(trimToJSON(output), &report); jsonErr != nil {
		return finding, nil
	}

	for _, r := range report.Results {
		category := strings.ToLower(r.Extra.Metadata.Category)
		severity := strings.ToUpper(r.Extra.Severity)

		switch {
		case category == "security":
			finding.Security++
		case category == "performance":
			finding.Performance++
		case severity == "ERROR":
			finding.Critical++
		default:
			finding.General++
		}

		finding.Issues = append(finding.Issues, ToolIssue{
			File:     r.Path,
			Line:     r.Start.Line,
			Severity: strings.ToLower(r.Extra.Severity),
			Message:  r.Extra.Message,
		})
	}

	return finding, nil
}
