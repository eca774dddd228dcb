package analyzer

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// reTSCError matches tsc diagnostics: `path(line,col): error TS1234: msg`.
var reTSCError = regexp.MustCompile(`^(.+)\((\d+),\d+\): error TS\d+: (.+)$`)

// TypeCheckFinding is the result of the type-check analyzer.
type TypeCheckFinding struct {
	Success bool        `json:"success"`
	Errors  int         `json:"errors"`
	Issues  []ToolIssue `json:"issues,omitempty"`
}

// Score is binary: a tree either type-checks or it does not.
func (f *TypeCheckFinding) Score() int {
	if f.Errors == 0 {
		return 100
	}
	return 0
}

func (f *TypeCheckFinding) Summary() string {
	if f.Errors == 0 {
		return "no type errors"
	}
	return fmt.Sprintf("%d type errors", f.Errors)
}

func (f *TypeCheckFinding) Succeeded() bool { return f.Success }

// runTypeCheck invokes the type checker and counts diagnostics from its
// line-oriented output.
func runTypeCheck(ctx context.Context, env *Env) (Finding, error) {
	output, err := runTool(ctx, env, "tsc", "--noEmit", "--pretty", "false")
	if err != nil {
		return nil, err
	}

	finding := &TypeCheckFinding{Success: true}
	for _, line := range strings.Split(string(output), "\n") {
		m := reTSCError.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		finding.Errors++
		lineNo, _ := strconv.Atoi(m[2])
		finding.Issues = append(finding.Issues, ToolIssue{
			File:     m[1],
			Line:     lineNo,
			Severity: "error",
			Message:  m[3],
		})
	}

	return finding, nil
}
