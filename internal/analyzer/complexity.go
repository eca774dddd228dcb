package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
)

// ComplexityFinding is the result of the complexity analyzer. The tool
// computes its own 0-100 maintainability score; the finding passes it
// through.
type ComplexityFinding struct {
	Success   bool     `json:"success"`
	Computed  *float64 `json:"computed,omitempty"`
	Functions int      `json:"functions,omitempty"`
}

// Score passes the tool's pre-computed score through, defaulting to 100
// when the tool did not report one.
func (f *ComplexityFinding) Score() int {
	if f.Computed == nil {
		return 100
	}
	return clampScore(int(math.Round(*f.Computed)))
}

func (f *ComplexityFinding) Summary() string {
	if f.Computed == nil {
		return "no complexity data"
	}
	return fmt.Sprintf("maintainability %.0f/100", *f.Computed)
}

func (f *ComplexityFinding) Succeeded() bool { return f.Success }

// complexityOutput is the subset of `cr --format json` output we read.
type complexityOutput struct {
	Maintainability *float64 `json:"maintainability"`
	Score           *float64 `json:"score"`
	Functions       int      `json:"functions"`
}

// runComplexity invokes the complexity reporter and passes its score
// through. Absent or malformed output yields the default score.
func runComplexity(ctx context.Context, env *Env) (Finding, error) {
	output, err := runTool(ctx, env, "cr", "--format", "json", ".")
	if err != nil {
		return nil, err
	}

	finding := &ComplexityFinding{Success: true}

	var report complexityOutput
	if jsonErr := json.Unmarshal(trimToJSON(output), &report); jsonErr != nil {
		return finding, nil
	}

	finding.Functions = report.Functions
	switch {
	case report.Score != nil:
		finding.Computed = report.Score
	case report.Maintainability != nil:
		finding.Computed = report.Maintainability
	}

	return finding, nil
}
