// Package models defines the shared result types produced by an audit run.
// The types here cross the boundary between the analyzer orchestrator, the
// scoring engine, the report renderers, and any embedding caller (CLI or CI
// gate), so they carry no behavior beyond simple accessors.
package models

import "time"

// Grade is the letter grade derived from the overall score.
type Grade string

// Letter grades in descending order.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// GradeFor maps a 0-100 score to a letter grade using the fixed
// monotonic step function: >=90 A, >=80 B, >=70 C, >=60 D, else F.
func GradeFor(score int) Grade {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	case score >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// BreakdownEntry records one analyzer's contribution to the overall score.
type BreakdownEntry struct {
	Score  int `json:"score"`
	Weight int `json:"weight"`
}

// ScoreSummary is the aggregated scoring result for a run.
type ScoreSummary struct {
	Overall   int                       `json:"overall"`
	Grade     Grade                     `json:"grade"`
	Breakdown map[string]BreakdownEntry `json:"breakdown"`
}

// ReportArtifact describes one rendered report file.
type ReportArtifact struct {
	Type string `json:"type"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// RunResult is the immutable outcome of a single audit invocation.
// Findings values are the analyzer-specific records; callers that need
// typed access assert against the analyzer package's finding types.
type RunResult struct {
	ID        string                    `json:"id"`
	Root      string                    `json:"root"`
	StartedAt time.Time                 `json:"started_at"`
	Duration  time.Duration             `json:"duration"`
	Findings  map[string]any            `json:"findings"`
	Score     ScoreSummary              `json:"score"`
	Reports   map[string]ReportArtifact `json:"reports"`
}

// Passed reports whether the analyzer under name succeeded. Missing
// analyzers count as failed so CI gates fail closed.
func (r *RunResult) Passed(name string) bool {
	f, ok := r.Findings[name]
	if !ok {
		return false
	}
	s, ok := f.(interface{ Succeeded() bool })
	return ok && s.Succeeded()
}
