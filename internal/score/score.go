// Package score reduces the heterogeneous findings of a run to a single
// weighted 0-100 score and letter grade.
package score

import (
	"log/slog"
	"math"

	"github.com/codegrade/codegrade/internal/analyzer"
	"github.com/codegrade/codegrade/pkg/models"
)

// Compute aggregates per-analyzer sub-scores into an overall score:
// round(sum(sub/100 * weight) / sum(weight) * 100) over analyzers
// present in both the findings map and the weight table. Analyzers that
// never ran contribute to neither sum; analyzers that ran and failed are
// present with sub-score 0, so their weight stays in the denominator.
// A zero denominator yields a defined overall score of 0.
func Compute(findings map[string]analyzer.Finding, weights map[string]int) models.ScoreSummary {
	breakdown := make(map[string]models.BreakdownEntry, len(findings))

	var weightedSum float64
	var totalWeight int

	for name, finding := range findings {
		weight, ok := weights[name]
		if !ok {
			slog.Debug("analyzer has no weight, excluded from overall score", "analyzer", name)
			continue
		}

		sub := clamp(finding.Score())
		breakdown[name] = models.BreakdownEntry{Score: sub, Weight: weight}

		weightedSum += float64(sub) / 100 * float64(weight)
		totalWeight += weight
	}

	overall := 0
	if totalWeight > 0 {
		overall = int(math.Round(weightedSum / float64(totalWeight) * 100))
	}

	return models.ScoreSummary{
		Overall:   overall,
		Grade:     models.GradeFor(overall),
		Breakdown: breakdown,
	}
}

// clamp saturates a sub-score at the [0,100] boundaries. Finding
// implementations clamp their own scores already; this is the engine's
// guarantee against misbehaving variants.
func clamp(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
