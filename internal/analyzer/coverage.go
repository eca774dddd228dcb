package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// reCoverageTotal scrapes the aggregate statement percentage from test
// runner console output, e.g. `Statements   : 85.71% ( 60/70 )`.
var reCoverageTotal = regexp.MustCompile(`Statements\s*:\s*([\d.]+)%`)

// Filename patterns for the two coverage-weighting classes. Anything
// not clearly infrastructure is treated as core logic, biasing toward
// stricter scrutiny.
var (
	reCoreLogicFile      = regexp.MustCompile(`(?i)(controller|service|util|helper|config|constant|validation)`)
	reInfrastructureFile = regexp.MustCompile(`(?i)(route|middleware)`)
)

// Coverage sub-score weighting: business logic dominates because
// infrastructure glue is inherently thinner and less valuable to test
// exhaustively.
const (
	coreLogicWeight      = 0.8
	infrastructureWeight = 0.2
)

// FileCoverage is statement coverage for one file.
type FileCoverage struct {
	Path       string  `json:"path"`
	Statements float64 `json:"statements"`
}

// CoverageFinding is the result of the coverage analyzer. Files holds
// the structured per-file data when available; Aggregate is the raw
// statement percentage used by the fallback path.
type CoverageFinding struct {
	Success   bool           `json:"success"`
	Files     []FileCoverage `json:"files,omitempty"`
	Aggregate *float64       `json:"aggregate,omitempty"`
}

// Score computes the coverage sub-score. With per-file data it applies
// the two-tier weighting: mean statement coverage of core-logic files at
// 0.8 plus mean coverage of infrastructure files at 0.2. Without it, the
// raw aggregate passes through a convex curve that rewards crossing 70%
// (x1.1) and punishes falling under 40% (x0.8).
func (f *CoverageFinding) Score() int {
	if len(f.Files) > 0 {
		return clampScore(int(math.Round(f.weightedScore())))
	}
	if f.Aggregate != nil {
		return clampScore(int(math.Round(fallbackCurve(*f.Aggregate))))
	}
	return 0
}

func (f *CoverageFinding) weightedScore() float64 {
	var coreSum, infraSum float64
	var coreN, infraN int

	for _, fc := range f.Files {
		if classifyCoverageFile(fc.Path) == classInfrastructure {
			infraSum += fc.Statements
			infraN++
		} else {
			coreSum += fc.Statements
			coreN++
		}
	}

	switch {
	case coreN == 0 && infraN == 0:
		return 0
	case infraN == 0:
		return coreSum / float64(coreN)
	case coreN == 0:
		return infraSum / float64(infraN)
	}
	return coreLogicWeight*(coreSum/float64(coreN)) + infrastructureWeight*(infraSum/float64(infraN))
}

// fallbackCurve applies the convex reward curve to a raw aggregate
// percentage.
func fallbackCurve(pct float64) float64 {
	switch {
	case pct >= 70:
		return pct * 1.1
	case pct >= 40:
		return pct
	default:
		return pct * 0.8
	}
}

type coverageClass int

const (
	classCoreLogic coverageClass = iota
	classInfrastructure
)

// classifyCoverageFile assigns a file to a weighting class by name.
// Names matching both sets of patterns count as core logic.
func classifyCoverageFile(path string) coverageClass {
	base := filepath.Base(path)
	if reCoreLogicFile.MatchString(base) {
		return classCoreLogic
	}
	if reInfrastructureFile.MatchString(base) || reInfrastructureFile.MatchString(filepath.ToSlash(path)) {
		return classInfrastructure
	}
	return classCoreLogic
}

func (f *CoverageFinding) Summary() string {
	score := f.Score()
	switch {
	case len(f.Files) > 0:
		return fmt.Sprintf("weighted coverage %d%% across %d files", score, len(f.Files))
	case f.Aggregate != nil:
		return fmt.Sprintf("statement coverage %.1f%%", *f.Aggregate)
	}
	return "no coverage data"
}

func (f *CoverageFinding) Succeeded() bool { return f.Success }

// summaryFileName is the structured coverage summary the test runner
// writes (istanbul json-summary format).
var summaryFileName = filepath.Join("coverage", "coverage-summary.json")

// runCoverage prefers the structured coverage summary; when it is
// missing, the test runner is invoked to produce one, and its console
// output is scraped as a last resort. When both sources are present and
// disagree, the structured value wins and the disagreement is logged,
// nothing more.
func runCoverage(ctx context.Context, env *Env) (Finding, error) {
	finding := &CoverageFinding{Success: true}

	files, total, ok := readCoverageSummary(env.Root)
	var scraped *float64

	if !ok {
		output, err := runTool(ctx, env, "npx", "jest", "--coverage",
			"--coverageReporters=json-summary", "--coverageReporters=text", "--silent")
		if err != nil {
			return nil, err
		}
		files, total, ok = readCoverageSummary(env.Root)
		scraped = scrapeCoverage(string(output))
	}

	if ok {
		finding.Files = files
		finding.Aggregate = total
		if scraped != nil && total != nil && math.Abs(*scraped-*total) > 1.0 {
			slog.Warn("structured and scraped coverage disagree, preferring structured",
				"structured", *total,
				"scraped", *scraped)
		}
		return finding, nil
	}

	if scraped != nil {
		finding.Aggregate = scraped
	}
	return finding, nil
}

// istanbulEntry is one file (or the "total" key) in json-summary output.
type istanbulEntry struct {
	Statements struct {
		Pct float64 `json:"pct"`
	} `json:"statements"`
}

// readCoverageSummary parses coverage/coverage-summary.json under root.
func readCoverageSummary(root string) ([]FileCoverage, *float64, bool) {
	data, err := os.ReadFile(filepath.Join(root, summaryFileName))
	if err != nil {
		return nil, nil, false
	}

	var raw map[string]istanbulEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("malformed coverage summary", "error", err)
		return nil, nil, false
	}

	var files []FileCoverage
	var total *float64
	for path, entry := range raw {
		if path == "total" {
			pct := entry.Statements.Pct
			total = &pct
			continue
		}
		files = append(files, FileCoverage{Path: path, Statements: entry.Statements.Pct})
	}

	return files, total, len(files) > 0 || total != nil
}

// scrapeCoverage extracts the aggregate statement percentage from
// console output.
func scrapeCoverage(output string) *float64 {
	m := reCoverageTotal.FindStringSubmatch(output)
	if m == nil {
		return nil
	}
	pct, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	if err != nil {
		return nil
	}
	return &pct
}
