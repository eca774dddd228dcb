package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/codegrade/codegrade/internal/rules"
)

// Per-violation score penalties by severity.
var severityPenalty = map[rules.Severity]int{
	rules.SeverityCritical: 10,
	rules.SeverityError:    5,
	rules.SeverityWarning:  2,
	rules.SeverityInfo:     1,
}

// skipDirectories are never descended into during a scan.
var skipDirectories = []string{
	".git",
	"node_modules",
	"vendor",
	"dist",
	"build",
	"coverage",
	".codegrade",
}

// maxScanFileSize caps the file size the rule scanner will read.
const maxScanFileSize = 1 << 20

// RulesFinding is the result of the custom-rules analyzer.
type RulesFinding struct {
	Success      bool        `json:"success"`
	FilesScanned int         `json:"files_scanned"`
	Violations   []Violation `json:"violations,omitempty"`
	Warnings     []string    `json:"warnings,omitempty"`
}

// Score deducts a per-severity penalty for every violation: CRITICAL 10,
// ERROR 5, WARNING 2, INFO 1. Clamped at 0.
func (f *RulesFinding) Score() int {
	score := 100
	for _, v := range f.Violations {
		score -= severityPenalty[v.Severity]
	}
	return clampScore(score)
}

func (f *RulesFinding) Summary() string {
	return fmt.Sprintf("%d rule violations in %d files scanned", len(f.Violations), f.FilesScanned)
}

func (f *RulesFinding) Succeeded() bool { return f.Success }

// runCustomRules scans every source file under the project root against
// the rule set. Files are scanned in parallel; each file's violations
// are accumulated independently and merged under a single lock, so no
// ordering is imposed beyond the final sort.
func runCustomRules(ctx context.Context, env *Env) (Finding, error) {
	if env.RuleSet == nil || env.RuleSet.Len() == 0 {
		return &RulesFinding{Success: true}, nil
	}

	paths, err := collectFiles(env.Root, env.Ignore)
	if err != nil {
		return nil, fmt.Errorf("walk project root: %w", err)
	}

	finding := &RulesFinding{Success: true, FilesScanned: len(paths)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	workers := env.Workers
	if workers <= 0 {
		workers = 4
	}
	g.SetLimit(workers)

	for _, rel := range paths {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			violations, warnings := scanFile(env.Root, rel, env.RuleSet, env.MinSeverity)

			mu.Lock()
			finding.Violations = append(finding.Violations, violations...)
			finding.Warnings = append(finding.Warnings, warnings...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(finding.Violations, func(i, j int) bool {
		a, b := finding.Violations[i], finding.Violations[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.RuleID < b.RuleID
	})

	return finding, nil
}

// collectFiles walks root and returns slash-separated relative paths of
// the regular files eligible for scanning. Paths are NFC-normalized so
// rule globs match regardless of the filesystem's unicode form.
func collectFiles(root string, ignore []string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A disappearing file mid-walk is not fatal to the scan.
			slog.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			for _, skip := range skipDirectories {
				if name == skip {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = norm.NFC.String(filepath.ToSlash(rel))

		for _, pattern := range ignore {
			if matched, _ := doublestar.Match(pattern, rel); matched {
				return nil
			}
		}

		if info, infoErr := d.Info(); infoErr == nil && info.Size() > maxScanFileSize {
			return nil
		}

		paths = append(paths, rel)
		return nil
	})

	return paths, err
}

// scanFile applies every applicable rule to one file's content and
// returns the violations found plus any per-rule warnings. A rule whose
// compiled pattern is unavailable at match time is reported as a
// warning, never a crash.
func scanFile(root, rel string, rs *rules.RuleSet, minSeverity rules.Severity) ([]Violation, []string) {
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, []string{fmt.Sprintf("read %s: %v", rel, err)}
	}
	if isBinary(content) {
		return nil, nil
	}

	text := string(content)
	var violations []Violation
	var warnings []string

	for _, r := range rs.RulesForFile(rel) {
		if minSeverity != "" && r.Severity.Rank() < minSeverity.Rank() {
			continue
		}

		re := rs.Pattern(r.ID)
		if re == nil {
			warnings = append(warnings, fmt.Sprintf("rule %q: pattern unavailable at match time", r.ID))
			continue
		}

		for _, loc := range re.FindAllStringIndex(text, -1) {
			violations = append(violations, Violation{
				File:       rel,
				Line:       1 + strings.Count(text[:loc[0]], "\n"),
				RuleID:     r.ID,
				Severity:   r.Severity,
				Message:    r.Description,
				Suggestion: r.Suggestion,
				Matched:    truncate(text[loc[0]:loc[1]], 200),
			})
		}
	}

	return violations, warnings
}

// isBinary sniffs for a NUL byte in the file head.
func isBinary(content []byte) bool {
	head := content
	if len(head) > 8000 {
		head = head[:8000]
	}
	return bytes.IndexByte(head, 0) >= 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
