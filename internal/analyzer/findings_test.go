package analyzer

import (
	"testing"

	"github.com/codegrade/codegrade/internal/rules"
)

func TestLintScore(t *testing.T) {
	tests := []struct {
		name     string
		errors   int
		warnings int
		want     int
	}{
		{"clean", 0, 0, 100},
		{"spec_example", 3, 2, 92},
		{"clamps_at_zero", 60, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &LintFinding{Success: true, Errors: tt.errors, Warnings: tt.warnings}
			if got := f.Score(); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTypeCheckScoreBinary(t *testing.T) {
	clean := &TypeCheckFinding{Success: true}
	if clean.Score() != 100 {
		t.Errorf("zero errors score = %d, want 100", clean.Score())
	}
	dirty := &TypeCheckFinding{Success: true, Errors: 1}
	if dirty.Score() != 0 {
		t.Errorf("one error score = %d, want 0", dirty.Score())
	}
}

func TestVulnScore(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 100},
		{1, 80},
		{3, 40},
		{6, 0}, // clamped
	}

	for _, tt := range tests {
		f := &VulnFinding{Success: true, Count: tt.count}
		if got := f.Score(); got != tt.want {
			t.Errorf("Score(count=%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestComplexityScorePassthrough(t *testing.T) {
	absent := &ComplexityFinding{Success: true}
	if absent.Score() != 100 {
		t.Errorf("absent score = %d, want default 100", absent.Score())
	}

	v := 63.4
	present := &ComplexityFinding{Success: true, Computed: &v}
	if present.Score() != 63 {
		t.Errorf("score = %d, want 63", present.Score())
	}

	over := 140.0
	clamped := &ComplexityFinding{Success: true, Computed: &over}
	if clamped.Score() != 100 {
		t.Errorf("score = %d, want clamped 100", clamped.Score())
	}
}

func TestBugScorePenalties(t *testing.T) {
	tests := []struct {
		name    string
		finding BugFinding
		want    int
	}{
		{"clean", BugFinding{}, 100},
		{"one_critical", BugFinding{Critical: 1}, 75},
		{"one_security", BugFinding{Security: 1}, 70},
		{"mixed", BugFinding{Critical: 1, Security: 1, General: 2, Performance: 1}, 25},
		{"clamped", BugFinding{Security: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.finding.Score(); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestScoringMonotonicity verifies that increasing any single violation
// count never increases the sub-score.
func TestScoringMonotonicity(t *testing.T) {
	for n := 0; n < 80; n++ {
		a := &LintFinding{Errors: n}
		b := &LintFinding{Errors: n + 1}
		if b.Score() > a.Score() {
			t.Fatalf("lint score rose from %d to %d at %d errors", a.Score(), b.Score(), n)
		}

		c := &VulnFinding{Count: n}
		d := &VulnFinding{Count: n + 1}
		if d.Score() > c.Score() {
			t.Fatalf("vuln score rose at count %d", n)
		}

		e := &BugFinding{General: n}
		f := &BugFinding{General: n + 1}
		if f.Score() > e.Score() {
			t.Fatalf("bug score rose at count %d", n)
		}
	}
}

func TestRulesFindingScore(t *testing.T) {
	f := &RulesFinding{
		Success: true,
		Violations: []Violation{
			{Severity: rules.SeverityCritical}, // 10
			{Severity: rules.SeverityError},    // 5
			{Severity: rules.SeverityWarning},  // 2
			{Severity: rules.SeverityInfo},     // 1
		},
	}
	if got := f.Score(); got != 82 {
		t.Errorf("Score() = %d, want 82", got)
	}

	empty := &RulesFinding{Success: true}
	if empty.Score() != 100 {
		t.Errorf("empty score = %d, want 100", empty.Score())
	}
}

func TestTrimToJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean_object", `{"a":1}`, `{"a":1}`},
		{"banner_before_array", "npm WARN something\n[{\"a\":1}]", `[{"a":1}]`},
		{"trailing_noise", `{"a":1}` + "\ndone", `{"a":1}`},
		{"no_json", "plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(trimToJSON([]byte(tt.in))); got != tt.want {
				t.Errorf("trimToJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
