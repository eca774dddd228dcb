package rules

import (
	"strings"
	"testing"
)

// goodRule returns a fully populated valid rule for tests to mutate.
func goodRule(id string) Rule {
	return Rule{
		ID:          id,
		Category:    "style",
		Severity:    SeverityWarning,
		Description: "no console logging",
		Pattern:     `console\.log\(`,
		Suggestion:  "use the logger instead",
		Example:     &Example{Bad: "console.log(x)", Good: "logger.debug(x)"},
	}
}

func TestValidateValidSet(t *testing.T) {
	s := New(
		[]Rule{goodRule("no-console"), goodRule("no-debugger")},
		[]Category{{Name: "style", Priority: PriorityLow, Description: "stylistic rules"}},
	)

	res := s.Validate()
	if !res.Valid {
		t.Fatalf("Valid = false, errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("Errors = %v, want empty", res.Errors)
	}
	if res.Stats.RuleCount != 2 {
		t.Errorf("Stats.RuleCount = %d, want 2", res.Stats.RuleCount)
	}
	if res.Stats.CategoryCount != 1 {
		t.Errorf("Stats.CategoryCount = %d, want 1", res.Stats.CategoryCount)
	}
	if res.Stats.BySeverity[SeverityWarning] != 2 {
		t.Errorf("BySeverity[WARNING] = %d, want 2", res.Stats.BySeverity[SeverityWarning])
	}
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Rule)
		wantField string
	}{
		{"missing_id", func(r *Rule) { r.ID = "" }, "id"},
		{"missing_category", func(r *Rule) { r.Category = "" }, "category"},
		{"missing_severity", func(r *Rule) { r.Severity = "" }, "severity"},
		{"missing_description", func(r *Rule) { r.Description = "" }, "description"},
		{"missing_pattern", func(r *Rule) { r.Pattern = "" }, "pattern"},
		{"missing_suggestion", func(r *Rule) { r.Suggestion = "" }, "suggestion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := goodRule("r1")
			tt.mutate(&r)
			res := New([]Rule{r}, nil).Validate()

			if res.Valid {
				t.Fatal("Valid = true, want false")
			}
			found := false
			for _, p := range res.Errors {
				if p.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error naming field %q in %v", tt.wantField, res.Errors)
			}
		})
	}
}

func TestValidateInvalidRegex(t *testing.T) {
	r := goodRule("bad-regex")
	r.Pattern = `[unclosed`
	res := New([]Rule{r}, nil).Validate()

	if res.Valid {
		t.Fatal("Valid = true, want false")
	}
	count := 0
	for _, p := range res.Errors {
		if p.Field == "pattern" && strings.Contains(p.Message, "invalid regex") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("pattern errors = %d, want exactly 1", count)
	}
}

func TestValidateInvalidSeverity(t *testing.T) {
	r := goodRule("bad-sev")
	r.Severity = "FATAL"
	res := New([]Rule{r}, nil).Validate()

	if res.Valid {
		t.Fatal("Valid = true, want false")
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	// Duplicate ids are an error even when every other field is valid.
	res := New([]Rule{goodRule("dup"), goodRule("dup")}, nil).Validate()

	if res.Valid {
		t.Fatal("Valid = true, want false")
	}
	found := false
	for _, p := range res.Errors {
		if p.RuleID == "dup" && strings.Contains(p.Message, "duplicate") {
			found = true
		}
	}
	if !found {
		t.Errorf("no duplicate-id error in %v", res.Errors)
	}
}

func TestValidateWarnings(t *testing.T) {
	r := goodRule("no-example")
	r.Example = nil
	s := New([]Rule{r}, []Category{{Name: "bare"}})

	res := s.Validate()
	if !res.Valid {
		t.Fatalf("warnings must not invalidate the set, errors: %v", res.Errors)
	}
	// missing example + missing category priority + missing category description
	if len(res.Warnings) != 3 {
		t.Errorf("Warnings = %d (%v), want 3", len(res.Warnings), res.Warnings)
	}
}
