package rules

import (
	"errors"
	"testing"
)

func TestAddRule(t *testing.T) {
	s := New([]Rule{goodRule("existing")}, nil)

	if err := s.AddRule(goodRule("new-rule")); err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.Pattern("new-rule") == nil {
		t.Error("Pattern(new-rule) = nil, want compiled regex")
	}
}

func TestAddRuleRejectsDuplicate(t *testing.T) {
	s := New([]Rule{goodRule("existing")}, nil)

	err := s.AddRule(goodRule("existing"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("AddRule(duplicate) error = %v, want ErrDuplicateID", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d after rejected add, want 1", s.Len())
	}
}

func TestAddRuleRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rule)
	}{
		{"missing_description", func(r *Rule) { r.Description = "" }},
		{"bad_regex", func(r *Rule) { r.Pattern = "(" }},
		{"bad_severity", func(r *Rule) { r.Severity = "BLOCKER" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil, nil)
			r := goodRule("candidate")
			tt.mutate(&r)

			if err := s.AddRule(r); !errors.Is(err, ErrInvalidRule) {
				t.Errorf("AddRule() error = %v, want ErrInvalidRule", err)
			}
			if s.Len() != 0 {
				t.Errorf("invalid rule was committed, Len() = %d", s.Len())
			}
		})
	}
}

func TestRemoveRule(t *testing.T) {
	s := New([]Rule{goodRule("keep"), goodRule("drop")}, nil)

	if err := s.RemoveRule("drop"); err != nil {
		t.Fatalf("RemoveRule() error = %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if err := s.RemoveRule("drop"); !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("RemoveRule(missing) error = %v, want ErrRuleNotFound", err)
	}
}

func TestUpdateRule(t *testing.T) {
	s := New([]Rule{goodRule("target")}, nil)

	updated := goodRule("target")
	updated.Pattern = `eval\(`
	if err := s.UpdateRule(updated); err != nil {
		t.Fatalf("UpdateRule() error = %v", err)
	}
	if got := s.Pattern("target"); got == nil || got.String() != `eval\(` {
		t.Errorf("Pattern(target) = %v, want recompiled eval pattern", got)
	}

	missing := goodRule("nonexistent")
	if err := s.UpdateRule(missing); !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("UpdateRule(missing) error = %v, want ErrRuleNotFound", err)
	}

	invalid := goodRule("target")
	invalid.Suggestion = ""
	if err := s.UpdateRule(invalid); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("UpdateRule(invalid) error = %v, want ErrInvalidRule", err)
	}
}

func TestSeverityRank(t *testing.T) {
	order := []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("Rank(%s) = %d not above Rank(%s) = %d",
				order[i], order[i].Rank(), order[i-1], order[i-1].Rank())
		}
	}
	if Severity("BOGUS").Rank() != 0 {
		t.Errorf("unknown severity rank = %d, want 0", Severity("BOGUS").Rank())
	}
}
