package rules

import (
	"fmt"
	"regexp"
)

// Problem describes one validation error or warning with field context.
type Problem struct {
	RuleID  string
	Field   string
	Message string
}

// String formats the problem for display.
func (p Problem) String() string {
	if p.RuleID != "" {
		return fmt.Sprintf("rule %q: field %q: %s", p.RuleID, p.Field, p.Message)
	}
	return fmt.Sprintf("field %q: %s", p.Field, p.Message)
}

// Stats summarizes the contents of a validated rule set.
type Stats struct {
	RuleCount     int              `json:"rule_count"`
	CategoryCount int              `json:"category_count"`
	BySeverity    map[Severity]int `json:"by_severity"`
}

// ValidationResult is the outcome of validating a full rule set.
// Errors block a run; warnings do not.
type ValidationResult struct {
	Valid    bool      `json:"valid"`
	Errors   []Problem `json:"errors"`
	Warnings []Problem `json:"warnings"`
	Stats    Stats     `json:"stats"`
}

// Validate checks every rule and category in the set. Missing required
// rule fields, invalid regex syntax, unrecognized severities, and
// duplicate ids are errors. Missing examples and missing category
// priority/description are warnings: the set stays usable with
// incomplete documentation metadata.
func (s *RuleSet) Validate() *ValidationResult {
	res := &ValidationResult{
		Stats: Stats{
			RuleCount:     len(s.rules),
			CategoryCount: len(s.categories),
			BySeverity:    make(map[Severity]int),
		},
	}

	seen := make(map[string]bool, len(s.rules))
	for _, r := range s.rules {
		res.Errors = append(res.Errors, validateRule(r)...)

		if r.ID != "" {
			if seen[r.ID] {
				res.Errors = append(res.Errors, Problem{
					RuleID:  r.ID,
					Field:   "id",
					Message: "duplicate rule id",
				})
			}
			seen[r.ID] = true
		}

		if r.Example == nil {
			res.Warnings = append(res.Warnings, Problem{
				RuleID:  r.ID,
				Field:   "example",
				Message: "missing example",
			})
		}

		if r.Severity.IsValid() {
			res.Stats.BySeverity[r.Severity]++
		}
	}

	for _, c := range s.categories {
		if c.Priority == "" {
			res.Warnings = append(res.Warnings, Problem{
				Field:   "priority",
				Message: fmt.Sprintf("category %q has no priority", c.Name),
			})
		}
		if c.Description == "" {
			res.Warnings = append(res.Warnings, Problem{
				Field:   "description",
				Message: fmt.Sprintf("category %q has no description", c.Name),
			})
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// requiredFields maps field names to their accessors, checked in order.
var requiredFields = []struct {
	name string
	get  func(*Rule) string
}{
	{"id", func(r *Rule) string { return r.ID }},
	{"category", func(r *Rule) string { return r.Category }},
	{"severity", func(r *Rule) string { return string(r.Severity) }},
	{"description", func(r *Rule) string { return r.Description }},
	{"pattern", func(r *Rule) string { return r.Pattern }},
	{"suggestion", func(r *Rule) string { return r.Suggestion }},
}

// validateRule checks a single rule in isolation: required fields,
// severity enum membership, and regex syntax for the content pattern and
// every file glob. It never panics on malformed input.
func validateRule(r Rule) []Problem {
	var problems []Problem

	for _, f := range requiredFields {
		if f.get(&r) == "" {
			problems = append(problems, Problem{
				RuleID:  r.ID,
				Field:   f.name,
				Message: "missing required field",
			})
		}
	}

	if r.Severity != "" && !r.Severity.IsValid() {
		problems = append(problems, Problem{
			RuleID:  r.ID,
			Field:   "severity",
			Message: fmt.Sprintf("must be one of CRITICAL, ERROR, WARNING, INFO (got %q)", r.Severity),
		})
	}

	if r.Pattern != "" {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			problems = append(problems, Problem{
				RuleID:  r.ID,
				Field:   "pattern",
				Message: fmt.Sprintf("invalid regex: %v", err),
			})
		}
	}

	for _, g := range r.Files {
		if _, err := globToRegexp(g); err != nil {
			problems = append(problems, Problem{
				RuleID:  r.ID,
				Field:   "files",
				Message: fmt.Sprintf("invalid glob %q: %v", g, err),
			})
		}
	}

	return problems
}
