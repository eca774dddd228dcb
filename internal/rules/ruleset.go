package rules

import (
	"errors"
	"fmt"
	"regexp"
)

// Sentinel errors for rule set mutation operations.
var (
	// ErrDuplicateID indicates a rule id already exists in the set.
	ErrDuplicateID = errors.New("rules: duplicate rule id")

	// ErrRuleNotFound indicates the requested rule id does not exist.
	ErrRuleNotFound = errors.New("rules: rule not found")

	// ErrInvalidRule indicates a rule failed single-rule validation.
	ErrInvalidRule = errors.New("rules: invalid rule")
)

// compiledRule caches the regexes derived from a rule at construction
// time: the content pattern and one regex per file glob. A nil pattern
// means the source regex did not compile; Validate reports it and the
// matcher skips the rule.
type compiledRule struct {
	pattern *regexp.Regexp
	files   []*regexp.Regexp
}

// RuleSet is the validated collection of rules and categories for a run.
// It is immutable during a run; mutation operations re-validate before
// committing and recompile the affected rule's cached regexes.
type RuleSet struct {
	rules      []Rule
	categories []Category
	compiled   map[string]*compiledRule
}

// New builds a RuleSet and precompiles every rule's pattern and file
// globs. Compilation failures are tolerated here so that Validate can
// report them all at once; callers must check Validate before running.
func New(ruleList []Rule, categories []Category) *RuleSet {
	s := &RuleSet{
		rules:      append([]Rule(nil), ruleList...),
		categories: append([]Category(nil), categories...),
		compiled:   make(map[string]*compiledRule, len(ruleList)),
	}
	for _, r := range s.rules {
		s.compiled[r.ID] = compile(r)
	}
	return s
}

// compile builds the cached regexes for a single rule.
func compile(r Rule) *compiledRule {
	c := &compiledRule{}
	if re, err := regexp.Compile(r.Pattern); err == nil {
		c.pattern = re
	}
	for _, g := range r.Files {
		if re, err := globToRegexp(g); err == nil {
			c.files = append(c.files, re)
		}
	}
	return c
}

// Rules returns a copy of the rule list.
func (s *RuleSet) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Categories returns a copy of the category list.
func (s *RuleSet) Categories() []Category {
	return append([]Category(nil), s.categories...)
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Pattern returns the compiled content regex for a rule id, or nil if
// the rule does not exist or its pattern failed to compile.
func (s *RuleSet) Pattern(id string) *regexp.Regexp {
	if c, ok := s.compiled[id]; ok {
		return c.pattern
	}
	return nil
}

// AddRule validates the rule in isolation, rejects duplicate ids against
// the current list, and appends it to the set.
func (s *RuleSet) AddRule(r Rule) error {
	if problems := validateRule(r); len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRule, problems[0])
	}
	if _, exists := s.compiled[r.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
	}
	s.rules = append(s.rules, r)
	s.compiled[r.ID] = compile(r)
	return nil
}

// RemoveRule deletes the rule with the given id.
func (s *RuleSet) RemoveRule(id string) error {
	if _, exists := s.compiled[id]; !exists {
		return fmt.Errorf("%w: %q", ErrRuleNotFound, id)
	}
	for i, r := range s.rules {
		if r.ID == id {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			break
		}
	}
	delete(s.compiled, id)
	return nil
}

// UpdateRule replaces the rule whose id matches r.ID. The replacement is
// validated in isolation first; the id must already exist.
func (s *RuleSet) UpdateRule(r Rule) error {
	if problems := validateRule(r); len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRule, problems[0])
	}
	if _, exists := s.compiled[r.ID]; !exists {
		return fmt.Errorf("%w: %q", ErrRuleNotFound, r.ID)
	}
	for i := range s.rules {
		if s.rules[i].ID == r.ID {
			s.rules[i] = r
			break
		}
	}
	s.compiled[r.ID] = compile(r)
	return nil
}
