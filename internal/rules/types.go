// Package rules implements user-defined pattern rules: validation of rule
// definitions, glob-based file matching, and mutation of rule sets between
// runs. Rules match raw file content with regular expressions; there is no
// AST involved.
package rules

// Severity classifies how serious a rule violation is.
type Severity string

// Recognized severities, strongest first.
const (
	SeverityCritical Severity = "CRITICAL"
	SeverityError    Severity = "ERROR"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

// ValidSeverities lists all recognized severities in canonical order.
var ValidSeverities = []Severity{
	SeverityCritical,
	SeverityError,
	SeverityWarning,
	SeverityInfo,
}

// IsValid checks whether the Severity is a recognized value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Rank returns the ordering weight of a severity. Higher is more severe.
// Unknown severities rank below INFO so filters fail open.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// Priority classifies a category's importance.
type Priority string

// Recognized category priorities.
const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Example holds a bad/good code pair documenting a rule.
type Example struct {
	Bad  string `yaml:"bad" json:"bad"`
	Good string `yaml:"good" json:"good"`
}

// Rule is a single user-defined pattern rule. Pattern is a regular
// expression applied to raw file content; Files optionally restricts the
// rule to paths matching any of the listed glob patterns.
type Rule struct {
	ID          string   `yaml:"id" json:"id"`
	Category    string   `yaml:"category" json:"category"`
	Severity    Severity `yaml:"severity" json:"severity"`
	Description string   `yaml:"description" json:"description"`
	Pattern     string   `yaml:"pattern" json:"pattern"`
	Suggestion  string   `yaml:"suggestion" json:"suggestion"`
	Files       []string `yaml:"files,omitempty" json:"files,omitempty"`
	Example     *Example `yaml:"example,omitempty" json:"example,omitempty"`
}

// Category groups related rules. Priority and Description are
// documentation-quality metadata: their absence is a warning, not an error.
type Category struct {
	Name        string   `yaml:"name" json:"name"`
	Priority    Priority `yaml:"priority,omitempty" json:"priority,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}
