package rules

import (
	"path/filepath"
	"regexp"
	"strings"
)

// RulesForFile returns every rule that applies to path. A rule without a
// Files restriction applies to all files; otherwise the rule applies when
// any of its precompiled glob regexes matches the slash-normalized path.
// The result depends only on the path and the current rule list, so
// repeated calls are idempotent.
func (s *RuleSet) RulesForFile(path string) []Rule {
	path = filepath.ToSlash(path)

	var matched []Rule
	for _, r := range s.rules {
		if len(r.Files) == 0 {
			matched = append(matched, r)
			continue
		}
		c := s.compiled[r.ID]
		if c == nil {
			continue
		}
		for _, re := range c.files {
			if re.MatchString(path) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// globToRegexp translates a glob pattern to an anchored regexp.
// Translation rules: `**` matches any sequence including separators,
// `*` matches any sequence excluding separators, `?` matches exactly one
// non-separator character. All other characters are quoted literally, so
// a glob can never accidentally cross an explicitly spelled-out path
// segment boundary.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				b.WriteString(".*")
				i++
			} else {
				b.WriteString("[^/]*")
			}
		case '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(runes[i])))
		}
	}

	b.WriteString("$")
	return regexp.Compile(b.String())
}
