package rules

import (
	"testing"
)

func TestGlobToRegexp(t *testing.T) {
	tests := []struct {
		name    string
		glob    string
		path    string
		want    bool
		wantErr bool
	}{
		{"star_same_dir", "src/*.js", "src/app.js", true, false},
		{"star_no_separator", "src/*.js", "src/sub/app.js", false, false},
		{"doublestar_crosses_dirs", "src/**/*.js", "src/a/b/app.js", true, false},
		{"doublestar_alone", "**", "any/depth/file.txt", true, false},
		{"question_single_char", "file?.go", "file1.go", true, false},
		{"question_not_two_chars", "file?.go", "file12.go", false, false},
		{"question_not_separator", "a?b", "a/b", false, false},
		{"literal_dot_quoted", "a.go", "axgo", false, false},
		{"exact_literal", "main.go", "main.go", true, false},
		{"anchored_no_prefix", "*.go", "cmd/main.go", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := globToRegexp(tt.glob)
			if (err != nil) != tt.wantErr {
				t.Fatalf("globToRegexp(%q) error = %v, wantErr %v", tt.glob, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := re.MatchString(tt.path); got != tt.want {
				t.Errorf("glob %q match %q = %v, want %v", tt.glob, tt.path, got, tt.want)
			}
		})
	}
}

func TestRulesForFile(t *testing.T) {
	everywhere := goodRule("everywhere")

	jsOnly := goodRule("js-only")
	jsOnly.Files = []string{"**/*.js", "*.js"}

	controllers := goodRule("controllers")
	controllers.Files = []string{"src/controllers/*.go"}

	s := New([]Rule{everywhere, jsOnly, controllers}, nil)

	tests := []struct {
		name    string
		path    string
		wantIDs []string
	}{
		{"js_file", "web/app.js", []string{"everywhere", "js-only"}},
		{"root_js", "app.js", []string{"everywhere", "js-only"}},
		{"controller", "src/controllers/user.go", []string{"everywhere", "controllers"}},
		{"nested_not_controller", "src/controllers/v2/user.go", []string{"everywhere"}},
		{"unrelated", "README.md", []string{"everywhere"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.RulesForFile(tt.path)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("RulesForFile(%q) returned %d rules, want %d", tt.path, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("rule[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestRulesForFileIdempotent(t *testing.T) {
	r := goodRule("scoped")
	r.Files = []string{"internal/**"}
	s := New([]Rule{goodRule("global"), r}, nil)

	// Interleave different paths; results for a given path must not drift.
	first := s.RulesForFile("internal/a/b.go")
	s.RulesForFile("other/path.go")
	s.RulesForFile("README.md")
	second := s.RulesForFile("internal/a/b.go")

	if len(first) != len(second) {
		t.Fatalf("result drifted: %d vs %d rules", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("rule[%d] drifted: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}
