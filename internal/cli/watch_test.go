package cli

import "testing"

func TestIgnoreWatchEvent(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"project/src/app.js", false},
		{"project/node_modules", true},
		{"project/node_modules/left-pad/index.js", true},
		{"project/.git/HEAD", true},
		{"project/.codegrade/reports/report.json", true},
		{"project/coverage/coverage-summary.json", true},
		{"project/dist/bundle.js", true},
		{"project/builder/main.js", false},
		{"project/distribution.md", false},
	}
	for _, tt := range tests {
		if got := ignoreWatchEvent(tt.path); got != tt.want {
			t.Errorf("ignoreWatchEvent(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
