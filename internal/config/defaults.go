package config

import "time"

// DefaultAnalyzers is the analyzer list used when none is configured.
var DefaultAnalyzers = []string{
	"lint",
	"typecheck",
	"vulns",
	"complexity",
	"bugs",
	"coverage",
	"custom-rules",
}

// DefaultWeights is the weight table used when none is configured.
// Coverage and custom rules dominate because they reflect the project's
// own quality bar rather than tool defaults.
var DefaultWeights = map[string]int{
	"lint":         15,
	"typecheck":    15,
	"vulns":        15,
	"complexity":   10,
	"bugs":         15,
	"coverage":     20,
	"custom-rules": 10,
}

// DefaultIgnore lists glob patterns excluded from scans by default.
var DefaultIgnore = []string{
	"**/node_modules/**",
	"**/vendor/**",
	"**/.git/**",
	"**/dist/**",
	"**/build/**",
	"**/*.min.js",
	"**/*.min.css",
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Analyzers: append([]string(nil), DefaultAnalyzers...),
		Weights:   cloneWeights(DefaultWeights),
		Ignore:    append([]string(nil), DefaultIgnore...),
		Mode:      ModePlain,
		Output:    ".codegrade/reports",
		Tools: ToolsConfig{
			Timeout: 60 * time.Second,
			Workers: 4,
			Retries: 1,
		},
		System: SystemConfig{
			LogLevel: "info",
		},
	}
}

func cloneWeights(w map[string]int) map[string]int {
	out := make(map[string]int, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
