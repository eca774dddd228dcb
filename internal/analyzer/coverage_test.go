package analyzer

import (
	"testing"
)

func TestCoverageTwoTierWeighting(t *testing.T) {
	// Core-logic files averaging 90% and infrastructure files averaging
	// 50% must yield 0.8*90 + 0.2*50 = 82.
	f := &CoverageFinding{
		Success: true,
		Files: []FileCoverage{
			{Path: "src/userService.js", Statements: 95},
			{Path: "src/orderController.js", Statements: 85},
			{Path: "src/routes/api.js", Statements: 40},
			{Path: "src/middleware/auth.js", Statements: 60},
		},
	}
	if got := f.Score(); got != 82 {
		t.Errorf("Score() = %d, want 82", got)
	}
}

func TestCoverageClassification(t *testing.T) {
	tests := []struct {
		path string
		want coverageClass
	}{
		{"src/userController.js", classCoreLogic},
		{"src/authService.ts", classCoreLogic},
		{"lib/stringUtil.js", classCoreLogic},
		{"lib/dateHelper.js", classCoreLogic},
		{"app/config.js", classCoreLogic},
		{"app/constants.js", classCoreLogic},
		{"app/validation.js", classCoreLogic},
		{"src/routes/users.js", classInfrastructure},
		{"src/middleware/cors.js", classInfrastructure},
		// Ambiguous names default to core logic for stricter scrutiny.
		{"src/index.js", classCoreLogic},
		{"src/app.js", classCoreLogic},
		// Matching both classes counts as core logic.
		{"src/routeService.js", classCoreLogic},
	}

	for _, tt := range tests {
		if got := classifyCoverageFile(tt.path); got != tt.want {
			t.Errorf("classifyCoverageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCoverageFallbackCurve(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want int
	}{
		{"high_boosted", 80, 88},   // 80*1.1
		{"boost_clamped", 95, 100}, // 95*1.1 = 104.5 -> 100
		{"threshold_70", 70, 77},
		{"mid_passthrough", 55, 55},
		{"low_penalized", 30, 24}, // 30*0.8
		{"just_under_40", 39, 31}, // 39*0.8 = 31.2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct := tt.pct
			f := &CoverageFinding{Success: true, Aggregate: &pct}
			if got := f.Score(); got != tt.want {
				t.Errorf("Score(aggregate=%.0f) = %d, want %d", tt.pct, got, tt.want)
			}
		})
	}
}

func TestCoverageNoData(t *testing.T) {
	f := &CoverageFinding{Success: true}
	if f.Score() != 0 {
		t.Errorf("no-data score = %d, want 0", f.Score())
	}
}

func TestCoverageSingleClassOnly(t *testing.T) {
	coreOnly := &CoverageFinding{
		Success: true,
		Files: []FileCoverage{
			{Path: "a/service.js", Statements: 80},
			{Path: "b/helper.js", Statements: 60},
		},
	}
	if got := coreOnly.Score(); got != 70 {
		t.Errorf("core-only score = %d, want plain mean 70", got)
	}

	infraOnly := &CoverageFinding{
		Success: true,
		Files: []FileCoverage{
			{Path: "routes/a.js", Statements: 50},
		},
	}
	if got := infraOnly.Score(); got != 50 {
		t.Errorf("infra-only score = %d, want 50", got)
	}
}

func TestScrapeCoverage(t *testing.T) {
	out := `
=============================== Coverage summary ===============================
Statements   : 85.71% ( 60/70 )
Branches     : 50% ( 10/20 )
================================================================================
`
	pct := scrapeCoverage(out)
	if pct == nil || *pct != 85.71 {
		t.Errorf("scrapeCoverage() = %v, want 85.71", pct)
	}
	if scrapeCoverage("no coverage here") != nil {
		t.Error("scrapeCoverage(noise) != nil")
	}
}
