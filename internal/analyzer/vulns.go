package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
)

// VulnFinding is the result of the dependency vulnerability analyzer.
type VulnFinding struct {
	Success    bool           `json:"success"`
	Count      int            `json:"count"`
	BySeverity map[string]int `json:"by_severity,omitempty"`
}

// Score deducts 20 per vulnerability from 100, clamped at 0.
func (f *VulnFinding) Score() int {
	return clampScore(100 - f.Count*20)
}

func (f *VulnFinding) Summary() string {
	if f.Count == 0 {
		return "no known vulnerabilities"
	}
	return fmt.Sprintf("%d known vulnerabilities", f.Count)
}

func (f *VulnFinding) Succeeded() bool { return f.Success }

// auditOutput is the metadata block of `npm audit --json`.
type auditOutput struct {
	Metadata struct {
		Vulnerabilities map[string]int `json:"vulnerabilities"`
	} `json:"metadata"`
}

// runVulns invokes the dependency auditor and totals the reported
// vulnerabilities. Malformed output degrades to a zero finding.
func runVulns(ctx context.Context, env *Env) (Finding, error) {
	output, err := runTool(ctx, env, "npm", "audit", "--json")
	if err != nil {
		return nil, err
	}

	finding := &VulnFinding{Success: true}

	var audit auditOutput
	if jsonErr := json.Unmarshal(trimToJSON(output), &audit); jsonErr != nil {
		return finding, nil
	}

	for sev, n := range audit.Metadata.Vulnerabilities {
		if sev == "total" || n <= 0 {
			continue
		}
		if finding.BySeverity == nil {
			finding.BySeverity = make(map[string]int)
		}
		finding.BySeverity[sev] = n
		finding.Count += n
	}

	return finding, nil
}
