package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/codegrade/codegrade/pkg/models"
)

// jsonRenderer writes the machine-readable artifact CI gates consume.
type jsonRenderer struct{}

// jsonReport is the on-disk shape of the JSON report.
type jsonReport struct {
	RunID       string              `json:"run_id"`
	Root        string              `json:"root"`
	GeneratedAt time.Time           `json:"generated_at"`
	Score       models.ScoreSummary `json:"score"`
	Findings    map[string]any      `json:"findings"`
	Passed      map[string]bool     `json:"passed"`
}

func (j *jsonRenderer) Render(data *Data) (*models.ReportArtifact, error) {
	if err := os.MkdirAll(data.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	out := jsonReport{
		RunID:       data.RunID,
		Root:        data.Root,
		GeneratedAt: data.GeneratedAt,
		Score:       data.Score,
		Findings:    make(map[string]any, len(data.Findings)),
		Passed:      make(map[string]bool, len(data.Findings)),
	}
	for name, f := range data.Findings {
		out.Findings[name] = f
		out.Passed[name] = f.Succeeded()
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(data.OutputDir, "report.json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	return &models.ReportArtifact{Type: TypeJSON, Path: path, Size: int64(len(payload))}, nil
}
