package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"github.com/codegrade/codegrade/internal/analyzer"
	"github.com/codegrade/codegrade/pkg/models"
)

// htmlRenderer writes the primary visual report.
type htmlRenderer struct{}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>codegrade report</title>
<style>
body { font-family: -apple-system, sans-serif; margin: 2rem auto; max-width: 60rem; color: #1f2937; }
h1 span.grade { padding: 0.1em 0.45em; border-radius: 0.3em; color: #fff; }
.grade-A, .grade-B { background: #059669; }
.grade-C { background: #d97706; }
.grade-D, .grade-F { background: #dc2626; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #e5e7eb; }
td.fail { color: #dc2626; }
</style>
</head>
<body>
<h1>Quality score: {{.Score.Overall}}/100 <span class="grade grade-{{.Score.Grade}}">{{.Score.Grade}}</span></h1>
<p>Project: <code>{{.Root}}</code> · run {{.RunID}} · {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
<table>
<tr><th>Analyzer</th><th>Sub-score</th><th>Weight</th><th>Summary</th></tr>
{{range .Rows}}<tr>
<td>{{.Name}}</td><td>{{.Score}}</td><td>{{.Weight}}</td>
<td{{if not .Succeeded}} class="fail"{{end}}>{{.Summary}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

// htmlRow is one analyzer line in the report table.
type htmlRow struct {
	Name      string
	Score     int
	Weight    int
	Summary   string
	Succeeded bool
}

func (h *htmlRenderer) Render(data *Data) (*models.ReportArtifact, error) {
	rows := buildRows(data)

	if err := os.MkdirAll(data.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(data.OutputDir, "report.html")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	err = htmlTemplate.Execute(f, struct {
		*Data
		Rows []htmlRow
	}{data, rows})
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &models.ReportArtifact{Type: TypeHTML, Path: path, Size: info.Size()}, nil
}

// buildRows flattens findings and breakdown into sorted table rows.
func buildRows(data *Data) []htmlRow {
	rows := make([]htmlRow, 0, len(data.Findings))
	for name, finding := range data.Findings {
		row := htmlRow{
			Name:      name,
			Score:     finding.Score(),
			Summary:   finding.Summary(),
			Succeeded: finding.Succeeded(),
		}
		if entry, ok := data.Score.Breakdown[name]; ok {
			row.Score = entry.Score
			row.Weight = entry.Weight
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// failedAnalyzers lists the names of analyzers that did not complete.
func failedAnalyzers(findings map[string]analyzer.Finding) []string {
	var failed []string
	for name, f := range findings {
		if !f.Succeeded() {
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	return failed
}
