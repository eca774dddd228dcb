package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codegrade/codegrade/pkg/models"
)

// Card formats the score summary as a boxed terminal card. With noColor
// set, all styling collapses to plain text.
func Card(data *Data, noColor bool) string {
	title := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle()
	grade := lipgloss.NewStyle().Bold(true)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	if !noColor {
		muted = muted.Foreground(lipgloss.Color("#6B7280"))
		grade = grade.Foreground(lipgloss.Color(gradeColor(data.Score.Grade)))
	} else {
		box = lipgloss.NewStyle()
	}

	var b strings.Builder
	b.WriteString(title.Render(fmt.Sprintf("Quality score %d/100", data.Score.Overall)))
	b.WriteString("  ")
	b.WriteString(grade.Render(string(data.Score.Grade)))
	b.WriteString("\n")

	names := make([]string, 0, len(data.Findings))
	for name := range data.Findings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		finding := data.Findings[name]
		mark := "✓"
		if !finding.Succeeded() {
			mark = "✗"
		}
		line := fmt.Sprintf("%s %-13s %3d  %s", mark, name, finding.Score(), finding.Summary())
		if finding.Succeeded() {
			b.WriteString(muted.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return box.Render(strings.TrimRight(b.String(), "\n"))
}

// gradeColor maps a grade to its display color.
func gradeColor(g models.Grade) string {
	switch g {
	case models.GradeA, models.GradeB:
		return "#059669"
	case models.GradeC:
		return "#D97706"
	default:
		return "#DC2626"
	}
}
