// Package report decides which report renderers run for a given mode
// and invokes them. Renderers are external collaborators behind a small
// interface; the core only selects which one to call and with what data.
package report

import (
	"log/slog"
	"time"

	"github.com/codegrade/codegrade/internal/analyzer"
	"github.com/codegrade/codegrade/internal/config"
	"github.com/codegrade/codegrade/pkg/models"
)

// Report type names.
const (
	TypeHTML    = "html"
	TypeSummary = "summary"
	TypeJSON    = "json"
)

// Data is the input every renderer consumes.
type Data struct {
	RunID       string
	Root        string
	Findings    map[string]analyzer.Finding
	Score       models.ScoreSummary
	Mode        config.Mode
	OutputDir   string
	GeneratedAt time.Time
}

// Renderer produces one report artifact from run data.
type Renderer interface {
	Render(data *Data) (*models.ReportArtifact, error)
}

// Registry holds the available renderers by report type.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry returns a registry with the built-in renderers.
func NewRegistry() *Registry {
	return &Registry{renderers: map[string]Renderer{
		TypeHTML:    &htmlRenderer{},
		TypeSummary: &summaryRenderer{},
		TypeJSON:    &jsonRenderer{},
	}}
}

// Register adds or replaces a renderer.
func (r *Registry) Register(name string, renderer Renderer) {
	r.renderers[name] = renderer
}

// Select returns the report types to render. An explicit list is
// authoritative and overrides the mode defaults item-by-item; whether
// each listed type is renderable is decided at render time. Without an
// explicit list, plain mode gets only the primary visual report and
// exploratory mode additionally gets the narrative summary.
func Select(mode config.Mode, explicit []string) []string {
	if len(explicit) > 0 {
		return append([]string(nil), explicit...)
	}
	if mode == config.ModeExploratory {
		return []string{TypeHTML, TypeSummary}
	}
	return []string{TypeHTML}
}

// RenderAll invokes the renderer for each requested type and returns
// the artifacts that rendered successfully. Unknown types are logged and
// skipped; a failing renderer never prevents the others from running.
func (r *Registry) RenderAll(types []string, data *Data) map[string]models.ReportArtifact {
	artifacts := make(map[string]models.ReportArtifact, len(types))

	for _, name := range types {
		renderer, ok := r.renderers[name]
		if !ok {
			slog.Warn("unknown report type requested, skipping", "type", name)
			continue
		}

		artifact, err := renderer.Render(data)
		if err != nil {
			slog.Error("report renderer failed", "type", name, "error", err)
			continue
		}
		artifacts[name] = *artifact
	}

	return artifacts
}
