package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/codegrade/codegrade/internal/analyzer"
	"github.com/codegrade/codegrade/internal/config"
	"github.com/codegrade/codegrade/internal/report"
	"github.com/codegrade/codegrade/internal/score"
	"github.com/codegrade/codegrade/internal/ui"
	"github.com/codegrade/codegrade/pkg/models"
)

// ErrScoreBelowThreshold is returned when the overall score misses the
// --fail-under gate, so CI callers get a non-zero exit code.
var ErrScoreBelowThreshold = errors.New("overall score below threshold")

// ErrRulesInvalid blocks the run when rule validation fails.
var ErrRulesInvalid = errors.New("rule set validation failed")

var (
	auditMode      string
	auditReports   []string
	auditFailUnder int
	auditNoColor   bool
)

var auditCmd = &cobra.Command{
	Use:   "audit [path]",
	Short: "Run all configured analyzers and score the tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		result, err := executeAudit(cmd.Context(), root, auditOptions{
			mode:    auditMode,
			reports: auditReports,
			noColor: auditNoColor,
		})
		if err != nil {
			return err
		}

		if auditFailUnder > 0 && result.Score.Overall < auditFailUnder {
			return fmt.Errorf("%w: %d < %d", ErrScoreBelowThreshold, result.Score.Overall, auditFailUnder)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditMode, "mode", "", "report mode: plain or exploratory (overrides config)")
	auditCmd.Flags().StringSliceVar(&auditReports, "reports", nil, "explicit report types to render (overrides mode defaults)")
	auditCmd.Flags().IntVar(&auditFailUnder, "fail-under", 0, "exit non-zero when the overall score is below this value")
	auditCmd.Flags().BoolVar(&auditNoColor, "no-color", false, "disable color and interactive output")
}

// auditOptions carries command-line overrides into an audit run.
type auditOptions struct {
	mode    string
	reports []string
	noColor bool
	quiet   bool
}

// executeAudit is the full pipeline: load config, validate rules
// (blocking), run the orchestrator, score, select and render reports.
func executeAudit(ctx context.Context, root string, opts auditOptions) (*models.RunResult, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	mode := cfg.Mode
	if opts.mode != "" {
		mode = config.Mode(opts.mode)
		if !mode.IsValid() {
			return nil, fmt.Errorf("%w: --mode %q", config.ErrInvalidMode, opts.mode)
		}
	}
	explicit := cfg.Reports
	if len(opts.reports) > 0 {
		explicit = opts.reports
	}
	noColor := opts.noColor || cfg.System.NoColor

	ruleSet, err := cfg.Rules.Resolve(root)
	if err != nil {
		return nil, err
	}

	// Validation errors block the run entirely; nothing executes.
	vres := ruleSet.Validate()
	for _, w := range vres.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !vres.Valid {
		for _, e := range vres.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		return nil, fmt.Errorf("%w: %d error(s)", ErrRulesInvalid, len(vres.Errors))
	}

	env := &analyzer.Env{
		Root:        root,
		Timeout:     cfg.Tools.Timeout,
		Retries:     cfg.Tools.Retries,
		Workers:     cfg.Tools.Workers,
		RuleSet:     ruleSet,
		Ignore:      cfg.Ignore,
		MinSeverity: cfg.MinSeverity,
	}

	headless := opts.quiet || ui.IsHeadless(noColor)
	var spinner ui.Spinner
	if !opts.quiet {
		spinner = ui.NewSpinner(fmt.Sprintf("auditing %s (%d analyzers)", root, len(cfg.Analyzers)), headless)
	}

	started := time.Now()
	findings := analyzer.NewOrchestrator(nil, env).Run(ctx, cfg.Analyzers)
	if spinner != nil {
		spinner.Stop()
	}

	summary := score.Compute(findings, cfg.Weights)

	outputDir := cfg.Output
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(root, outputDir)
	}

	data := &report.Data{
		RunID:       uuid.NewString(),
		Root:        root,
		Findings:    findings,
		Score:       summary,
		Mode:        mode,
		OutputDir:   outputDir,
		GeneratedAt: time.Now(),
	}
	artifacts := report.NewRegistry().RenderAll(report.Select(mode, explicit), data)

	result := &models.RunResult{
		ID:        data.RunID,
		Root:      root,
		StartedAt: started,
		Duration:  time.Since(started),
		Findings:  make(map[string]any, len(findings)),
		Score:     summary,
		Reports:   artifacts,
	}
	for name, f := range findings {
		result.Findings[name] = f
	}

	if !opts.quiet {
		printRun(data, artifacts, headless, noColor)
	}
	return result, nil
}

// printRun writes the terminal score card, report paths, and (in
// exploratory mode on a TTY) the rendered narrative summary.
func printRun(data *report.Data, artifacts map[string]models.ReportArtifact, headless, noColor bool) {
	fmt.Println(report.Card(data, noColor))

	for _, a := range artifacts {
		fmt.Printf("report: %s (%d bytes)\n", a.Path, a.Size)
	}

	if data.Mode == config.ModeExploratory && !headless {
		if a, ok := artifacts[report.TypeSummary]; ok {
			if md, err := os.ReadFile(a.Path); err == nil {
				fmt.Println(report.RenderMarkdown(string(md)))
			}
		}
	}
}
