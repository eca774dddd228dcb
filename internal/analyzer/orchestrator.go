package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codegrade/codegrade/internal/rules"
)

// Env carries the read-only inputs shared by all analyzers in a run.
// It is built once per invocation and never mutated afterwards, so it is
// safe to share across concurrent analyzer executions.
type Env struct {
	Root        string
	Timeout     time.Duration
	Retries     int
	Workers     int
	RuleSet     *rules.RuleSet
	Ignore      []string
	MinSeverity rules.Severity
}

// Func is an analyzer implementation. It returns the finding for a
// successful run or an error; the orchestrator converts errors into
// FailureFindings.
type Func func(ctx context.Context, env *Env) (Finding, error)

// Registry maps analyzer names to implementations.
type Registry struct {
	analyzers map[string]Func
}

// NewRegistry returns a registry with all built-in analyzers registered.
func NewRegistry() *Registry {
	r := &Registry{analyzers: make(map[string]Func)}
	r.Register("lint", runLint)
	r.Register("typecheck", runTypeCheck)
	r.Register("vulns", runVulns)
	r.Register("complexity", runComplexity)
	r.Register("bugs", runBugs)
	r.Register("coverage", runCoverage)
	r.Register("custom-rules", runCustomRules)
	return r
}

// Register adds or replaces an analyzer under name.
func (r *Registry) Register(name string, fn Func) {
	r.analyzers[name] = fn
}

// Lookup returns the analyzer registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.analyzers[name]
	return fn, ok
}

// Orchestrator runs a requested list of analyzers on a bounded worker
// pool with per-analyzer failure isolation.
type Orchestrator struct {
	registry *Registry
	env      *Env
}

// NewOrchestrator builds an Orchestrator over the given registry and
// run environment.
func NewOrchestrator(registry *Registry, env *Env) *Orchestrator {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Orchestrator{registry: registry, env: env}
}

// Run executes every requested analyzer and returns the findings map
// keyed by analyzer name. Unknown names are logged and skipped. An
// analyzer that returns an error or panics is recorded as a
// FailureFinding under its name; the remaining analyzers still run.
// Cancelling ctx discards analyzers that have not been queued yet.
func (o *Orchestrator) Run(ctx context.Context, names []string) map[string]Finding {
	findings := make(map[string]Finding, len(names))
	var mu sync.Mutex

	pool := newWorkerPool(o.env.Workers)

	for _, name := range names {
		fn, ok := o.registry.Lookup(name)
		if !ok {
			slog.Warn("unknown analyzer requested, skipping", "analyzer", name)
			continue
		}

		err := pool.submit(ctx, func() {
			finding := o.runOne(ctx, name, fn)
			mu.Lock()
			findings[name] = finding
			mu.Unlock()
		})
		if err != nil {
			slog.Warn("analyzer not started", "analyzer", name, "error", err)
		}
	}

	pool.close()
	return findings
}

// runOne executes a single analyzer, converting errors and panics into
// FailureFindings.
func (o *Orchestrator) runOne(ctx context.Context, name string, fn Func) (finding Finding) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("analyzer panicked", "analyzer", name, "panic", r)
			finding = NewFailure(fmt.Errorf("panic: %v", r))
		}
	}()

	start := time.Now()
	f, err := fn(ctx, o.env)
	slog.Debug("analyzer finished",
		"analyzer", name,
		"duration", time.Since(start),
		"ok", err == nil)

	if err != nil {
		slog.Warn("analyzer failed", "analyzer", name, "error", err)
		return NewFailure(err)
	}
	return f
}
