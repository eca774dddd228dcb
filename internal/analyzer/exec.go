package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// Sentinel errors for external tool execution.
var (
	errToolNotFound = errors.New("analyzer: tool not found")
	errToolTimeout  = errors.New("analyzer: tool timed out")
)

// runTool invokes one external command under the project root with a
// bounded timeout and returns its combined output. Non-zero exit codes
// are tolerated: analysis tools conventionally exit non-zero when they
// find issues, so the output is parsed regardless. Start failures are
// retried per the policy; timeouts and cancellations are not.
func runTool(ctx context.Context, env *Env, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("%w: %q", errToolNotFound, name)
	}

	policy := retryPolicy{
		maxRetries: env.Retries,
		baseDelay:  200 * time.Millisecond,
		maxDelay:   2 * time.Second,
		useJitter:  true,
	}

	var output []byte
	err := retry(ctx, policy, func() error {
		tctx := ctx
		if env.Timeout > 0 {
			var cancel context.CancelFunc
			tctx, cancel = context.WithTimeout(ctx, env.Timeout)
			defer cancel()
		}

		start := time.Now()
		cmd := exec.CommandContext(tctx, name, args...)
		cmd.Dir = env.Root
		out, runErr := cmd.CombinedOutput()
		output = out

		slog.Debug("tool finished",
			"tool", name,
			"duration", time.Since(start),
			"output_bytes", len(out))

		if tctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: %q after %s", errToolTimeout, name, env.Timeout)
		}

		// Distinguish "could not run" from "ran and found issues".
		var exitErr *exec.ExitError
		if runErr != nil && !errors.As(runErr, &exitErr) {
			return fmt.Errorf("run %q: %w", name, runErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
