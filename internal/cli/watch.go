package cli

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce batches bursts of filesystem events into one re-audit.
const watchDebounce = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-run the audit whenever the tree changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, root)
	},
}

// runWatch audits once, then re-audits on debounced change events until
// the context is cancelled. Audit failures are logged, not fatal: the
// watcher outlives a temporarily broken tree.
func runWatch(ctx context.Context, root string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addWatchRecursive(watcher, root); err != nil {
		return err
	}

	audit := func() {
		if _, err := executeAudit(ctx, root, auditOptions{noColor: true}); err != nil {
			slog.Error("audit failed", "error", err)
		}
	}
	audit()

	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignoreWatchEvent(ev.Name) {
				continue
			}
			// New directories must be watched as they appear.
			if ev.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					_ = addWatchRecursive(watcher, ev.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, audit)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", werr)
		}
	}
}

// addWatchRecursive registers root and every non-ignored subdirectory.
func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if ignoreWatchEvent(path) && path != root {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// ignoreWatchEvent filters paths whose changes must not trigger a
// re-audit, including our own report output.
func ignoreWatchEvent(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, segment := range []string{".git", "node_modules", "vendor", ".codegrade", "coverage", "dist", "build"} {
		if strings.HasSuffix(slashed, "/"+segment) || strings.Contains(slashed, "/"+segment+"/") {
			return true
		}
	}
	return false
}
