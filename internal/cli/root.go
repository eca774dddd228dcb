// Package cli provides the Cobra command tree for the codegrade binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codegrade/codegrade/pkg/version"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "codegrade",
	Short: "codegrade: source-tree quality auditor",
	Long: `codegrade runs a configurable set of analyzers over a source tree,
reduces their findings to a single weighted quality score and letter
grade, and renders reports for humans, CI gates, and assisted review
workflows.`,
	Version: version.GetVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(logLevel)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("codegrade %s\n", version.GetFullVersion()))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(watchCmd)
}

// configureLogging installs the default slog handler writing to stderr.
func configureLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
