package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codegrade/codegrade/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate the custom rule set",
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate the configured rule set without running analyzers",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}
		ruleSet, err := cfg.Rules.Resolve(root)
		if err != nil {
			return err
		}

		res := ruleSet.Validate()
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}

		fmt.Printf("%d rules, %d categories\n", res.Stats.RuleCount, res.Stats.CategoryCount)
		for sev, n := range res.Stats.BySeverity {
			fmt.Printf("  %s: %d\n", sev, n)
		}

		if !res.Valid {
			return fmt.Errorf("%w: %d error(s)", ErrRulesInvalid, len(res.Errors))
		}
		fmt.Println("rule set is valid")
		return nil
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List the configured rules",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}
		ruleSet, err := cfg.Rules.Resolve(root)
		if err != nil {
			return err
		}

		for _, r := range ruleSet.Rules() {
			scope := "all files"
			if len(r.Files) > 0 {
				scope = fmt.Sprintf("%v", r.Files)
			}
			fmt.Printf("%-24s %-8s %-12s %s\n", r.ID, r.Severity, scope, r.Description)
		}
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesValidateCmd)
	rulesCmd.AddCommand(rulesListCmd)
}
