package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/codegrade/codegrade/internal/config"
)

// ErrInitCancelled is returned when the user aborts the wizard.
var ErrInitCancelled = errors.New("init cancelled")

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Interactively generate a codegrade.yaml",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runInitWizard(root)
	},
}

// runInitWizard asks for the essential settings and writes the config
// file. Each question runs as its own form, one screen at a time.
func runInitWizard(root string) error {
	cfg := config.Default()

	path := filepath.Join(root, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		confirm := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Overwrite?", config.ConfigFileName)).
				Value(&confirm),
		))
		if err := form.Run(); err != nil {
			return wizardErr(err)
		}
		if !confirm {
			return ErrInitCancelled
		}
	}

	analyzerOpts := make([]huh.Option[string], 0, len(config.DefaultAnalyzers))
	for _, name := range config.DefaultAnalyzers {
		analyzerOpts = append(analyzerOpts, huh.NewOption(name, name).Selected(true))
	}

	var selected []string
	mode := string(config.ModePlain)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Analyzers to enable").
				Options(analyzerOpts...).
				Value(&selected),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default report mode").
				Options(
					huh.NewOption("plain (fast, CI-friendly)", string(config.ModePlain)),
					huh.NewOption("exploratory (adds narrative summary)", string(config.ModeExploratory)),
				).
				Value(&mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Report output directory").
				Value(&cfg.Output),
		),
	)
	if err := form.Run(); err != nil {
		return wizardErr(err)
	}

	if len(selected) > 0 {
		cfg.Analyzers = selected
	}
	cfg.Mode = config.Mode(mode)

	// Keep only weights for enabled analyzers so the file stays tidy.
	weights := make(map[string]int, len(cfg.Analyzers))
	for _, name := range cfg.Analyzers {
		if w, ok := cfg.Weights[name]; ok {
			weights[name] = w
		}
	}
	cfg.Weights = weights

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

func wizardErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrInitCancelled
	}
	return fmt.Errorf("wizard error: %w", err)
}
