package main

import (
	"fmt"
	"slices"

	ecssystem "github.com/milk9111/cutscene/ecs/system"
	"github.com/milk9111/cutscene/levels"
	"github.com/spf13/cobra"
)

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a sequence spec",
		Long: `Load the sequence spec, apply defaults and report problems.
Errors exit with status 1; warnings are printed but do not fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.v.GetString("config")
			name := path
			if name == "" {
				name = "embedded boss_defeat.yaml"
			}

			seq, err := loadSequenceSpec(path)
			if err != nil {
				fmt.Fprintln(app.Err, failStyle.Render("✗ "+err.Error()))
				return NewExitError(1)
			}
			cfg, err := seq.Config()
			if err != nil {
				fmt.Fprintln(app.Err, failStyle.Render(fmt.Sprintf("✗ %s: %v", name, err)))
				return NewExitError(1)
			}
			if seq.TriggerScript != "" {
				if _, err := ecssystem.LoadTriggerRule(seq.TriggerScript); err != nil {
					fmt.Fprintln(app.Err, failStyle.Render(fmt.Sprintf("✗ %s: %v", name, err)))
					return NewExitError(1)
				}
			}

			warnings := cfg.Warnings()
			if cfg.NextScene != "" && !slices.Contains(levels.Names(), cfg.NextScene) {
				warnings = append(warnings, fmt.Sprintf("next scene %q is not a known level", cfg.NextScene))
			}
			for _, w := range warnings {
				fmt.Fprintln(app.Out, warnStyle.Render("! "+w))
			}
			fmt.Fprintln(app.Out, okStyle.Render(fmt.Sprintf("✓ %s: walk speed %.2f, next scene %q", name, cfg.WalkSpeed, cfg.NextScene)))
			return nil
		},
	}
}
