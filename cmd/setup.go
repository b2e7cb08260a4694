package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"hburn/internal/cli"
	"hburn/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	dataDir := cfg.General.DataDir
	budgetStr := strconv.FormatFloat(cfg.General.DefaultBudget, 'f', -1, 64)
	dayFirst := cfg.General.DayFirst

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Scanned for CSV/XLSX time-tracking exports").
				Value(&dataDir),
			huh.NewInput().
				Title("Default budget (hours)").
				Description("Fallback for projects without a [budgets] entry").
				Validate(validateHours).
				Value(&budgetStr),
			huh.NewConfirm().
				Title("Day-first dates?").
				Description("Parse 10/01/2024 as January 10th").
				Value(&dayFirst),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	fallback, _ := strconv.ParseFloat(strings.TrimSpace(budgetStr), 64)
	cfg.General.DataDir = strings.TrimSpace(dataDir)
	cfg.General.DefaultBudget = fallback
	cfg.General.DayFirst = dayFirst

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved %s\n", config.ConfigPath())

	// Quick sanity check so users see immediately whether data is found
	if paths, err := sourceScan(cfg.General.DataDir); err == nil {
		if len(paths) > 0 {
			fmt.Printf("  Found %d export file(s) in %s\n", len(paths), cfg.General.DataDir)
		} else {
			fmt.Println(cli.Muted("  No export files found yet; drop a Clockify CSV into " + cfg.General.DataDir))
		}
	}

	fmt.Println("\n  Add per-project hours under [budgets], e.g.:")
	fmt.Println("    [budgets]")
	fmt.Println("    \"Proyecto Web App\" = 1200")
	return nil
}

func validateHours(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number of hours")
	}
	if v < 0 {
		return fmt.Errorf("hours cannot be negative")
	}
	return nil
}
