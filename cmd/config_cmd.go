package cmd

import (
	"fmt"
	"sort"

	"hburn/internal/cli"
	"hburn/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.General.DataDir)
	fmt.Printf("    Default budget: %s\n", cli.FormatBudgetHours(cfg.General.DefaultBudget))
	fmt.Printf("    Day-first dates: %v\n", cfg.General.DayFirst)
	fmt.Println()

	fmt.Println("  [Budgets]")
	if len(cfg.Budgets) == 0 {
		fmt.Println("    (none configured; all projects use the default)")
	} else {
		projects := make([]string, 0, len(cfg.Budgets))
		for p := range cfg.Budgets {
			projects = append(projects, p)
		}
		sort.Strings(projects)
		for _, p := range projects {
			fmt.Printf("    %-28s %s\n", p, cli.FormatBudgetHours(cfg.Budgets[p]))
		}
	}
	fmt.Println()

	fmt.Println("  Run `hburn setup` to reconfigure.")
	return nil
}
