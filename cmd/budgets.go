package cmd

import (
	"fmt"

	"hburn/internal/cli"
	"hburn/internal/config"

	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Show resolved contracted hours per project",
	RunE:  runBudgets,
}

func init() {
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	result, err := loadData(cfg)
	if err != nil {
		return err
	}
	if len(result.Entries) == 0 {
		fmt.Println("\n  No time entries loaded; nothing to resolve budgets for.")
		return nil
	}

	// Budgets resolve against every loaded project, same as the reports.
	budgets := resolveBudgets(cfg, result.Entries)

	fmt.Println()
	fmt.Println(cli.RenderTitle("RESOLVED BUDGETS"))
	fmt.Println()

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, []string{
			cli.Truncate(b.Project, 28),
			cli.FormatBudgetHours(b.ContractedHours),
			b.Origin.String(),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Project", "Contracted", "Origin"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Edit [budgets] in %s to set per-project hours.\n", config.ConfigPath())
	return nil
}
