package cmd

import (
	"fmt"

	"hburn/internal/cli"
	"hburn/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-project budget reconciliation table",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	res, err := reconcile(cfg)
	if err != nil {
		return err
	}
	if res.Empty {
		printEmpty(res)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("HOURS vs BUDGET"))
	fmt.Println()
	fmt.Println("  " + cli.Muted(filterCaption()))
	fmt.Println()

	rows := make([][]string, 0, len(res.Reports)+2)
	styles := make([]*lipgloss.Style, 0, len(res.Reports)+2)
	for _, r := range res.Reports {
		rows = append(rows, []string{
			cli.Truncate(r.Project, 24),
			cli.FormatBudgetHours(r.ContractedHours),
			cli.FormatHours(r.ConsumedHours),
			cli.FormatHours(r.RemainingHours),
			cli.FormatPercent(r.PercentConsumed),
			cli.FormatStatus(r.Status),
		})
		style := cli.StatusStyle(r.Status)
		styles = append(styles, &style)
	}

	rows = append(rows, []string{"---"})
	styles = append(styles, nil)
	s := res.Summary
	rows = append(rows, []string{
		"Total",
		cli.FormatBudgetHours(s.TotalBudget),
		cli.FormatHours(s.TotalConsumed),
		cli.FormatHours(s.TotalRemaining),
		"",
		"",
	})
	styles = append(styles, nil)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"Project", "Contracted", "Consumed", "Remaining", "% Used", "Status"},
		Rows:      rows,
		RowStyles: styles,
	}))

	fmt.Println()
	over := ""
	if s.OverBudget > 0 {
		over = "  " + cli.Bad(fmt.Sprintf("%d project(s) over budget", s.OverBudget))
	}
	fmt.Printf("  %s%s\n", cli.RenderProgressBar(s.GlobalProgress, 30), over)
	fmt.Printf("  %s entries across %s projects\n",
		cli.FormatNumber(int64(s.Entries)), cli.FormatNumber(int64(s.Projects)))

	return nil
}
