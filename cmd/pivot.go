package cmd

import (
	"fmt"

	"hburn/internal/cli"
	"hburn/internal/config"

	"github.com/spf13/cobra"
)

var pivotCmd = &cobra.Command{
	Use:   "pivot",
	Short: "User × project hours cross-tabulation",
	RunE:  runPivot,
}

func init() {
	rootCmd.AddCommand(pivotCmd)
}

func runPivot(_ *cobra.Command, _ []string) error {
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

	p := res.Pivot

	fmt.Println()
	fmt.Println(cli.RenderTitle("HOURS BY USER AND PROJECT"))
	fmt.Println()

	headers := make([]string, 0, len(p.Projects)+2)
	headers = append(headers, "User")
	for _, proj := range p.Projects {
		headers = append(headers, cli.Truncate(proj, 14))
	}
	headers = append(headers, "Total")

	rows := make([][]string, 0, len(p.Users)+2)
	for i, user := range p.Users {
		row := make([]string, 0, len(p.Projects)+2)
		row = append(row, cli.Truncate(user, 20))
		for j := range p.Projects {
			row = append(row, cli.FormatHours(p.Cells[i][j]))
		}
		row = append(row, cli.FormatHours(p.RowTotals[i]))
		rows = append(rows, row)
	}

	rows = append(rows, []string{"---"})
	totals := make([]string, 0, len(p.Projects)+2)
	totals = append(totals, "Total")
	for _, ct := range p.ColTotals {
		totals = append(totals, cli.FormatHours(ct))
	}
	totals = append(totals, cli.FormatHours(p.GrandTotal))
	rows = append(rows, totals)

	fmt.Print(cli.RenderTable(cli.Table{Headers: headers, Rows: rows}))
	return nil
}
