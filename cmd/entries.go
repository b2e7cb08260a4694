package cmd

import (
	"fmt"

	"hburn/internal/cli"
	"hburn/internal/config"

	"github.com/spf13/cobra"
)

var flagLimit int

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List the filtered raw time entries",
	RunE:  runEntries,
}

func init() {
	entriesCmd.Flags().IntVarP(&flagLimit, "limit", "l", 50, "Maximum rows to print (0 = all)")
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(_ *cobra.Command, _ []string) error {
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
	fmt.Println(cli.RenderTitle("FILTERED ENTRIES"))
	fmt.Println()
	fmt.Println("  " + cli.Muted(filterCaption()))
	fmt.Println()

	limit := flagLimit
	if limit <= 0 || limit > len(res.Entries) {
		limit = len(res.Entries)
	}

	rows := make([][]string, 0, limit)
	for _, e := range res.Entries[:limit] {
		date := "—"
		if !e.StartDate.IsZero() {
			date = e.StartDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			cli.Truncate(e.Project, 24),
			cli.Truncate(e.User, 20),
			cli.FormatHours(e.DurationHours),
			date,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Project", "User", "Hours", "Date"},
		Rows:    rows,
	}))

	if limit < len(res.Entries) {
		fmt.Printf("\n  … %s more (use --limit 0 for all)\n",
			cli.FormatNumber(int64(len(res.Entries)-limit)))
	}
	return nil
}
