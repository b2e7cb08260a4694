package cmd

import (
	"fmt"

	"hburn/internal/config"
	"hburn/internal/export"

	"github.com/spf13/cobra"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the reconciliation report to an .xlsx workbook",
	Long: "Writes three sheets: \"Project Summary\", \"User Detail\" and " +
		"\"Filtered Raw Data\", reflecting the current filter selection.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "hburn-report.xlsx", "Output workbook path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
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

	if err := export.WriteWorkbook(flagOutput, res); err != nil {
		return err
	}

	fmt.Printf("\n  Wrote %s (%d projects, %d entries)\n",
		flagOutput, len(res.Reports), len(res.Entries))
	return nil
}
