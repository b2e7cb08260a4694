// Package export serializes reconciliation results into an XLSX workbook.
package export

import (
	"fmt"

	"hburn/internal/cli"
	"hburn/internal/model"
	"hburn/internal/pipeline"

	"github.com/xuri/excelize/v2"
)

// Sheet names are part of the export contract.
const (
	SheetSummary = "Project Summary"
	SheetDetail  = "User Detail"
	SheetRaw     = "Filtered Raw Data"
)

// WriteWorkbook writes the three report surfaces to an .xlsx file:
// the per-project reconciliation table, the user×project pivot, and the
// filtered raw entries. Pure serialization; all numbers arrive computed.
func WriteWorkbook(path string, res pipeline.Result) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// excelize creates a default "Sheet1"; rename it into the first sheet.
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("creating %s: %w", SheetSummary, err)
	}
	if err := writeSummary(f, res.Reports, res.Summary); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetDetail); err != nil {
		return fmt.Errorf("creating %s: %w", SheetDetail, err)
	}
	if err := writePivot(f, res.Pivot); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetRaw); err != nil {
		return fmt.Errorf("creating %s: %w", SheetRaw, err)
	}
	if err := writeRaw(f, res.Entries); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, reports []model.ProjectReport, sum model.SummaryStats) error {
	headers := []any{"Project", "Contracted Hours", "Consumed Hours", "Remaining Hours", "% Consumed", "Status"}
	if err := writeRow(f, SheetSummary, 1, headers); err != nil {
		return err
	}

	row := 2
	for _, r := range reports {
		cells := []any{
			r.Project,
			r.ContractedHours,
			r.ConsumedHours,
			r.RemainingHours,
			percentCell(r.PercentConsumed),
			cli.FormatStatus(r.Status),
		}
		if err := writeRow(f, SheetSummary, row, cells); err != nil {
			return err
		}
		row++
	}

	totals := []any{"Total", sum.TotalBudget, sum.TotalConsumed, sum.TotalRemaining, "", ""}
	return writeRow(f, SheetSummary, row, totals)
}

// percentCell keeps the undefined case out of the numeric column.
func percentCell(pct *float64) any {
	if pct == nil {
		return ""
	}
	return *pct
}

func writePivot(f *excelize.File, p model.Pivot) error {
	headers := make([]any, 0, len(p.Projects)+2)
	headers = append(headers, "User")
	for _, proj := range p.Projects {
		headers = append(headers, proj)
	}
	headers = append(headers, "Total")
	if err := writeRow(f, SheetDetail, 1, headers); err != nil {
		return err
	}

	row := 2
	for i, user := range p.Users {
		cells := make([]any, 0, len(p.Projects)+2)
		cells = append(cells, user)
		for j := range p.Projects {
			cells = append(cells, p.Cells[i][j])
		}
		cells = append(cells, p.RowTotals[i])
		if err := writeRow(f, SheetDetail, row, cells); err != nil {
			return err
		}
		row++
	}

	totals := make([]any, 0, len(p.Projects)+2)
	totals = append(totals, "Total")
	for _, ct := range p.ColTotals {
		totals = append(totals, ct)
	}
	totals = append(totals, p.GrandTotal)
	return writeRow(f, SheetDetail, row, totals)
}

func writeRaw(f *excelize.File, entries []model.TimeEntry) error {
	headers := []any{"Project", "User", "Duration (decimal)", "Start Date", "Period"}
	if err := writeRow(f, SheetRaw, 1, headers); err != nil {
		return err
	}

	for i, e := range entries {
		startDate := ""
		if !e.StartDate.IsZero() {
			startDate = e.StartDate.Format("2006-01-02")
		}
		cells := []any{e.Project, e.User, e.DurationHours, startDate, e.PeriodKey}
		if err := writeRow(f, SheetRaw, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	cellRef, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cellRef, &cells); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}
