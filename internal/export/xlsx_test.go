package export

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"hburn/internal/model"
	"hburn/internal/pipeline"

	"github.com/xuri/excelize/v2"
)

func sampleResult() pipeline.Result {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	entries := []model.TimeEntry{
		{Project: "P1", User: "Alice", DurationHours: 5, StartDate: jan10, PeriodKey: "2024-01"},
		{Project: "P1", User: "Bob", DurationHours: 3, StartDate: jan10.AddDate(0, 1, -5), PeriodKey: "2024-02"},
		{Project: "P2", User: "Alice", DurationHours: 2, StartDate: jan10.AddDate(0, 0, 5), PeriodKey: "2024-01"},
	}
	budgets := []model.ProjectBudget{
		{Project: "P1", ContractedHours: 10, Origin: model.OriginConfigured},
		{Project: "P2", ContractedHours: 1, Origin: model.OriginFallback},
	}
	return pipeline.Reconcile(entries, model.FilterSelection{}, budgets)
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := WriteWorkbook(path, sampleResult()); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	wantSheets := []string{SheetSummary, SheetDetail, SheetRaw}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, wantSheets) {
		t.Fatalf("sheets = %v, want %v", got, wantSheets)
	}

	rows, err := f.GetRows(SheetSummary)
	if err != nil {
		t.Fatalf("reading %s: %v", SheetSummary, err)
	}
	// Header, two project rows, one total row.
	if len(rows) != 4 {
		t.Fatalf("%s has %d rows, want 4", SheetSummary, len(rows))
	}
	if rows[1][0] != "P1" || rows[1][3] != "2" || rows[1][5] != "in budget" {
		t.Errorf("P1 row = %v", rows[1])
	}
	if rows[2][0] != "P2" || rows[2][3] != "-1" || rows[2][5] != "OVER BUDGET" {
		t.Errorf("P2 row = %v", rows[2])
	}
	if rows[3][0] != "Total" || rows[3][1] != "11" || rows[3][2] != "10" {
		t.Errorf("total row = %v", rows[3])
	}

	pivot, err := f.GetRows(SheetDetail)
	if err != nil {
		t.Fatalf("reading %s: %v", SheetDetail, err)
	}
	if !reflect.DeepEqual(pivot[0], []string{"User", "P1", "P2", "Total"}) {
		t.Errorf("pivot header = %v", pivot[0])
	}
	if pivot[1][0] != "Alice" || pivot[1][3] != "7" {
		t.Errorf("Alice pivot row = %v", pivot[1])
	}
	last := pivot[len(pivot)-1]
	if last[0] != "Total" || last[3] != "10" {
		t.Errorf("pivot total row = %v", last)
	}

	raw, err := f.GetRows(SheetRaw)
	if err != nil {
		t.Fatalf("reading %s: %v", SheetRaw, err)
	}
	if len(raw) != 4 {
		t.Fatalf("%s has %d rows, want header + 3 entries", SheetRaw, len(raw))
	}
	if raw[1][3] != "2024-01-10" || raw[1][4] != "2024-01" {
		t.Errorf("first raw row = %v", raw[1])
	}
}

// Zero-budget projects have an undefined percentage; the numeric column
// stays blank rather than holding a bogus number.
func TestWriteWorkbook_UndefinedPercentIsBlank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	entries := []model.TimeEntry{{Project: "Free", User: "Alice", DurationHours: 3}}
	budgets := []model.ProjectBudget{{Project: "Free", ContractedHours: 0, Origin: model.OriginConfigured}}
	res := pipeline.Reconcile(entries, model.FilterSelection{}, budgets)

	if err := WriteWorkbook(path, res); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	cell, err := f.GetCellValue(SheetSummary, "E2")
	if err != nil {
		t.Fatalf("reading percent cell: %v", err)
	}
	if cell != "" {
		t.Errorf("percent cell = %q, want empty", cell)
	}
}
