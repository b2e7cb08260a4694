// Package pipeline implements the budget reconciliation engine: raw export
// rows are normalized into time entries, filtered, aggregated per project,
// joined against resolved budgets, and shaped into report tables.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hburn/internal/model"
	"hburn/internal/source"
)

// Canonical export column names (Clockify detailed report layout).
const (
	ColProject   = "Project"
	ColUser      = "User"
	ColDuration  = "Duration (decimal)"
	ColStartDate = "Start Date"
)

// SchemaError reports required columns missing from an export's header row.
// It is the only hard failure in normalization; everything else coerces.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Path, strings.Join(e.Missing, ", "))
}

// NormalizeResult holds the normalized entries plus per-row recovery counts.
type NormalizeResult struct {
	Entries          []model.TimeEntry
	DroppedRows      int // rows with an empty/missing project
	CoercedDurations int // non-numeric or negative durations coerced to 0
	UnparsedDates    int // rows whose start date could not be parsed
}

// Normalize converts a raw export table into canonical time entries.
//
// Rows with an empty project are dropped. Durations coerce to 0 when not a
// non-negative number. Unparseable dates leave the entry without a period
// bucket rather than failing. Entry order is the insertion order of valid
// rows; duplicates are legitimate separate logs and are preserved.
func Normalize(table source.Table, dayFirst bool) (NormalizeResult, error) {
	idxProject := findColumn(table.Headers, ColProject)
	idxUser := findColumn(table.Headers, ColUser)
	idxDuration := findColumn(table.Headers, ColDuration)
	idxDate := findColumn(table.Headers, ColStartDate)

	var missing []string
	if idxProject < 0 {
		missing = append(missing, ColProject)
	}
	if idxDuration < 0 {
		missing = append(missing, ColDuration)
	}
	if len(missing) > 0 {
		return NormalizeResult{}, &SchemaError{Path: table.Path, Missing: missing}
	}

	var res NormalizeResult
	res.Entries = make([]model.TimeEntry, 0, len(table.Rows))

	for _, row := range table.Rows {
		project := strings.TrimSpace(cell(row, idxProject))
		if project == "" {
			res.DroppedRows++
			continue
		}

		entry := model.TimeEntry{
			Project:    project,
			User:       strings.TrimSpace(cell(row, idxUser)),
			SourceFile: table.Path,
		}

		dur, ok := coerceDuration(cell(row, idxDuration))
		if !ok {
			res.CoercedDurations++
		}
		entry.DurationHours = dur

		if raw := strings.TrimSpace(cell(row, idxDate)); raw != "" {
			if d, ok := parseDate(raw, dayFirst); ok {
				entry.StartDate = d
				entry.PeriodKey = d.Format("2006-01")
			} else {
				res.UnparsedDates++
			}
		}

		res.Entries = append(res.Entries, entry)
	}

	return res, nil
}

// findColumn locates a header by name, case-insensitively.
func findColumn(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// cell returns row[idx] or "" when the row is ragged or the column absent.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// coerceDuration parses a decimal-hours cell. Returns (0, false) when the
// value is not a non-negative number; bad cells coerce to zero rather than
// failing the file.
func coerceDuration(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil && strings.Contains(s, ",") {
		// Locale exports write decimals with a comma ("5,50")
		v, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	}
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// dateLayouts use unpadded day/month so both "5/2/2024" and "05/02/2024"
// parse. Order matters: ISO first since it is unambiguous.
var dayFirstLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2/1/2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2-1-2006",
	"2.1.2006",
}

var monthFirstLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1-2-2006",
}

func parseDate(raw string, dayFirst bool) (time.Time, bool) {
	layouts := monthFirstLayouts
	if dayFirst {
		layouts = dayFirstLayouts
	}
	for _, layout := range layouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
