// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"hburn/internal/model"
)

// FormatHours formats decimal hours with two decimals and a thousands
// separator, e.g. 1234.5 -> "1,234.50".
func FormatHours(h float64) string {
	s := fmt.Sprintf("%.2f", h)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	out := groupThousands(parts[0]) + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

// FormatBudgetHours formats contracted hours without decimals, e.g. "1,200 h".
func FormatBudgetHours(h float64) string {
	return groupThousands(fmt.Sprintf("%.0f", h)) + " h"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage value, e.g. 66.666 -> "66.7%".
// A nil value (undefined percent, zero contracted hours) renders as "—".
func FormatPercent(pct *float64) string {
	if pct == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", *pct)
}

// FormatProgress formats a 0-1 progress ratio as a percentage string.
func FormatProgress(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatStatus returns the plain status label for a report row.
func FormatStatus(s model.ReportStatus) string {
	if s == model.StatusOverBudget {
		return "OVER BUDGET"
	}
	return "in budget"
}

// Truncate shortens a string to max runes, appending "…" when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
