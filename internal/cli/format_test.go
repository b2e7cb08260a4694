package cli

import (
	"testing"

	"hburn/internal/model"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5.5, "5.50"},
		{999.999, "1,000.00"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-42.25, "-42.25"},
		{-1234.5, "-1,234.50"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.in); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBudgetHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100 h"},
		{1200, "1,200 h"},
		{80.5, "80 h"},
	}
	for _, tt := range tests {
		if got := FormatBudgetHours(tt.in); got != tt.want {
			t.Errorf("FormatBudgetHours(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(nil); got != "—" {
		t.Errorf("FormatPercent(nil) = %q, want em dash", got)
	}
	pct := 66.666
	if got := FormatPercent(&pct); got != "66.7%" {
		t.Errorf("FormatPercent(66.666) = %q, want %q", got, "66.7%")
	}
	over := 200.0
	if got := FormatPercent(&over); got != "200.0%" {
		t.Errorf("FormatPercent(200) = %q", got)
	}
}

func TestFormatProgress(t *testing.T) {
	if got := FormatProgress(0.755); got != "75.5%" {
		t.Errorf("FormatProgress(0.755) = %q", got)
	}
}

func TestFormatStatus(t *testing.T) {
	if got := FormatStatus(model.StatusOverBudget); got != "OVER BUDGET" {
		t.Errorf("over budget label = %q", got)
	}
	if got := FormatStatus(model.StatusInBudget); got != "in budget" {
		t.Errorf("in budget label = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"a longer project name", 10, "a longer …"},
		{"héllo wörld", 6, "héllo…"},
		{"x", 1, "x"},
		{"xy", 1, "…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
