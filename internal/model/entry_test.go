package model

import (
	"reflect"
	"testing"
)

func TestDistinctFields(t *testing.T) {
	entries := []TimeEntry{
		{Project: "Zeta", User: "Bob", PeriodKey: "2024-02"},
		{Project: "Alpha", User: "Alice", PeriodKey: "2024-01"},
		{Project: "Zeta", User: "Alice", PeriodKey: "2024-01"},
		{Project: "Alpha", User: "", PeriodKey: ""},
	}

	if got := DistinctProjects(entries); !reflect.DeepEqual(got, []string{"Alpha", "Zeta"}) {
		t.Errorf("DistinctProjects = %v", got)
	}
	// Empty values never appear in the distinct sets.
	if got := DistinctUsers(entries); !reflect.DeepEqual(got, []string{"Alice", "Bob"}) {
		t.Errorf("DistinctUsers = %v", got)
	}
	if got := DistinctPeriods(entries); !reflect.DeepEqual(got, []string{"2024-01", "2024-02"}) {
		t.Errorf("DistinctPeriods = %v", got)
	}
}

func TestHasPeriod(t *testing.T) {
	if (TimeEntry{PeriodKey: ""}).HasPeriod() {
		t.Error("entry without period key reports a period")
	}
	if !(TimeEntry{PeriodKey: "2024-01"}).HasPeriod() {
		t.Error("entry with period key reports none")
	}
}

func TestBudgetOriginString(t *testing.T) {
	tests := []struct {
		origin BudgetOrigin
		want   string
	}{
		{OriginConfigured, "configured"},
		{OriginFallback, "fallback"},
		{OriginEdited, "edited"},
	}
	for _, tt := range tests {
		if got := tt.origin.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.origin, got, tt.want)
		}
	}
}
