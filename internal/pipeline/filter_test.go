package pipeline

import (
	"testing"
	"time"

	"hburn/internal/model"
)

// entry builds a TimeEntry from an ISO date ("" = no date).
func entry(project, user string, hours float64, date string) model.TimeEntry {
	e := model.TimeEntry{Project: project, User: user, DurationHours: hours}
	if date != "" {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			panic(err)
		}
		e.StartDate = d
		e.PeriodKey = d.Format("2006-01")
	}
	return e
}

// sampleEntries is the data set from the reconciliation acceptance cases.
func sampleEntries() []model.TimeEntry {
	return []model.TimeEntry{
		entry("P1", "Alice", 5, "2024-01-10"),
		entry("P1", "Bob", 3, "2024-02-05"),
		entry("P2", "Alice", 2, "2024-01-15"),
	}
}

func TestFilter_AllDefaultsKeepEverything(t *testing.T) {
	entries := sampleEntries()
	got := Filter(entries, Selection(nil, nil, nil))
	if len(got) != len(entries) {
		t.Fatalf("Filter = %d entries, want %d", len(got), len(entries))
	}
}

func TestFilter_ByPeriod(t *testing.T) {
	got := Filter(sampleEntries(), Selection(nil, nil, []string{"2024-01"}))
	if len(got) != 2 {
		t.Fatalf("Filter = %d entries, want 2 (Bob's February entry excluded)", len(got))
	}
	for _, e := range got {
		if e.PeriodKey != "2024-01" {
			t.Errorf("entry %+v escaped the period filter", e)
		}
	}
}

func TestFilter_ByUser(t *testing.T) {
	got := Filter(sampleEntries(), Selection(nil, []string{"Alice"}, nil))
	if len(got) != 2 {
		t.Fatalf("Filter = %d entries, want 2", len(got))
	}
}

func TestFilter_ByProject(t *testing.T) {
	got := Filter(sampleEntries(), Selection([]string{"P2"}, nil, nil))
	if len(got) != 1 || got[0].Project != "P2" {
		t.Fatalf("Filter = %+v, want only P2", got)
	}
}

func TestFilter_CombinedDimensions(t *testing.T) {
	got := Filter(sampleEntries(), Selection([]string{"P1"}, []string{"Alice"}, []string{"2024-01"}))
	if len(got) != 1 {
		t.Fatalf("Filter = %d entries, want 1", len(got))
	}
	if got[0].User != "Alice" || got[0].Project != "P1" {
		t.Errorf("wrong entry survived: %+v", got[0])
	}
}

// Entries without a period always pass the period predicate. This is a
// policy choice: a record missing only its date must not vanish from
// period-filtered views.
func TestFilter_NoPeriodAlwaysMatchesPeriodFilter(t *testing.T) {
	entries := append(sampleEntries(), entry("P3", "Dana", 7, ""))

	got := Filter(entries, Selection(nil, nil, []string{"2024-01"}))

	found := false
	for _, e := range got {
		if e.Project == "P3" {
			found = true
		}
	}
	if !found {
		t.Error("entry without a period was dropped by the period filter")
	}
	if len(got) != 3 {
		t.Errorf("Filter = %d entries, want 3 (two Jan + one dateless)", len(got))
	}
}

// But the other dimensions still apply to dateless entries.
func TestFilter_NoPeriodStillFilteredByUser(t *testing.T) {
	entries := []model.TimeEntry{entry("P3", "Dana", 7, "")}
	got := Filter(entries, Selection(nil, []string{"Alice"}, []string{"2024-01"}))
	if len(got) != 0 {
		t.Errorf("dateless entry should still respect the user filter, got %+v", got)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	entries := []model.TimeEntry{
		entry("B", "x", 1, "2024-01-01"),
		entry("A", "x", 1, "2024-01-02"),
		entry("B", "x", 1, "2024-01-03"),
	}
	got := Filter(entries, Selection([]string{"A", "B"}, nil, nil))
	for i := range entries {
		if got[i].StartDate != entries[i].StartDate {
			t.Fatalf("order not preserved at %d", i)
		}
	}
}

func TestFilter_EmptyResultIsValid(t *testing.T) {
	got := Filter(sampleEntries(), Selection([]string{"nope"}, nil, nil))
	if len(got) != 0 {
		t.Fatalf("Filter = %d entries, want 0", len(got))
	}
}
