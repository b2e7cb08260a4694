// Package model defines domain types for hburn time entries and reports.
package model

import (
	"sort"
	"time"
)

// TimeEntry is one normalized logged work unit from a time-tracking export.
type TimeEntry struct {
	Project       string
	User          string
	DurationHours float64
	StartDate     time.Time // zero value when the source row had no parseable date
	PeriodKey     string    // "YYYY-MM", empty when StartDate is zero
	SourceFile    string
}

// HasPeriod reports whether the entry carries a calendar month bucket.
func (e TimeEntry) HasPeriod() bool {
	return e.PeriodKey != ""
}

// FilterSelection holds the user-chosen subsets for one recomputation pass.
// A nil set means "all known values" for that dimension.
type FilterSelection struct {
	Projects map[string]struct{}
	Users    map[string]struct{}
	Periods  map[string]struct{}
}

// DistinctProjects returns the unique project identifiers across entries,
// sorted ascending. This is the input contract of the budget resolver.
func DistinctProjects(entries []TimeEntry) []string {
	return distinctField(entries, func(e TimeEntry) string { return e.Project })
}

// DistinctUsers returns the unique user identifiers, sorted ascending.
func DistinctUsers(entries []TimeEntry) []string {
	return distinctField(entries, func(e TimeEntry) string { return e.User })
}

// DistinctPeriods returns the unique period keys, sorted ascending.
// Entries without a period contribute nothing.
func DistinctPeriods(entries []TimeEntry) []string {
	return distinctField(entries, func(e TimeEntry) string { return e.PeriodKey })
}

func distinctField(entries []TimeEntry, key func(TimeEntry) string) []string {
	seen := make(map[string]struct{})
	for _, e := range entries {
		k := key(e)
		if k == "" {
			continue
		}
		seen[k] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
