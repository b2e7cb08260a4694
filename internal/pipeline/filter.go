package pipeline

import "hburn/internal/model"

// Selection builds a FilterSelection from flag-style string slices.
// An empty slice means "all known values" for that dimension.
func Selection(projects, users, periods []string) model.FilterSelection {
	return model.FilterSelection{
		Projects: toSet(projects),
		Users:    toSet(users),
		Periods:  toSet(periods),
	}
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Filter narrows entries by the selection's three membership predicates,
// preserving original order. Matching is exact set membership on known
// values, applied independently per dimension.
//
// Entries without a period always pass the period predicate: a record that
// merely lacks a date is never silently dropped from period-filtered views.
func Filter(entries []model.TimeEntry, sel model.FilterSelection) []model.TimeEntry {
	if sel.Projects == nil && sel.Users == nil && sel.Periods == nil {
		return entries
	}

	filtered := make([]model.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if !inSet(sel.Projects, e.Project) {
			continue
		}
		if !inSet(sel.Users, e.User) {
			continue
		}
		if e.HasPeriod() && !inSet(sel.Periods, e.PeriodKey) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// inSet treats a nil set as "all values match".
func inSet(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}
