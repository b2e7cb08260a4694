// Package budget resolves contracted hours for the current project set.
package budget

import "hburn/internal/model"

// Resolve produces one budget row per distinct project, in the input order
// (callers pass the sorted distinct project set). Resolution is fixed:
// an explicit per-project entry in configured always wins over fallback.
// A misspelled project name simply gets the fallback, never an error.
//
// Resolve always starts fresh from configured defaults; in-session edits are
// reapplied separately via MergeEdits.
func Resolve(projects []string, configured map[string]float64, fallback float64) []model.ProjectBudget {
	budgets := make([]model.ProjectBudget, 0, len(projects))
	for _, p := range projects {
		b := model.ProjectBudget{Project: p}
		if hours, ok := configured[p]; ok {
			b.ContractedHours = hours
			b.Origin = model.OriginConfigured
		} else {
			b.ContractedHours = fallback
			b.Origin = model.OriginFallback
		}
		budgets = append(budgets, b)
	}
	return budgets
}

// MergeEdits carries in-session edits forward onto a fresh resolution:
// projects still present keep their edited hours, newly-seen projects keep
// their resolved defaults, and edits to projects no longer present are
// discarded. The input slice is not mutated.
func MergeEdits(resolved []model.ProjectBudget, edits map[string]float64) []model.ProjectBudget {
	if len(edits) == 0 {
		return resolved
	}
	merged := make([]model.ProjectBudget, len(resolved))
	copy(merged, resolved)
	for i := range merged {
		if hours, ok := edits[merged[i].Project]; ok && hours >= 0 && hours != merged[i].ContractedHours {
			merged[i].ContractedHours = hours
			merged[i].Origin = model.OriginEdited
		}
	}
	return merged
}
