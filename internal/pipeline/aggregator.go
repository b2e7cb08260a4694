package pipeline

import "hburn/internal/model"

// AggregateProjects groups filtered entries by project, sums their durations,
// and left-joins the result onto the resolved budget set.
//
// Every budgeted project appears in the output even with zero consumption.
// Projects present only in entries but absent from the budget set are
// excluded: the budget resolver is the sole authority on known projects,
// so such entries can only come from a stale resolution.
func AggregateProjects(entries []model.TimeEntry, budgets []model.ProjectBudget) []model.ProjectReport {
	consumed := make(map[string]float64, len(budgets))
	for _, e := range entries {
		consumed[e.Project] += e.DurationHours
	}

	reports := make([]model.ProjectReport, 0, len(budgets))
	for _, b := range budgets {
		reports = append(reports, model.ProjectReport{
			Project:         b.Project,
			ContractedHours: b.ContractedHours,
			ConsumedHours:   consumed[b.Project], // 0 when no entries matched
		})
	}
	return reports
}
