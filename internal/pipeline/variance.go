package pipeline

import "hburn/internal/model"

// Finalize fills the derived variance fields on each report row:
// remaining hours, percent consumed, and the budget status classification.
// Remaining hours may go negative; they are never clamped.
func Finalize(reports []model.ProjectReport) []model.ProjectReport {
	for i := range reports {
		r := &reports[i]
		r.RemainingHours = r.ContractedHours - r.ConsumedHours

		if r.ContractedHours > 0 {
			pct := r.ConsumedHours / r.ContractedHours * 100
			r.PercentConsumed = &pct
		} else {
			r.PercentConsumed = nil // undefined, not NaN
		}

		if r.RemainingHours < 0 {
			r.Status = model.StatusOverBudget
		} else {
			r.Status = model.StatusInBudget
		}
	}
	return reports
}

// Summarize computes selection-wide totals across the reported projects.
func Summarize(reports []model.ProjectReport, entryCount int) model.SummaryStats {
	var s model.SummaryStats
	s.Projects = len(reports)
	s.Entries = entryCount

	for _, r := range reports {
		s.TotalBudget += r.ContractedHours
		s.TotalConsumed += r.ConsumedHours
		if r.Status == model.StatusOverBudget {
			s.OverBudget++
		}
	}
	s.TotalRemaining = s.TotalBudget - s.TotalConsumed

	if s.TotalBudget > 0 {
		s.GlobalProgress = s.TotalConsumed / s.TotalBudget
		if s.GlobalProgress > 1 {
			s.GlobalProgress = 1
		}
	}

	return s
}

// Result is the output of one full reconciliation pass.
type Result struct {
	// Empty is true when the filter selection matched no entries. This is
	// an informational state, not an error; Reports and Summary are left
	// zero and no aggregation is attempted.
	Empty bool

	// NoData is true when there were no entries to filter at all, so an
	// empty result means "nothing loaded" rather than "nothing matched".
	NoData bool

	Entries []model.TimeEntry // filtered entries, original order
	Reports []model.ProjectReport
	Summary model.SummaryStats
	Pivot   model.Pivot
}

// Reconcile runs the full engine over normalized entries: filter, aggregate
// against the budget set, derive variance, and assemble the report surfaces.
// It is pure and idempotent; identical inputs yield identical results.
func Reconcile(entries []model.TimeEntry, sel model.FilterSelection, budgets []model.ProjectBudget) Result {
	if len(entries) == 0 {
		return Result{Empty: true, NoData: true}
	}

	filtered := Filter(entries, sel)
	if len(filtered) == 0 {
		return Result{Empty: true}
	}

	reports := Finalize(AggregateProjects(filtered, budgets))

	return Result{
		Entries: filtered,
		Reports: SortReports(reports),
		Summary: Summarize(reports, len(filtered)),
		Pivot:   BuildPivot(filtered),
	}
}
