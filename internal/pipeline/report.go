package pipeline

import (
	"sort"

	"hburn/internal/model"
)

// SortReports orders report rows by project identifier ascending. The
// aggregator already emits budget order, which is sorted; this keeps the
// guarantee even if callers assemble rows themselves.
func SortReports(reports []model.ProjectReport) []model.ProjectReport {
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Project < reports[j].Project
	})
	return reports
}

// BuildPivot cross-tabulates summed hours by user and project, with row,
// column, and grand totals. Entries with an empty user are grouped under a
// single unattributed row label.
func BuildPivot(entries []model.TimeEntry) model.Pivot {
	const unattributed = "(no user)"

	type key struct{ user, project string }
	sums := make(map[key]float64)
	userSet := make(map[string]struct{})
	projSet := make(map[string]struct{})

	for _, e := range entries {
		user := e.User
		if user == "" {
			user = unattributed
		}
		sums[key{user, e.Project}] += e.DurationHours
		userSet[user] = struct{}{}
		projSet[e.Project] = struct{}{}
	}

	users := make([]string, 0, len(userSet))
	for u := range userSet {
		users = append(users, u)
	}
	sort.Strings(users)

	projects := make([]string, 0, len(projSet))
	for p := range projSet {
		projects = append(projects, p)
	}
	sort.Strings(projects)

	p := model.Pivot{
		Users:     users,
		Projects:  projects,
		Cells:     make([][]float64, len(users)),
		RowTotals: make([]float64, len(users)),
		ColTotals: make([]float64, len(projects)),
	}

	for i, u := range users {
		p.Cells[i] = make([]float64, len(projects))
		for j, proj := range projects {
			v := sums[key{u, proj}]
			p.Cells[i][j] = v
			p.RowTotals[i] += v
			p.ColTotals[j] += v
			p.GrandTotal += v
		}
	}

	return p
}
