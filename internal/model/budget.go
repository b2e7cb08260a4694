package model

// BudgetOrigin records how a project's contracted hours were resolved.
type BudgetOrigin int

const (
	// OriginConfigured means the hours came from the per-project config map.
	OriginConfigured BudgetOrigin = iota
	// OriginFallback means no config entry matched and the fallback was used.
	OriginFallback
	// OriginEdited means the value was changed in-session by the user.
	OriginEdited
)

// String returns a short label for display in the budgets table.
func (o BudgetOrigin) String() string {
	switch o {
	case OriginConfigured:
		return "configured"
	case OriginFallback:
		return "fallback"
	case OriginEdited:
		return "edited"
	}
	return "unknown"
}

// ProjectBudget holds the contracted hours for one project. Rows are derived
// fresh from the current distinct project set on every resolution; they are
// never persisted independently of the config defaults.
type ProjectBudget struct {
	Project         string
	ContractedHours float64
	Origin          BudgetOrigin
}
