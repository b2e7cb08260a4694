package model

// ReportStatus classifies a project row by its remaining-hours sign.
// Presentation layers map this to color; the core never styles anything.
type ReportStatus int

const (
	// StatusInBudget means remaining hours are zero or positive.
	StatusInBudget ReportStatus = iota
	// StatusOverBudget means consumed hours exceed contracted hours.
	StatusOverBudget
)

func (s ReportStatus) String() string {
	if s == StatusOverBudget {
		return "OVER"
	}
	return "OK"
}

// ProjectReport is one row of the final reconciliation output.
type ProjectReport struct {
	Project         string
	ContractedHours float64
	ConsumedHours   float64
	RemainingHours  float64
	// PercentConsumed is nil when ContractedHours is zero (undefined,
	// never NaN).
	PercentConsumed *float64
	Status          ReportStatus
}

// SummaryStats holds selection-wide totals across the reported projects.
type SummaryStats struct {
	Projects       int
	OverBudget     int
	Entries        int
	TotalBudget    float64
	TotalConsumed  float64
	TotalRemaining float64
	// GlobalProgress is TotalConsumed/TotalBudget clamped to [0,1];
	// zero when there is no budget at all.
	GlobalProgress float64
}

// Pivot is a user×project cross-tabulation of summed hours with grand totals.
type Pivot struct {
	Users    []string // row labels, sorted ascending
	Projects []string // column labels, sorted ascending
	// Cells[i][j] is the summed hours of Users[i] on Projects[j].
	Cells      [][]float64
	RowTotals  []float64 // per user
	ColTotals  []float64 // per project
	GrandTotal float64
}
