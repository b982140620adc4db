package domain

// FinanceHistoryItem is one recorded expense against a project. History is
// append-only; items are never edited in place.
type FinanceHistoryItem struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
}

// FinanceProject is the finance view of a single project: its approved budget
// plus the locally recorded spending history.
type FinanceProject struct {
	ProjectID string               `json:"projectId"`
	Budget    float64              `json:"budget"`
	Spent     float64              `json:"spent"`
	History   []FinanceHistoryItem `json:"history"`
}

// CategoryAmount is a per-category budget slice.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// RegionAmount is a per-region budget slice.
type RegionAmount struct {
	Region string  `json:"region"`
	Amount float64 `json:"amount"`
}

// FinanceSummary is the catalog-wide finance rollup.
type FinanceSummary struct {
	TotalBudget float64          `json:"totalBudget"`
	TotalSpent  float64          `json:"totalSpent"`
	ByCategory  []CategoryAmount `json:"byCategory"`
	ByRegion    []RegionAmount   `json:"byRegion"`
}
