package domain

// DashboardRegionSummary is the per-region slice of the portal dashboard.
type DashboardRegionSummary struct {
	Region       string  `json:"region"`
	Projects     int     `json:"projects"`
	Publications int     `json:"publications"`
	Employees    int     `json:"employees"`
	Budget       float64 `json:"budget"`
}

// DashboardSummary aggregates all four catalogs into the landing-page rollup.
type DashboardSummary struct {
	Projects struct {
		Total             int     `json:"total"`
		Grants            int     `json:"grants"`
		Programs          int     `json:"programs"`
		Contracts         int     `json:"contracts"`
		Commercialization int     `json:"commercialization"`
		AvgDuration       float64 `json:"avgDuration"`
	} `json:"projects"`
	Publications struct {
		Total       int `json:"total"`
		Journals    int `json:"journals"`
		Conferences int `json:"conferences"`
		Books       int `json:"books"`
		Other       int `json:"other"`
	} `json:"publications"`
	People struct {
		Total               int     `json:"total"`
		Docents             int     `json:"docents"`
		Professors          int     `json:"professors"`
		AssociateProfessors int     `json:"associateProfessors"`
		AvgAge              float64 `json:"avgAge"`
	} `json:"people"`
	Finances struct {
		Total            float64 `json:"total"`
		LastYear         float64 `json:"lastYear"`
		AvgExpense       float64 `json:"avgExpense"`
		BudgetUsage      float64 `json:"budgetUsage"`
		RegionalPrograms int     `json:"regionalPrograms"`
	} `json:"finances"`
	ByRegion []DashboardRegionSummary `json:"byRegion"`
}
