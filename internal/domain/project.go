package domain

// Project is a funded research project from the national catalog.
//
// ID is either the registration number (ИРН) carried by the legacy row or a
// content-derived identifier (see catalog/legacy identity) when the row has
// none. Tags always start with the priority area followed by the financing
// type, so positional facet extraction stays stable.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Lead            string   `json:"lead"`
	Region          string   `json:"region"`
	Status          string   `json:"status"`
	Budget          float64  `json:"budget"`
	Spent           float64  `json:"spent"`
	StartDate       *string  `json:"startDate"`
	EndDate         *string  `json:"endDate"`
	Tags            []string `json:"tags"`
	Description     string   `json:"description,omitempty"`
	TeamIDs         []string `json:"teamIds,omitempty"`
	PublicationsIDs []string `json:"publicationsIds,omitempty"`
	Files           []string `json:"files,omitempty"`
}

// EntityID implements overlay.Entity.
func (p Project) EntityID() string { return p.ID }

// ProjectFilters are the list/facet filters for projects. Zero values mean
// "not filtered".
type ProjectFilters struct {
	IRN           string
	Status        string
	Region        string
	FinancingType string
	Priority      string
	Applicant     string
	Query         string
}

// ProjectPatch carries partial updates; nil fields are left untouched.
type ProjectPatch struct {
	Title           *string   `json:"title"`
	Lead            *string   `json:"lead"`
	Region          *string   `json:"region"`
	Status          *string   `json:"status"`
	Budget          *float64  `json:"budget"`
	Spent           *float64  `json:"spent"`
	StartDate       *string   `json:"startDate"`
	EndDate         *string   `json:"endDate"`
	Tags            *[]string `json:"tags"`
	Description     *string   `json:"description"`
	TeamIDs         *[]string `json:"teamIds"`
	PublicationsIDs *[]string `json:"publicationsIds"`
	Files           *[]string `json:"files"`
}

// Apply merges the patch onto an existing project, preserving its id.
func (p ProjectPatch) Apply(existing Project) Project {
	if p.Title != nil {
		existing.Title = *p.Title
	}
	if p.Lead != nil {
		existing.Lead = *p.Lead
	}
	if p.Region != nil {
		existing.Region = *p.Region
	}
	if p.Status != nil {
		existing.Status = *p.Status
	}
	if p.Budget != nil {
		existing.Budget = *p.Budget
	}
	if p.Spent != nil {
		existing.Spent = *p.Spent
	}
	if p.StartDate != nil {
		existing.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		existing.EndDate = p.EndDate
	}
	if p.Tags != nil {
		existing.Tags = *p.Tags
	}
	if p.Description != nil {
		existing.Description = *p.Description
	}
	if p.TeamIDs != nil {
		existing.TeamIDs = *p.TeamIDs
	}
	if p.PublicationsIDs != nil {
		existing.PublicationsIDs = *p.PublicationsIDs
	}
	if p.Files != nil {
		existing.Files = *p.Files
	}
	return existing
}

// ProjectFilterOptions enumerates distinct facet values for filter UIs.
type ProjectFilterOptions struct {
	IRN           []string `json:"irn"`
	Status        []string `json:"status"`
	Region        []string `json:"region"`
	FinancingType []string `json:"financingType"`
	Priority      []string `json:"priority"`
	Applicant     []string `json:"applicant"`
	MRNTI         []string `json:"mrnti"`
	TRL           []string `json:"trl"`
}

// ProjectFilterMeta carries per-value result counts for the same facets.
type ProjectFilterMeta struct {
	IRN           []StringCount `json:"irn"`
	Status        []StringCount `json:"status"`
	Region        []StringCount `json:"region"`
	FinancingType []StringCount `json:"financingType"`
	Priority      []StringCount `json:"priority"`
	Applicant     []StringCount `json:"applicant"`
	MRNTI         []StringCount `json:"mrnti"`
	TRL           []StringCount `json:"trl"`
}
