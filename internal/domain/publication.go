package domain

// Publication is a research output linked to a project by registration number.
type Publication struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Year      int      `json:"year"`
	Type      string   `json:"type"`
	DOI       string   `json:"doi"`
	ProjectID string   `json:"projectId"`
	Link      string   `json:"link"`
	Abstract  string   `json:"abstract,omitempty"`
	PDFURL    string   `json:"pdfUrl,omitempty"`
}

// EntityID implements overlay.Entity.
func (p Publication) EntityID() string { return p.ID }

// PublicationFilters are the list/facet filters for publications. Year 0 means
// "not filtered".
type PublicationFilters struct {
	Year  int
	Type  string
	Query string
}

// PublicationPatch carries partial updates; nil fields are left untouched.
type PublicationPatch struct {
	Title     *string   `json:"title"`
	Authors   *[]string `json:"authors"`
	Year      *int      `json:"year"`
	Type      *string   `json:"type"`
	DOI       *string   `json:"doi"`
	ProjectID *string   `json:"projectId"`
	Link      *string   `json:"link"`
	Abstract  *string   `json:"abstract"`
	PDFURL    *string   `json:"pdfUrl"`
}

// Apply merges the patch onto an existing publication, preserving its id.
func (p PublicationPatch) Apply(existing Publication) Publication {
	if p.Title != nil {
		existing.Title = *p.Title
	}
	if p.Authors != nil {
		existing.Authors = *p.Authors
	}
	if p.Year != nil {
		existing.Year = *p.Year
	}
	if p.Type != nil {
		existing.Type = *p.Type
	}
	if p.DOI != nil {
		existing.DOI = *p.DOI
	}
	if p.ProjectID != nil {
		existing.ProjectID = *p.ProjectID
	}
	if p.Link != nil {
		existing.Link = *p.Link
	}
	if p.Abstract != nil {
		existing.Abstract = *p.Abstract
	}
	if p.PDFURL != nil {
		existing.PDFURL = *p.PDFURL
	}
	return existing
}

// PublicationFilterOptions enumerates distinct facet values.
type PublicationFilterOptions struct {
	Type      []string `json:"type"`
	Year      []int    `json:"year"`
	Applicant []string `json:"applicant"`
}

// PublicationFilterMeta carries per-value result counts.
type PublicationFilterMeta struct {
	Type      []StringCount `json:"type"`
	Year      []NumberCount `json:"year"`
	Applicant []StringCount `json:"applicant"`
}
