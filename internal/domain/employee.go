package domain

// Employee is a researcher from the legacy staff tables. The legacy source has
// no stable personnel key, so ID is always content-derived from name and
// region. Metrics is a loose bag because the legacy schema mixes numeric and
// string measures (h-index, degree, external author ids, age).
type Employee struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Position        string         `json:"position"`
	Department      string         `json:"department"`
	Region          string         `json:"region"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	AvatarURL       string         `json:"avatarUrl"`
	ProjectsIDs     []string       `json:"projectsIds"`
	Metrics         map[string]any `json:"metrics"`
	Bio             string         `json:"bio,omitempty"`
	PublicationsIDs []string       `json:"publicationsIds,omitempty"`
}

// EntityID implements overlay.Entity.
func (e Employee) EntityID() string { return e.ID }

// MetricString reads a metrics entry as a trimmed string; missing → "".
func (e Employee) MetricString(key string) string {
	v, ok := e.Metrics[key]
	if !ok {
		return ""
	}
	return trimmedString(v)
}

// MetricNumber reads a metrics entry as a number; missing or non-numeric → 0.
func (e Employee) MetricNumber(key string) float64 {
	v, ok := e.Metrics[key]
	if !ok {
		return 0
	}
	return looseNumber(v)
}

// EmployeeFilters are the list/facet filters for employees.
type EmployeeFilters struct {
	Region    string
	Position  string
	Degree    string
	MinHIndex *float64
	MaxHIndex *float64
	Query     string
}

// EmployeePatch carries partial updates; nil fields are left untouched.
type EmployeePatch struct {
	Name            *string         `json:"name"`
	Position        *string         `json:"position"`
	Department      *string         `json:"department"`
	Region          *string         `json:"region"`
	Email           *string         `json:"email"`
	Phone           *string         `json:"phone"`
	AvatarURL       *string         `json:"avatarUrl"`
	ProjectsIDs     *[]string       `json:"projectsIds"`
	Metrics         *map[string]any `json:"metrics"`
	Bio             *string         `json:"bio"`
	PublicationsIDs *[]string       `json:"publicationsIds"`
}

// Apply merges the patch onto an existing employee, preserving its id.
func (p EmployeePatch) Apply(existing Employee) Employee {
	if p.Name != nil {
		existing.Name = *p.Name
	}
	if p.Position != nil {
		existing.Position = *p.Position
	}
	if p.Department != nil {
		existing.Department = *p.Department
	}
	if p.Region != nil {
		existing.Region = *p.Region
	}
	if p.Email != nil {
		existing.Email = *p.Email
	}
	if p.Phone != nil {
		existing.Phone = *p.Phone
	}
	if p.AvatarURL != nil {
		existing.AvatarURL = *p.AvatarURL
	}
	if p.ProjectsIDs != nil {
		existing.ProjectsIDs = *p.ProjectsIDs
	}
	if p.Metrics != nil {
		existing.Metrics = *p.Metrics
	}
	if p.Bio != nil {
		existing.Bio = *p.Bio
	}
	if p.PublicationsIDs != nil {
		existing.PublicationsIDs = *p.PublicationsIDs
	}
	return existing
}

// EmployeeFilterOptions enumerates distinct facet values.
type EmployeeFilterOptions struct {
	Region   []string `json:"region"`
	Position []string `json:"position"`
	Degree   []string `json:"degree"`
}

// EmployeeFilterMeta carries per-value result counts.
type EmployeeFilterMeta struct {
	Region   []StringCount `json:"region"`
	Position []StringCount `json:"position"`
	Degree   []StringCount `json:"degree"`
}
