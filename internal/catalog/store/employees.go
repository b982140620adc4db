package store

import (
	"context"

	"github.com/google/uuid"

	"sciport/internal/catalog/facet"
	"sciport/internal/catalog/legacy"
	"sciport/internal/catalog/match"
	"sciport/internal/catalog/overlay"
	"sciport/internal/domain"
	"sciport/pkg/pagination"
)

const employeesMainQuery = "общий.txt"

// Metrics keys used by the employee normalizer and filters.
const (
	MetricHIndex         = "hIndex"
	MetricAcademicDegree = "academicDegree"
	MetricAge            = "age"
)

// LegacyEmployeeStore serves employees from the legacy staff tables with an
// in-memory mutation overlay.
type LegacyEmployeeStore struct {
	reader  *legacy.Reader
	overlay *overlay.Store[domain.Employee]
}

func NewLegacyEmployeeStore(reader *legacy.Reader) *LegacyEmployeeStore {
	return &LegacyEmployeeStore{
		reader:  reader,
		overlay: overlay.NewStore[domain.Employee](),
	}
}

// employeeFromRow normalizes one raw staff row. The staff tables carry no
// personnel key at all, so the id is always derived from (name, region).
func employeeFromRow(row legacy.Row) domain.Employee {
	name := row.String("ФИО")
	region := row.String("Регион")

	return domain.Employee{
		ID:          legacy.DeriveID(legacy.IDPrefixEmployee, name, region),
		Name:        name,
		Position:    row.String("Ученое звание"),
		Region:      region,
		ProjectsIDs: []string{},
		Metrics: map[string]any{
			MetricHIndex:         row.Number("H-index"),
			MetricAcademicDegree: row.String("Ученая степень"),
			"scopusAuthorId":     row.String("Author ID SCOPUS"),
			"researcherIdWos":    row.String("Researcher ID web of science"),
			"orcid":              row.String("ORCID ID"),
			MetricAge:            row.Number("old"),
		},
		PublicationsIDs: []string{},
	}
}

func employeeMatches(e domain.Employee, f domain.EmployeeFilters) bool {
	if f.Region != "" && !match.Contains(e.Region, f.Region) {
		return false
	}
	if f.Position != "" && !match.Same(e.Position, f.Position) {
		return false
	}
	if f.Degree != "" && !match.DegreeAliases.Match(e.MetricString(MetricAcademicDegree), f.Degree) {
		return false
	}
	if !match.InRange(e.MetricNumber(MetricHIndex), f.MinHIndex, f.MaxHIndex) {
		return false
	}
	if f.Query != "" {
		return match.Contains(e.Name+" "+e.Position, f.Query)
	}
	return true
}

func (s *LegacyEmployeeStore) listAll(ctx context.Context, f domain.EmployeeFilters) ([]domain.Employee, error) {
	rows, err := s.reader.Execute(ctx, legacy.DomainEmployees, employeesMainQuery)
	if err != nil {
		return nil, err
	}

	base := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		base = append(base, employeeFromRow(row))
	}

	merged := s.overlay.Merge(base)
	filtered := make([]domain.Employee, 0, len(merged))
	for _, e := range merged {
		if employeeMatches(e, f) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *LegacyEmployeeStore) List(ctx context.Context, f domain.EmployeeFilters, page pagination.Params) (pagination.Result[domain.Employee], error) {
	all, err := s.listAll(ctx, f)
	if err != nil {
		return pagination.Result[domain.Employee]{}, err
	}
	return pagination.Paginate(all, page), nil
}

func (s *LegacyEmployeeStore) GetFilters(ctx context.Context) (domain.EmployeeFilterOptions, error) {
	employees, err := s.listAll(ctx, domain.EmployeeFilters{})
	if err != nil {
		return domain.EmployeeFilterOptions{}, err
	}

	return domain.EmployeeFilterOptions{
		Region:   facet.SortedUnique(collect(employees, func(e domain.Employee) string { return e.Region })),
		Position: facet.SortedUnique(collect(employees, func(e domain.Employee) string { return e.Position })),
		Degree:   facet.SortedUnique(collect(employees, func(e domain.Employee) string { return e.MetricString(MetricAcademicDegree) })),
	}, nil
}

func (s *LegacyEmployeeStore) GetFilterMeta(ctx context.Context, f domain.EmployeeFilters) (domain.EmployeeFilterMeta, error) {
	employees, err := s.listAll(ctx, f)
	if err != nil {
		return domain.EmployeeFilterMeta{}, err
	}

	return domain.EmployeeFilterMeta{
		Region:   facet.CountStrings(collect(employees, func(e domain.Employee) string { return e.Region })),
		Position: facet.CountStrings(collect(employees, func(e domain.Employee) string { return e.Position })),
		Degree:   facet.CountStrings(collect(employees, func(e domain.Employee) string { return e.MetricString(MetricAcademicDegree) })),
	}, nil
}

func (s *LegacyEmployeeStore) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	employees, err := s.listAll(ctx, domain.EmployeeFilters{})
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (s *LegacyEmployeeStore) Create(ctx context.Context, input domain.Employee) (domain.Employee, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	if input.Metrics == nil {
		input.Metrics = map[string]any{}
	}
	s.overlay.Put(input)
	return input, nil
}

func (s *LegacyEmployeeStore) Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	updated := patch.Apply(*existing)
	updated.ID = id
	s.overlay.Put(updated)
	return &updated, nil
}

func (s *LegacyEmployeeStore) Delete(ctx context.Context, id string) (bool, error) {
	s.overlay.Delete(id)
	return true, nil
}
