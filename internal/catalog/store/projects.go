// Package store implements the catalog repositories. The legacy-backed stores
// recompute their base collection from the legacy source on every read and
// layer a process-lifetime overlay on top, so the legacy database is never
// written to.
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
	pstrings "sciport/pkg/platform/strings"
)

// Query template files for the projects domain.
const (
	projectsMainQuery  = "Проекты основной запрос.txt"
	projectsMRNTIQuery = "МРНТИ.txt"
	projectsTRLQuery   = "ТРЛ.txt"
)

// LegacyProjectStore serves projects from the legacy database with an
// in-memory mutation overlay.
type LegacyProjectStore struct {
	reader  *legacy.Reader
	overlay *overlay.Store[domain.Project]
}

func NewLegacyProjectStore(reader *legacy.Reader) *LegacyProjectStore {
	return &LegacyProjectStore{
		reader:  reader,
		overlay: overlay.NewStore[domain.Project](),
	}
}

// projectFromRow normalizes one raw legacy row. The id is the registration
// number when present, otherwise derived from (title, lead, region).
func projectFromRow(row legacy.Row) domain.Project {
	irn := row.String("ИРН", "number")
	title := row.String("Название проекта")
	lead := row.String("Заявитель")
	region := row.String("Регион заявителя")

	id := irn
	if id == "" {
		id = legacy.DeriveID(legacy.IDPrefixProject, title, lead, region)
	}

	return domain.Project{
		ID:     id,
		Title:  title,
		Lead:   lead,
		Region: region,
		Status: row.String("статус"),
		Budget: row.Number("Сумма финансирования (одобр)", "Сумма финансирования (запр)"),
		Tags:   pstrings.DedupeAndTrim([]string{row.String("Приоритет"), row.String("Тип финансирования")}),
	}
}

func projectMatches(p domain.Project, f domain.ProjectFilters) bool {
	if f.IRN != "" && !match.Same(p.ID, f.IRN) {
		return false
	}
	if f.Status != "" && !match.Same(p.Status, f.Status) {
		return false
	}
	if f.Region != "" && !match.Contains(p.Region, f.Region) {
		return false
	}
	if f.FinancingType != "" && !match.AnyContains(p.Tags, f.FinancingType) {
		return false
	}
	if f.Priority != "" && !match.AnyContains(p.Tags, f.Priority) {
		return false
	}
	if f.Applicant != "" && !match.Contains(p.Lead, f.Applicant) {
		return false
	}
	if f.Query != "" {
		return match.Contains(p.ID+" "+p.Title+" "+p.Lead, f.Query)
	}
	return true
}

func (s *LegacyProjectStore) listAll(ctx context.Context, f domain.ProjectFilters) ([]domain.Project, error) {
	rows, err := s.reader.Execute(ctx, legacy.DomainProjects, projectsMainQuery)
	if err != nil {
		return nil, err
	}

	base := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		base = append(base, projectFromRow(row))
	}

	merged := s.overlay.Merge(base)
	filtered := make([]domain.Project, 0, len(merged))
	for _, p := range merged {
		if projectMatches(p, f) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *LegacyProjectStore) List(ctx context.Context, f domain.ProjectFilters, page pagination.Params) (pagination.Result[domain.Project], error) {
	all, err := s.listAll(ctx, f)
	if err != nil {
		return pagination.Result[domain.Project]{}, err
	}
	return pagination.Paginate(all, page), nil
}

// collectLookupValues reads a single-column lookup file. Lookup facets are
// best-effort: any failure degrades to an empty list.
func (s *LegacyProjectStore) collectLookupValues(ctx context.Context, fileName string) []string {
	rows, err := s.reader.Execute(ctx, legacy.DomainProjects, fileName)
	if err != nil {
		return nil
	}
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.FirstString())
	}
	return values
}

func (s *LegacyProjectStore) GetFilters(ctx context.Context) (domain.ProjectFilterOptions, error) {
	projects, err := s.listAll(ctx, domain.ProjectFilters{})
	if err != nil {
		return domain.ProjectFilterOptions{}, err
	}

	return domain.ProjectFilterOptions{
		IRN:           facet.SortedUnique(collect(projects, func(p domain.Project) string { return p.ID })),
		Status:        facet.SortedUnique(collect(projects, func(p domain.Project) string { return p.Status })),
		Region:        facet.SortedUnique(collect(projects, func(p domain.Project) string { return p.Region })),
		FinancingType: facet.SortedUnique(collectTag(projects, 1)),
		Priority:      facet.SortedUnique(collectTag(projects, 0)),
		Applicant:     facet.SortedUnique(collect(projects, func(p domain.Project) string { return p.Lead })),
		MRNTI:         facet.SortedUnique(s.collectLookupValues(ctx, projectsMRNTIQuery)),
		TRL:           facet.SortedUnique(s.collectLookupValues(ctx, projectsTRLQuery)),
	}, nil
}

func (s *LegacyProjectStore) GetFilterMeta(ctx context.Context, f domain.ProjectFilters) (domain.ProjectFilterMeta, error) {
	projects, err := s.listAll(ctx, f)
	if err != nil {
		return domain.ProjectFilterMeta{}, err
	}

	return domain.ProjectFilterMeta{
		IRN:           facet.CountStrings(collect(projects, func(p domain.Project) string { return p.ID })),
		Status:        facet.CountStrings(collect(projects, func(p domain.Project) string { return p.Status })),
		Region:        facet.CountStrings(collect(projects, func(p domain.Project) string { return p.Region })),
		FinancingType: facet.CountStrings(collectTag(projects, 1)),
		Priority:      facet.CountStrings(collectTag(projects, 0)),
		Applicant:     facet.CountStrings(collect(projects, func(p domain.Project) string { return p.Lead })),
		MRNTI:         facet.CountStrings(s.collectLookupValues(ctx, projectsMRNTIQuery)),
		TRL:           facet.CountStrings(s.collectLookupValues(ctx, projectsTRLQuery)),
	}, nil
}

func (s *LegacyProjectStore) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	projects, err := s.listAll(ctx, domain.ProjectFilters{})
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.ID == id {
			return fillProjectDetails(p), nil
		}
	}
	return nil, nil
}

func (s *LegacyProjectStore) Create(ctx context.Context, input domain.Project) (domain.Project, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	s.overlay.Put(input)
	return input, nil
}

func (s *LegacyProjectStore) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
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

func (s *LegacyProjectStore) Delete(ctx context.Context, id string) (bool, error) {
	s.overlay.Delete(id)
	return true, nil
}

// fillProjectDetails materializes the detail-only fields so single-record
// responses always carry them, even when the list view omitted them.
func fillProjectDetails(p domain.Project) *domain.Project {
	if p.TeamIDs == nil {
		p.TeamIDs = []string{}
	}
	if p.PublicationsIDs == nil {
		p.PublicationsIDs = []string{}
	}
	if p.Files == nil {
		p.Files = []string{}
	}
	return &p
}

// collect projects a field out of every record.
func collect[T any](items []T, get func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, get(item))
	}
	return out
}

// collectTag pulls the tag at a fixed position from every project. Position 0
// is the priority area, position 1 the financing type.
func collectTag(projects []domain.Project, position int) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		if position < len(p.Tags) {
			out = append(out, p.Tags[position])
		}
	}
	return out
}
