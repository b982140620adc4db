package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"sciport/internal/catalog/facet"
	"sciport/internal/catalog/overlay"
	"sciport/internal/domain"
	"sciport/pkg/pagination"
	"sciport/pkg/platform/sentinel"
	pstrings "sciport/pkg/platform/strings"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// QualifyTable validates a possibly schema-qualified table name and returns it
// with every part quoted. The name comes from configuration, so it is checked
// against a strict identifier pattern instead of being interpolated as-is.
func QualifyTable(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("projects table name is empty: %w", sentinel.ErrInvalidPath)
	}

	parts := strings.Split(trimmed, ".")
	quoted := make([]string, 0, len(parts))
	for _, part := range parts {
		if !identifierPattern.MatchString(part) {
			return "", fmt.Errorf("projects table name %q contains unsupported characters: %w", name, sentinel.ErrInvalidPath)
		}
		quoted = append(quoted, `"`+part+`"`)
	}
	return strings.Join(quoted, "."), nil
}

// PostgresProjectStore serves projects from a curated Postgres table with the
// same in-memory overlay semantics as the legacy stores. The table itself is
// treated as read-only.
type PostgresProjectStore struct {
	db      *sql.DB
	query   string
	overlay *overlay.Store[domain.Project]
}

func NewPostgresProjectStore(db *sql.DB, tableName string) (*PostgresProjectStore, error) {
	table, err := QualifyTable(tableName)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, title, lead, region, status, budget, spent,
		       start_date, end_date, priority, financing_type, tags
		FROM %s
		ORDER BY id`, table)

	return &PostgresProjectStore{
		db:      db,
		query:   query,
		overlay: overlay.NewStore[domain.Project](),
	}, nil
}

func (s *PostgresProjectStore) listAll(ctx context.Context, f domain.ProjectFilters) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("projects query: %w: %w", sentinel.ErrQueryFailed, err)
	}
	defer rows.Close()

	base := make([]domain.Project, 0, 64)
	for rows.Next() {
		var (
			p                       domain.Project
			budget, spent           sql.NullFloat64
			startDate, endDate      sql.NullString
			priority, finType, tags sql.NullString
		)
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Lead, &p.Region, &p.Status,
			&budget, &spent, &startDate, &endDate,
			&priority, &finType, &tags,
		); err != nil {
			return nil, fmt.Errorf("projects scan: %w: %w", sentinel.ErrQueryFailed, err)
		}

		p.Budget = budget.Float64
		p.Spent = spent.Float64
		if startDate.Valid {
			v := strings.TrimSpace(startDate.String)
			p.StartDate = &v
		}
		if endDate.Valid {
			v := strings.TrimSpace(endDate.String)
			p.EndDate = &v
		}
		p.Tags = projectRowTags(priority.String, finType.String, tags.String)
		base = append(base, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("projects rows: %w: %w", sentinel.ErrQueryFailed, err)
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

// projectRowTags keeps the priority area and financing type in front of any
// comma-separated extra tags, deduplicated.
func projectRowTags(priority, financingType, extra string) []string {
	tags := []string{priority, financingType}
	for _, tag := range strings.Split(extra, ",") {
		tags = append(tags, tag)
	}
	return pstrings.DedupeAndTrim(tags)
}

func (s *PostgresProjectStore) List(ctx context.Context, f domain.ProjectFilters, page pagination.Params) (pagination.Result[domain.Project], error) {
	all, err := s.listAll(ctx, f)
	if err != nil {
		return pagination.Result[domain.Project]{}, err
	}
	return pagination.Paginate(all, page), nil
}

func (s *PostgresProjectStore) GetFilters(ctx context.Context) (domain.ProjectFilterOptions, error) {
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
		MRNTI:         []string{},
		TRL:           []string{},
	}, nil
}

func (s *PostgresProjectStore) GetFilterMeta(ctx context.Context, f domain.ProjectFilters) (domain.ProjectFilterMeta, error) {
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
		MRNTI:         []domain.StringCount{},
		TRL:           []domain.StringCount{},
	}, nil
}

func (s *PostgresProjectStore) GetByID(ctx context.Context, id string) (*domain.Project, error) {
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

func (s *PostgresProjectStore) Create(ctx context.Context, input domain.Project) (domain.Project, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	s.overlay.Put(input)
	return input, nil
}

func (s *PostgresProjectStore) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
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

func (s *PostgresProjectStore) Delete(ctx context.Context, id string) (bool, error) {
	s.overlay.Delete(id)
	return true, nil
}
