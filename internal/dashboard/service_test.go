package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"sciport/internal/domain"
	"sciport/pkg/pagination"
)

type fakeCatalog struct {
	projects     []domain.Project
	employees    []domain.Employee
	publications []domain.Publication
	finance      domain.FinanceSummary
}

func (f *fakeCatalog) List(_ context.Context, _ domain.ProjectFilters, page pagination.Params) (pagination.Result[domain.Project], error) {
	return pagination.Paginate(f.projects, page), nil
}

type fakeEmployees struct{ items []domain.Employee }

func (f *fakeEmployees) List(_ context.Context, _ domain.EmployeeFilters, page pagination.Params) (pagination.Result[domain.Employee], error) {
	return pagination.Paginate(f.items, page), nil
}

type fakePublications struct{ items []domain.Publication }

func (f *fakePublications) List(_ context.Context, _ domain.PublicationFilters, page pagination.Params) (pagination.Result[domain.Publication], error) {
	return pagination.Paginate(f.items, page), nil
}

type fakeFinances struct{ summary domain.FinanceSummary }

func (f *fakeFinances) GetSummary(_ context.Context, _ int) (domain.FinanceSummary, error) {
	return f.summary, nil
}

func newTestService() *Service {
	projects := &fakeCatalog{projects: []domain.Project{
		{ID: "AP-1", Region: "Алматы", Budget: 3_000_000_000, Tags: []string{"Энергетика", "грант"}},
		{ID: "AP-2", Region: "Алматы", Budget: 1_000_000_000, Tags: []string{"Агро", "программа"}},
		{ID: "AP-3", Region: "Астана", Budget: 0, Tags: []string{"ИТ", "контракт"}},
		{ID: "AP-4", Region: "Астана", Budget: 0, Tags: []string{"ИТ", "коммерциализация"}},
	}}
	employees := &fakeEmployees{items: []domain.Employee{
		{Name: "A", Region: "Алматы", Position: "профессор", Metrics: map[string]any{"age": 60.0}},
		{Name: "B", Region: "Алматы", Position: "доцент", Metrics: map[string]any{"age": 40.0}},
		{Name: "C", Region: "Астана", Position: "доцент, профессор", Metrics: map[string]any{"age": 0.0}},
	}}
	publications := &fakePublications{items: []domain.Publication{
		{ID: "pub-1", Type: "journal article", ProjectID: "AP-1"},
		{ID: "pub-2", Type: "conference paper", ProjectID: "ap-1 "},
		{ID: "pub-3", Type: "book chapter", ProjectID: "unknown"},
		{ID: "pub-4", Type: "preprint", ProjectID: ""},
	}}
	finances := &fakeFinances{summary: domain.FinanceSummary{
		TotalBudget: 8_000_000_000,
		TotalSpent:  2_000_000_000,
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(projects, employees, publications, finances, logger)
}

func TestGetSummary(t *testing.T) {
	svc := newTestService()
	summary, err := svc.GetSummary(context.Background(), "")
	require.NoError(t, err)

	t.Run("project tag buckets", func(t *testing.T) {
		require.Equal(t, 4, summary.Projects.Total)
		require.Equal(t, 1, summary.Projects.Grants)
		require.Equal(t, 1, summary.Projects.Programs)
		require.Equal(t, 1, summary.Projects.Contracts)
		require.Equal(t, 1, summary.Projects.Commercialization)
	})

	t.Run("publication type buckets", func(t *testing.T) {
		require.Equal(t, 4, summary.Publications.Total)
		require.Equal(t, 1, summary.Publications.Journals)
		require.Equal(t, 1, summary.Publications.Conferences)
		require.Equal(t, 1, summary.Publications.Books)
		require.Equal(t, 1, summary.Publications.Other)
	})

	t.Run("people counts and average age skip zero ages", func(t *testing.T) {
		require.Equal(t, 3, summary.People.Total)
		require.Equal(t, 2, summary.People.Docents)
		require.Equal(t, 2, summary.People.Professors)
		require.Equal(t, 0, summary.People.AssociateProfessors)
		require.InDelta(t, 50.0, summary.People.AvgAge, 0.001)
	})

	t.Run("finance totals scale to billions", func(t *testing.T) {
		require.InDelta(t, 8.0, summary.Finances.Total, 0.001)
		require.InDelta(t, 2.0, summary.Finances.LastYear, 0.001)
		require.InDelta(t, 0.5, summary.Finances.AvgExpense, 0.001)
		require.InDelta(t, 25.0, summary.Finances.BudgetUsage, 0.001)
		require.Equal(t, 2, summary.Finances.RegionalPrograms)
	})

	t.Run("region rollup redistributes the finance total", func(t *testing.T) {
		require.Len(t, summary.ByRegion, 2)

		first := summary.ByRegion[0]
		require.Equal(t, "Алматы", first.Region)
		require.Equal(t, 2, first.Projects)
		require.Equal(t, 2, first.Employees)
		// Both linked publications resolve to AP-1 after id normalization.
		require.Equal(t, 2, first.Publications)
		// Алматы holds all raw project budget, so it takes the whole total.
		require.InDelta(t, 8_000_000_000, first.Budget, 0.01)

		second := summary.ByRegion[1]
		require.Equal(t, "Астана", second.Region)
		require.InDelta(t, 0, second.Budget, 0.01)
	})
}

func TestGetSummaryRegionFilter(t *testing.T) {
	svc := newTestService()
	summary, err := svc.GetSummary(context.Background(), "алматы")
	require.NoError(t, err)

	require.Equal(t, 2, summary.Projects.Total)
	require.Equal(t, 2, summary.People.Total)
	// Publications are never narrowed by region.
	require.Equal(t, 4, summary.Publications.Total)
	require.Len(t, summary.ByRegion, 1)
}

func TestGetSummaryDrainsAllPages(t *testing.T) {
	projects := make([]domain.Project, 0, 250)
	for i := 0; i < 250; i++ {
		projects = append(projects, domain.Project{ID: "p", Region: "Алматы", Tags: []string{"", "грант"}})
	}
	svc := NewService(
		&fakeCatalog{projects: projects},
		&fakeEmployees{},
		&fakePublications{},
		&fakeFinances{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	summary, err := svc.GetSummary(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 250, summary.Projects.Total)
	require.Equal(t, 250, summary.Projects.Grants)
}
