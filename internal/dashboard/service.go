// Package dashboard aggregates all four catalogs into the landing-page rollup.
package dashboard

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sciport/internal/domain"
	dErrors "sciport/pkg/domain-errors"
	"sciport/pkg/pagination"
)

// The catalog ports the dashboard reads from. They match the catalog service
// signatures, so services plug in directly.
type (
	ProjectLister interface {
		List(ctx context.Context, f domain.ProjectFilters, page pagination.Params) (pagination.Result[domain.Project], error)
	}
	EmployeeLister interface {
		List(ctx context.Context, f domain.EmployeeFilters, page pagination.Params) (pagination.Result[domain.Employee], error)
	}
	PublicationLister interface {
		List(ctx context.Context, f domain.PublicationFilters, page pagination.Params) (pagination.Result[domain.Publication], error)
	}
	FinanceSummarizer interface {
		GetSummary(ctx context.Context, year int) (domain.FinanceSummary, error)
	}
)

type Service struct {
	projects     ProjectLister
	employees    EmployeeLister
	publications PublicationLister
	finances     FinanceSummarizer
	logger       *slog.Logger
}

func NewService(projects ProjectLister, employees EmployeeLister, publications PublicationLister, finances FinanceSummarizer, logger *slog.Logger) *Service {
	return &Service{
		projects:     projects,
		employees:    employees,
		publications: publications,
		finances:     finances,
		logger:       logger,
	}
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func matchesRegion(itemRegion, filterRegion string) bool {
	if filterRegion == "" {
		return true
	}
	return strings.Contains(normalize(itemRegion), normalize(filterRegion))
}

func normalizeProjectID(value string) string {
	return strings.Join(strings.Fields(normalize(value)), "")
}

// listPages drains a paginated lister so the rollup covers the whole
// collection, not just the first page.
func listPages[T any](list func(page pagination.Params) (pagination.Result[T], error)) ([]T, error) {
	var items []T
	page := pagination.Params{Page: 1, Limit: pagination.MaxLimit}
	for {
		result, err := list(page)
		if err != nil {
			return nil, err
		}
		items = append(items, result.Items...)
		if !result.Meta.HasNextPage {
			return items, nil
		}
		page.Page++
	}
}

func round(value float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(value*scale) / scale
}

// GetSummary builds the dashboard rollup, optionally narrowed to a region.
// The four catalogs are fetched concurrently.
func (s *Service) GetSummary(ctx context.Context, region string) (domain.DashboardSummary, error) {
	var (
		projects       []domain.Project
		employees      []domain.Employee
		publications   []domain.Publication
		financeSummary domain.FinanceSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := listPages(func(page pagination.Params) (pagination.Result[domain.Project], error) {
			return s.projects.List(gctx, domain.ProjectFilters{}, page)
		})
		if err != nil {
			return err
		}
		for _, p := range all {
			if matchesRegion(p.Region, region) {
				projects = append(projects, p)
			}
		}
		return nil
	})
	g.Go(func() error {
		all, err := listPages(func(page pagination.Params) (pagination.Result[domain.Employee], error) {
			return s.employees.List(gctx, domain.EmployeeFilters{}, page)
		})
		if err != nil {
			return err
		}
		for _, e := range all {
			if matchesRegion(e.Region, region) {
				employees = append(employees, e)
			}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		publications, err = listPages(func(page pagination.Params) (pagination.Result[domain.Publication], error) {
			return s.publications.List(gctx, domain.PublicationFilters{}, page)
		})
		return err
	})
	g.Go(func() error {
		var err error
		financeSummary, err = s.finances.GetSummary(gctx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard rollup failed", "error", err)
		return domain.DashboardSummary{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build dashboard summary")
	}

	var summary domain.DashboardSummary

	countTagged := func(needle string) int {
		count := 0
		for _, p := range projects {
			for _, tag := range p.Tags {
				if strings.Contains(normalize(tag), needle) {
					count++
					break
				}
			}
		}
		return count
	}
	summary.Projects.Total = len(projects)
	summary.Projects.Grants = countTagged("гран")
	summary.Projects.Programs = countTagged("програм")
	summary.Projects.Contracts = countTagged("контракт")
	summary.Projects.Commercialization = max(len(projects)-summary.Projects.Grants-summary.Projects.Programs-summary.Projects.Contracts, 0)

	countTyped := func(needle string) int {
		count := 0
		for _, p := range publications {
			if strings.Contains(normalize(p.Type), needle) {
				count++
			}
		}
		return count
	}
	summary.Publications.Total = len(publications)
	summary.Publications.Journals = countTyped("journal")
	summary.Publications.Conferences = countTyped("conference")
	summary.Publications.Books = countTyped("book")
	summary.Publications.Other = max(len(publications)-summary.Publications.Journals-summary.Publications.Conferences-summary.Publications.Books, 0)

	var ageSum float64
	var ageCount int
	countPositioned := func(needle string) int {
		count := 0
		for _, e := range employees {
			if strings.Contains(normalize(e.Position), needle) {
				count++
			}
		}
		return count
	}
	for _, e := range employees {
		if age := e.MetricNumber("age"); age > 0 {
			ageSum += age
			ageCount++
		}
	}
	summary.People.Total = len(employees)
	summary.People.Docents = countPositioned("доцент")
	summary.People.Professors = countPositioned("профессор")
	summary.People.AssociateProfessors = max(summary.People.Docents-summary.People.Professors, 0)
	if ageCount > 0 {
		summary.People.AvgAge = ageSum / float64(ageCount)
	}

	summary.ByRegion = s.regionRollup(projects, employees, publications, financeSummary.TotalBudget)

	totalSpent := financeSummary.TotalSpent / 1_000_000_000
	totalBudget := financeSummary.TotalBudget / 1_000_000_000
	summary.Finances.Total = round(totalBudget, 2)
	summary.Finances.LastYear = round(totalSpent, 2)
	if len(projects) > 0 {
		summary.Finances.AvgExpense = round(totalSpent/float64(len(projects)), 2)
	}
	if totalBudget > 0 {
		summary.Finances.BudgetUsage = round(totalSpent/totalBudget*100, 1)
	}
	summary.Finances.RegionalPrograms = len(summary.ByRegion)

	return summary, nil
}

// regionRollup counts projects, employees and publications per region and
// redistributes the finance summary total proportionally to each region's
// share of the raw project budgets. Publications attach to the region of
// their linked project.
func (s *Service) regionRollup(projects []domain.Project, employees []domain.Employee, publications []domain.Publication, totalBudget float64) []domain.DashboardRegionSummary {
	type regionStats struct {
		projects     int
		employees    int
		publications int
		budget       float64
	}

	byRegion := make(map[string]*regionStats)
	var order []string
	stats := func(region string) *regionStats {
		if region == "" {
			region = "—"
		}
		if st, ok := byRegion[region]; ok {
			return st
		}
		st := &regionStats{}
		byRegion[region] = st
		order = append(order, region)
		return st
	}

	projectRegionByID := make(map[string]string, len(projects))
	for _, p := range projects {
		st := stats(p.Region)
		st.projects++
		st.budget += math.Max(p.Budget, 0)
		key := p.Region
		if key == "" {
			key = "—"
		}
		projectRegionByID[normalizeProjectID(p.ID)] = key
	}
	for _, e := range employees {
		stats(e.Region).employees++
	}
	for _, p := range publications {
		if regionKey, ok := projectRegionByID[normalizeProjectID(p.ProjectID)]; ok && regionKey != "" {
			stats(regionKey).publications++
		}
	}

	var budgetFromProjects float64
	for _, st := range byRegion {
		budgetFromProjects += st.budget
	}

	out := make([]domain.DashboardRegionSummary, 0, len(order))
	for _, region := range order {
		st := byRegion[region]
		budget := 0.0
		if budgetFromProjects > 0 {
			budget = round(st.budget/budgetFromProjects*totalBudget, 2)
		}
		out = append(out, domain.DashboardRegionSummary{
			Region:       region,
			Projects:     st.projects,
			Employees:    st.employees,
			Publications: st.publications,
			Budget:       budget,
		})
	}

	// Busiest regions first, insertion order breaking ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Projects > out[j].Projects
	})
	return out
}
