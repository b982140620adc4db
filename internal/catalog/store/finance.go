package store

import (
	"context"
	"sync"

	"sciport/internal/catalog/legacy"
	"sciport/internal/domain"
)

const financeByTypeQuery = "распределение п типу.txt"

// ProjectFinder is the slice of the project repository the finance store needs
// to resolve budgets.
type ProjectFinder interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}

// LegacyFinanceStore builds finance rollups from the legacy distribution view
// and keeps recorded spending history in memory. History is append-only and
// keyed by project id.
type LegacyFinanceStore struct {
	reader   *legacy.Reader
	projects ProjectFinder

	mu      sync.RWMutex
	history map[string][]domain.FinanceHistoryItem
}

func NewLegacyFinanceStore(reader *legacy.Reader, projects ProjectFinder) *LegacyFinanceStore {
	return &LegacyFinanceStore{
		reader:   reader,
		projects: projects,
		history:  make(map[string][]domain.FinanceHistoryItem),
	}
}

// GetSummary reports the catalog-wide budget distribution. The legacy view is
// not partitioned by year, so the year parameter is accepted but unused.
func (s *LegacyFinanceStore) GetSummary(ctx context.Context, _ int) (domain.FinanceSummary, error) {
	rows, err := s.reader.Execute(ctx, legacy.DomainFinances, financeByTypeQuery)
	if err != nil {
		return domain.FinanceSummary{}, err
	}

	byCategory := make([]domain.CategoryAmount, 0, len(rows))
	var totalBudget float64
	for _, row := range rows {
		item := domain.CategoryAmount{
			Category: row.String("name"),
			Amount:   row.Number("as"),
		}
		byCategory = append(byCategory, item)
		totalBudget += item.Amount
	}

	s.mu.RLock()
	var totalSpent float64
	for _, items := range s.history {
		for _, item := range items {
			totalSpent += item.Amount
		}
	}
	s.mu.RUnlock()

	return domain.FinanceSummary{
		TotalBudget: totalBudget,
		TotalSpent:  totalSpent,
		ByCategory:  byCategory,
		ByRegion:    []domain.RegionAmount{},
	}, nil
}

func (s *LegacyFinanceStore) GetProject(ctx context.Context, projectID string) (*domain.FinanceProject, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}

	history, spent := s.historyFor(projectID)
	return &domain.FinanceProject{
		ProjectID: projectID,
		Budget:    project.Budget,
		Spent:     spent,
		History:   history,
	}, nil
}

// UpsertHistory appends one expense record. When the project is unknown to the
// catalog the record is still kept and reported against a zero budget.
func (s *LegacyFinanceStore) UpsertHistory(ctx context.Context, projectID string, item domain.FinanceHistoryItem) (domain.FinanceProject, error) {
	s.mu.Lock()
	s.history[projectID] = append(s.history[projectID], item)
	s.mu.Unlock()

	financeProject, err := s.GetProject(ctx, projectID)
	if err != nil {
		return domain.FinanceProject{}, err
	}
	if financeProject != nil {
		return *financeProject, nil
	}

	history, spent := s.historyFor(projectID)
	return domain.FinanceProject{
		ProjectID: projectID,
		Budget:    0,
		Spent:     spent,
		History:   history,
	}, nil
}

func (s *LegacyFinanceStore) historyFor(projectID string) ([]domain.FinanceHistoryItem, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.history[projectID]
	history := make([]domain.FinanceHistoryItem, len(items))
	copy(history, items)

	var spent float64
	for _, item := range history {
		spent += item.Amount
	}
	return history, spent
}
