// Package service wraps the catalog repositories with validation, coded
// errors, logging and metrics. Services are thin: all merge and filter
// semantics live in the stores.
package service

import (
	"context"

	"sciport/internal/domain"
	"sciport/pkg/pagination"
)

type ProjectRepository interface {
	List(ctx context.Context, f domain.ProjectFilters, page pagination.Params) (pagination.Result[domain.Project], error)
	GetFilters(ctx context.Context) (domain.ProjectFilterOptions, error)
	GetFilterMeta(ctx context.Context, f domain.ProjectFilters) (domain.ProjectFilterMeta, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, input domain.Project) (domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type EmployeeRepository interface {
	List(ctx context.Context, f domain.EmployeeFilters, page pagination.Params) (pagination.Result[domain.Employee], error)
	GetFilters(ctx context.Context) (domain.EmployeeFilterOptions, error)
	GetFilterMeta(ctx context.Context, f domain.EmployeeFilters) (domain.EmployeeFilterMeta, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input domain.Employee) (domain.Employee, error)
	Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PublicationRepository interface {
	List(ctx context.Context, f domain.PublicationFilters, page pagination.Params) (pagination.Result[domain.Publication], error)
	GetFilters(ctx context.Context) (domain.PublicationFilterOptions, error)
	GetFilterMeta(ctx context.Context, f domain.PublicationFilters) (domain.PublicationFilterMeta, error)
	GetByID(ctx context.Context, id string) (*domain.Publication, error)
	Create(ctx context.Context, input domain.Publication) (domain.Publication, error)
	Update(ctx context.Context, id string, patch domain.PublicationPatch) (*domain.Publication, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type FinanceRepository interface {
	GetSummary(ctx context.Context, year int) (domain.FinanceSummary, error)
	GetProject(ctx context.Context, projectID string) (*domain.FinanceProject, error)
	UpsertHistory(ctx context.Context, projectID string, item domain.FinanceHistoryItem) (domain.FinanceProject, error)
}
