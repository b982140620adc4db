package service

import (
	"context"
	"log/slog"
	"strings"

	"sciport/internal/catalog/metrics"
	"sciport/internal/domain"
	dErrors "sciport/pkg/domain-errors"
	"sciport/pkg/pagination"
)

type EmployeeService struct {
	repo    EmployeeRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewEmployeeService(repo EmployeeRepository, logger *slog.Logger, m *metrics.Metrics) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger, metrics: m}
}

func (s *EmployeeService) List(ctx context.Context, f domain.EmployeeFilters, page pagination.Params) (pagination.Result[domain.Employee], error) {
	s.metrics.IncrementReads("employee")
	result, err := s.repo.List(ctx, f, page)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		s.logger.Error("employee list failed", "error", err)
		return pagination.Result[domain.Employee]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list employees")
	}
	return result, nil
}

func (s *EmployeeService) GetFilters(ctx context.Context) (domain.EmployeeFilterOptions, error) {
	s.metrics.IncrementReads("employee")
	options, err := s.repo.GetFilters(ctx)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		return domain.EmployeeFilterOptions{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load employee filters")
	}
	return options, nil
}

func (s *EmployeeService) GetFilterMeta(ctx context.Context, f domain.EmployeeFilters) (domain.EmployeeFilterMeta, error) {
	s.metrics.IncrementReads("employee")
	meta, err := s.repo.GetFilterMeta(ctx, f)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		return domain.EmployeeFilterMeta{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load employee filter meta")
	}
	return meta, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	s.metrics.IncrementReads("employee")
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load employee")
	}
	if employee == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "employee not found")
	}
	return employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, input domain.Employee) (domain.Employee, error) {
	if strings.TrimSpace(input.Name) == "" {
		return domain.Employee{}, dErrors.New(dErrors.CodeBadRequest, "employee name is required")
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return domain.Employee{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create employee")
	}
	s.metrics.IncrementMutations("employee", "create")
	s.logger.Info("employee created", "id", created.ID)
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update employee")
	}
	if updated == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "employee not found")
	}
	s.metrics.IncrementMutations("employee", "update")
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete employee")
	}
	s.metrics.IncrementMutations("employee", "delete")
	s.logger.Info("employee deleted", "id", id)
	return nil
}
