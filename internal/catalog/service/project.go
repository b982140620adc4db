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

type ProjectService struct {
	repo    ProjectRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewProjectService(repo ProjectRepository, logger *slog.Logger, m *metrics.Metrics) *ProjectService {
	return &ProjectService{repo: repo, logger: logger, metrics: m}
}

func (s *ProjectService) List(ctx context.Context, f domain.ProjectFilters, page pagination.Params) (pagination.Result[domain.Project], error) {
	s.metrics.IncrementReads("project")
	result, err := s.repo.List(ctx, f, page)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		s.logger.Error("project list failed", "error", err)
		return pagination.Result[domain.Project]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list projects")
	}
	return result, nil
}

func (s *ProjectService) GetFilters(ctx context.Context) (domain.ProjectFilterOptions, error) {
	s.metrics.IncrementReads("project")
	options, err := s.repo.GetFilters(ctx)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		s.logger.Error("project filters failed", "error", err)
		return domain.ProjectFilterOptions{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load project filters")
	}
	return options, nil
}

func (s *ProjectService) GetFilterMeta(ctx context.Context, f domain.ProjectFilters) (domain.ProjectFilterMeta, error) {
	s.metrics.IncrementReads("project")
	meta, err := s.repo.GetFilterMeta(ctx, f)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		s.logger.Error("project filter meta failed", "error", err)
		return domain.ProjectFilterMeta{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load project filter meta")
	}
	return meta, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	s.metrics.IncrementReads("project")
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load project")
	}
	if project == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "project not found")
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, input domain.Project) (domain.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Project{}, dErrors.New(dErrors.CodeBadRequest, "project title is required")
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return domain.Project{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create project")
	}
	s.metrics.IncrementMutations("project", "create")
	s.logger.Info("project created", "id", created.ID)
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update project")
	}
	if updated == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "project not found")
	}
	s.metrics.IncrementMutations("project", "update")
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete project")
	}
	s.metrics.IncrementMutations("project", "delete")
	s.logger.Info("project deleted", "id", id)
	return nil
}
