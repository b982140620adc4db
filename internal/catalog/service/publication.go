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

type PublicationService struct {
	repo    PublicationRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewPublicationService(repo PublicationRepository, logger *slog.Logger, m *metrics.Metrics) *PublicationService {
	return &PublicationService{repo: repo, logger: logger, metrics: m}
}

func (s *PublicationService) List(ctx context.Context, f domain.PublicationFilters, page pagination.Params) (pagination.Result[domain.Publication], error) {
	s.metrics.IncrementReads("publication")
	result, err := s.repo.List(ctx, f, page)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		s.logger.Error("publication list failed", "error", err)
		return pagination.Result[domain.Publication]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list publications")
	}
	return result, nil
}

func (s *PublicationService) GetFilters(ctx context.Context) (domain.PublicationFilterOptions, error) {
	s.metrics.IncrementReads("publication")
	options, err := s.repo.GetFilters(ctx)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		return domain.PublicationFilterOptions{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load publication filters")
	}
	return options, nil
}

func (s *PublicationService) GetFilterMeta(ctx context.Context, f domain.PublicationFilters) (domain.PublicationFilterMeta, error) {
	s.metrics.IncrementReads("publication")
	meta, err := s.repo.GetFilterMeta(ctx, f)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		return domain.PublicationFilterMeta{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load publication filter meta")
	}
	return meta, nil
}

func (s *PublicationService) GetByID(ctx context.Context, id string) (*domain.Publication, error) {
	s.metrics.IncrementReads("publication")
	publication, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load publication")
	}
	if publication == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "publication not found")
	}
	return publication, nil
}

func (s *PublicationService) Create(ctx context.Context, input domain.Publication) (domain.Publication, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Publication{}, dErrors.New(dErrors.CodeBadRequest, "publication title is required")
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return domain.Publication{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create publication")
	}
	s.metrics.IncrementMutations("publication", "create")
	s.logger.Info("publication created", "id", created.ID)
	return created, nil
}

func (s *PublicationService) Update(ctx context.Context, id string, patch domain.PublicationPatch) (*domain.Publication, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update publication")
	}
	if updated == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "publication not found")
	}
	s.metrics.IncrementMutations("publication", "update")
	return updated, nil
}

func (s *PublicationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete publication")
	}
	s.metrics.IncrementMutations("publication", "delete")
	s.logger.Info("publication deleted", "id", id)
	return nil
}
