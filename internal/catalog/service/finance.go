package service

import (
	"context"
	"log/slog"
	"strings"

	"sciport/internal/catalog/metrics"
	"sciport/internal/domain"
	dErrors "sciport/pkg/domain-errors"
)

type FinanceService struct {
	repo    FinanceRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewFinanceService(repo FinanceRepository, logger *slog.Logger, m *metrics.Metrics) *FinanceService {
	return &FinanceService{repo: repo, logger: logger, metrics: m}
}

func (s *FinanceService) GetSummary(ctx context.Context, year int) (domain.FinanceSummary, error) {
	s.metrics.IncrementReads("finance")
	summary, err := s.repo.GetSummary(ctx, year)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		s.logger.Error("finance summary failed", "error", err)
		return domain.FinanceSummary{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load finance summary")
	}
	return summary, nil
}

func (s *FinanceService) GetProject(ctx context.Context, projectID string) (*domain.FinanceProject, error) {
	s.metrics.IncrementReads("finance")
	fp, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		s.metrics.IncrementQueryFailures()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load project finance")
	}
	if fp == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "project not found")
	}
	return fp, nil
}

func (s *FinanceService) UpsertHistory(ctx context.Context, projectID string, item domain.FinanceHistoryItem) (domain.FinanceProject, error) {
	if strings.TrimSpace(projectID) == "" {
		return domain.FinanceProject{}, dErrors.New(dErrors.CodeBadRequest, "project id is required")
	}
	if item.Amount < 0 {
		return domain.FinanceProject{}, dErrors.New(dErrors.CodeBadRequest, "amount must not be negative")
	}

	fp, err := s.repo.UpsertHistory(ctx, projectID, item)
	if err != nil {
		return domain.FinanceProject{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record finance history")
	}
	s.metrics.IncrementMutations("finance", "history")
	s.logger.Info("finance history recorded", "project_id", projectID, "amount", item.Amount)
	return fp, nil
}
