package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aozora-dev/blue_return_app/internal/apperrors"
	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/aozora-dev/blue_return_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LossService manages the loss-carryforward register. RecordLossUsage is the
// only path that persists consumed slots; the advisory application in the
// statement service never writes.
type LossService struct {
	BaseService
	lossRepo portsrepo.LossRepository
}

func NewLossService(base BaseService, repo portsrepo.LossRepository) *LossService {
	return &LossService{BaseService: base, lossRepo: repo}
}

func (s *LossService) CreateLossCarryforward(ctx context.Context, req dto.CreateLossCarryforwardRequest) (*domain.LossCarryforward, error) {
	defer s.lock()()

	if req.LossAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: loss amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	loss := domain.LossCarryforward{
		LossID:     uuid.NewString(),
		LossYear:   req.LossYear,
		LossAmount: req.LossAmount,
		UsedYear1:  decimal.Zero,
		UsedYear2:  decimal.Zero,
		UsedYear3:  decimal.Zero,
		Memo:       req.Memo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.lossRepo.SaveLossCarryforward(ctx, loss); err != nil {
		s.LogError(ctx, err, "failed to save loss carryforward", slog.Int("loss_year", loss.LossYear))
		return nil, fmt.Errorf("failed to save loss carryforward: %w", err)
	}

	s.LogInfo(ctx, "loss carryforward created", slog.String("loss_id", loss.LossID), slog.Int("loss_year", loss.LossYear))
	return &loss, nil
}

func (s *LossService) DeleteLossCarryforward(ctx context.Context, lossID string) error {
	defer s.lock()()

	if err := s.lossRepo.DeleteLossCarryforward(ctx, lossID); err != nil {
		s.LogError(ctx, err, "failed to delete loss carryforward", slog.String("loss_id", lossID))
		return fmt.Errorf("failed to delete loss carryforward %s: %w", lossID, err)
	}

	s.LogInfo(ctx, "loss carryforward deleted", slog.String("loss_id", lossID))
	return nil
}

func (s *LossService) ListLossCarryforwards(ctx context.Context) ([]domain.LossCarryforward, error) {
	defer s.lock()()

	losses, err := s.lossRepo.ListLossCarryforwards(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list loss carryforwards")
		return nil, fmt.Errorf("failed to list loss carryforwards: %w", err)
	}
	return losses, nil
}

func (s *LossService) RecordLossUsage(ctx context.Context, lossID string, req dto.UpdateLossUsageRequest) (*domain.LossCarryforward, error) {
	defer s.lock()()

	existing, err := s.lossRepo.FindLossCarryforwardByID(ctx, lossID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loss carryforward %s: %w", lossID, err)
	}

	if req.UsedYear1.IsNegative() || req.UsedYear2.IsNegative() || req.UsedYear3.IsNegative() {
		return nil, fmt.Errorf("%w: usage amounts cannot be negative", apperrors.ErrValidation)
	}
	totalUsed := req.UsedYear1.Add(req.UsedYear2).Add(req.UsedYear3)
	if totalUsed.GreaterThan(existing.LossAmount) {
		return nil, fmt.Errorf("%w: total usage %s exceeds loss amount %s", apperrors.ErrValidation, totalUsed, existing.LossAmount)
	}

	if err := s.lossRepo.UpdateLossUsage(ctx, lossID, req.UsedYear1, req.UsedYear2, req.UsedYear3); err != nil {
		s.LogError(ctx, err, "failed to update loss usage", slog.String("loss_id", lossID))
		return nil, fmt.Errorf("failed to update loss usage for %s: %w", lossID, err)
	}

	updated, err := s.lossRepo.FindLossCarryforwardByID(ctx, lossID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload loss carryforward %s: %w", lossID, err)
	}

	s.LogInfo(ctx, "loss usage recorded", slog.String("loss_id", lossID))
	return updated, nil
}
