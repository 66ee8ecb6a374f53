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

// RentService manages the rent-expense breakdown records.
type RentService struct {
	BaseService
	rentRepo portsrepo.RentRepository
}

func NewRentService(base BaseService, repo portsrepo.RentRepository) *RentService {
	return &RentService{BaseService: base, rentRepo: repo}
}

func (s *RentService) CreateRentDetail(ctx context.Context, req dto.CreateRentDetailRequest) (*domain.RentDetail, error) {
	defer s.lock()()

	if req.AnnualTotal.LessThan(decimal.Zero) || req.MonthlyRent.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: rent amounts cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	rent := domain.RentDetail{
		RentID:        uuid.NewString(),
		PayeeAddress:  req.PayeeAddress,
		PayeeName:     req.PayeeName,
		RentType:      req.RentType,
		MonthlyRent:   req.MonthlyRent,
		AnnualTotal:   req.AnnualTotal,
		BusinessRatio: req.BusinessRatio,
		Memo:          req.Memo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.rentRepo.SaveRentDetail(ctx, rent); err != nil {
		s.LogError(ctx, err, "failed to save rent detail", slog.String("payee", rent.PayeeName))
		return nil, fmt.Errorf("failed to save rent detail: %w", err)
	}

	s.LogInfo(ctx, "rent detail created", slog.String("rent_id", rent.RentID), slog.String("payee", rent.PayeeName))
	return &rent, nil
}

func (s *RentService) DeleteRentDetail(ctx context.Context, rentID string) error {
	defer s.lock()()

	if err := s.rentRepo.DeleteRentDetail(ctx, rentID); err != nil {
		s.LogError(ctx, err, "failed to delete rent detail", slog.String("rent_id", rentID))
		return fmt.Errorf("failed to delete rent detail %s: %w", rentID, err)
	}

	s.LogInfo(ctx, "rent detail deleted", slog.String("rent_id", rentID))
	return nil
}

func (s *RentService) ListRentDetails(ctx context.Context) ([]domain.RentDetail, error) {
	defer s.lock()()

	rents, err := s.rentRepo.ListRentDetails(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list rent details")
		return nil, fmt.Errorf("failed to list rent details: %w", err)
	}
	return rents, nil
}
