package dto

import (
	"time"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLossCarryforwardRequest defines the data needed to record a prior
// year's net loss.
type CreateLossCarryforwardRequest struct {
	LossYear   int             `json:"lossYear" binding:"required,gt=0"`
	LossAmount decimal.Decimal `json:"lossAmount" binding:"required"`
	Memo       string          `json:"memo"`
}

// UpdateLossUsageRequest overwrites the three usage slots of a loss record.
// It is sent once the operator accepts a proposed carryforward application.
type UpdateLossUsageRequest struct {
	UsedYear1 decimal.Decimal `json:"usedYear1"`
	UsedYear2 decimal.Decimal `json:"usedYear2"`
	UsedYear3 decimal.Decimal `json:"usedYear3"`
}

// LossCarryforwardResponse defines the data returned for a loss record.
type LossCarryforwardResponse struct {
	LossID     string          `json:"lossID"`
	LossYear   int             `json:"lossYear"`
	LossAmount decimal.Decimal `json:"lossAmount"`
	UsedYear1  decimal.Decimal `json:"usedYear1"`
	UsedYear2  decimal.Decimal `json:"usedYear2"`
	UsedYear3  decimal.Decimal `json:"usedYear3"`
	Memo       string          `json:"memo"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ListLossCarryforwardsResponse wraps the loss-history register.
type ListLossCarryforwardsResponse struct {
	Losses []LossCarryforwardResponse `json:"losses"`
}

// ToLossCarryforwardResponse converts a domain.LossCarryforward to its DTO.
func ToLossCarryforwardResponse(l *domain.LossCarryforward) LossCarryforwardResponse {
	return LossCarryforwardResponse{
		LossID:     l.LossID,
		LossYear:   l.LossYear,
		LossAmount: l.LossAmount,
		UsedYear1:  l.UsedYear1,
		UsedYear2:  l.UsedYear2,
		UsedYear3:  l.UsedYear3,
		Memo:       l.Memo,
		CreatedAt:  l.CreatedAt,
	}
}

// ToListLossCarryforwardsResponse converts a slice of loss records to the list DTO.
func ToListLossCarryforwardsResponse(losses []domain.LossCarryforward) ListLossCarryforwardsResponse {
	res := make([]LossCarryforwardResponse, len(losses))
	for i, l := range losses {
		res[i] = ToLossCarryforwardResponse(&l)
	}
	return ListLossCarryforwardsResponse{Losses: res}
}
