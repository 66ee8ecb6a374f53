package dto

import (
	"time"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRentDetailRequest defines the data needed to add a rent-expense line.
// BusinessRatio is an integer percentage of the rent used for business.
type CreateRentDetailRequest struct {
	PayeeAddress  string          `json:"payeeAddress" binding:"required"`
	PayeeName     string          `json:"payeeName" binding:"required"`
	RentType      string          `json:"rentType" binding:"required"`
	MonthlyRent   decimal.Decimal `json:"monthlyRent" binding:"required"`
	AnnualTotal   decimal.Decimal `json:"annualTotal" binding:"required"`
	BusinessRatio int             `json:"businessRatio" binding:"required,gte=0,lte=100"`
	Memo          string          `json:"memo"`
}

// RentDetailResponse defines the data returned for a rent-expense line.
type RentDetailResponse struct {
	RentID        string          `json:"rentID"`
	PayeeAddress  string          `json:"payeeAddress"`
	PayeeName     string          `json:"payeeName"`
	RentType      string          `json:"rentType"`
	MonthlyRent   decimal.Decimal `json:"monthlyRent"`
	AnnualTotal   decimal.Decimal `json:"annualTotal"`
	BusinessRatio int             `json:"businessRatio"`
	Memo          string          `json:"memo"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListRentDetailsResponse wraps the rent-expense breakdown.
type ListRentDetailsResponse struct {
	RentDetails []RentDetailResponse `json:"rentDetails"`
}

// ToRentDetailResponse converts a domain.RentDetail to its DTO.
func ToRentDetailResponse(r *domain.RentDetail) RentDetailResponse {
	return RentDetailResponse{
		RentID:        r.RentID,
		PayeeAddress:  r.PayeeAddress,
		PayeeName:     r.PayeeName,
		RentType:      r.RentType,
		MonthlyRent:   r.MonthlyRent,
		AnnualTotal:   r.AnnualTotal,
		BusinessRatio: r.BusinessRatio,
		Memo:          r.Memo,
		CreatedAt:     r.CreatedAt,
	}
}

// ToListRentDetailsResponse converts a slice of rent details to the list DTO.
func ToListRentDetailsResponse(rents []domain.RentDetail) ListRentDetailsResponse {
	res := make([]RentDetailResponse, len(rents))
	for i, r := range rents {
		res[i] = ToRentDetailResponse(&r)
	}
	return ListRentDetailsResponse{RentDetails: res}
}
