package domain

import (
	"github.com/shopspring/decimal"
)

// RentDetail is one payee line of the rent-expense breakdown attached to the
// filing statement. BusinessRatio is the integer percentage of the rent that
// counts as a business expense.
type RentDetail struct {
	RentID        string          `json:"rentID"` // Primary Key (UUID)
	PayeeAddress  string          `json:"payeeAddress"`
	PayeeName     string          `json:"payeeName"`
	RentType      string          `json:"rentType"`
	MonthlyRent   decimal.Decimal `json:"monthlyRent"`
	AnnualTotal   decimal.Decimal `json:"annualTotal"`
	BusinessRatio int             `json:"businessRatio"` // percent
	Memo          string          `json:"memo"`
	AuditFields
}

// BusinessPortion returns the business share of the annual rent,
// floor(annual_total * business_ratio / 100).
func (r RentDetail) BusinessPortion() decimal.Decimal {
	return r.AnnualTotal.
		Mul(decimal.NewFromInt(int64(r.BusinessRatio))).
		Div(decimal.NewFromInt(100)).
		Floor()
}
