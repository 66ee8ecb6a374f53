package domain

import (
	"github.com/shopspring/decimal"
)

// CarryforwardWindow is how many years a net loss stays deductible.
const CarryforwardWindow = 3

// LossCarryforward records a net loss from a prior year and how much of it
// has been consumed in each of the three years after it was incurred.
// UsedYearN means "amount consumed when the loss was N years old". The slots
// are written by an explicit usage update after the operator accepts an
// application; the carryforward engine never mutates them.
type LossCarryforward struct {
	LossID     string          `json:"lossID"` // Primary Key (UUID)
	LossYear   int             `json:"lossYear"`
	LossAmount decimal.Decimal `json:"lossAmount"`
	UsedYear1  decimal.Decimal `json:"usedYear1"`
	UsedYear2  decimal.Decimal `json:"usedYear2"`
	UsedYear3  decimal.Decimal `json:"usedYear3"`
	Memo       string          `json:"memo"`
	AuditFields
}

// AlreadyUsed is the total consumed across all three usage slots.
func (l LossCarryforward) AlreadyUsed() decimal.Decimal {
	return l.UsedYear1.Add(l.UsedYear2).Add(l.UsedYear3)
}

// UsedInSlot returns the amount consumed in the slot for the given offset
// (1, 2 or 3 years after the loss year). Offsets outside the window
// report zero.
func (l LossCarryforward) UsedInSlot(offset int) decimal.Decimal {
	switch offset {
	case 1:
		return l.UsedYear1
	case 2:
		return l.UsedYear2
	case 3:
		return l.UsedYear3
	default:
		return decimal.Zero
	}
}
