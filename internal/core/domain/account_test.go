package domain_test

import (
	"testing"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedBalance_DebitNature(t *testing.T) {
	debit := decimal.NewFromInt(1000)
	credit := decimal.NewFromInt(300)

	assert.True(t, decimal.NewFromInt(700).Equal(domain.Asset.SignedBalance(debit, credit)))
	assert.True(t, decimal.NewFromInt(700).Equal(domain.Expense.SignedBalance(debit, credit)))
}

func TestSignedBalance_CreditNature(t *testing.T) {
	debit := decimal.NewFromInt(300)
	credit := decimal.NewFromInt(1000)

	assert.True(t, decimal.NewFromInt(700).Equal(domain.Liability.SignedBalance(debit, credit)))
	assert.True(t, decimal.NewFromInt(700).Equal(domain.Equity.SignedBalance(debit, credit)))
	assert.True(t, decimal.NewFromInt(700).Equal(domain.Revenue.SignedBalance(debit, credit)))
}

func TestSignedBalance_UnknownClassificationIsZero(t *testing.T) {
	got := domain.Classification("BOGUS").SignedBalance(decimal.NewFromInt(10), decimal.NewFromInt(5))
	assert.True(t, got.IsZero())
}

func TestLossCarryforward_AlreadyUsedAndSlots(t *testing.T) {
	loss := domain.LossCarryforward{
		LossAmount: decimal.NewFromInt(500000),
		UsedYear1:  decimal.NewFromInt(100000),
		UsedYear2:  decimal.NewFromInt(50000),
		UsedYear3:  decimal.Zero,
	}

	assert.True(t, decimal.NewFromInt(150000).Equal(loss.AlreadyUsed()))
	assert.True(t, decimal.NewFromInt(100000).Equal(loss.UsedInSlot(1)))
	assert.True(t, decimal.NewFromInt(50000).Equal(loss.UsedInSlot(2)))
	assert.True(t, loss.UsedInSlot(3).IsZero())
	assert.True(t, loss.UsedInSlot(0).IsZero())
	assert.True(t, loss.UsedInSlot(4).IsZero())
}

func TestRentDetail_BusinessPortionFloors(t *testing.T) {
	rent := domain.RentDetail{
		AnnualTotal:   decimal.NewFromInt(1000001),
		BusinessRatio: 33,
	}
	// 1000001 * 33 / 100 = 330000.33, floored
	assert.True(t, decimal.NewFromInt(330000).Equal(rent.BusinessPortion()))
}
