package domain_test

import (
	"testing"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestYearPeriod(t *testing.T) {
	p := domain.YearPeriod(2024)
	assert.Equal(t, "2024-01-01", p.From)
	assert.Equal(t, "2024-12-31", p.To)
}

func TestMonthPeriod_AlwaysDay31UpperBound(t *testing.T) {
	p := domain.MonthPeriod(2024, 2)
	assert.Equal(t, "2024-02-01", p.From)
	assert.Equal(t, "2024-02-31", p.To)

	// every real February date is admitted lexicographically
	assert.True(t, p.From <= "2024-02-29" && "2024-02-29" <= p.To)
	// the first of March is not
	assert.False(t, "2024-03-01" <= p.To)
}

func TestMonthPeriod_PadsSingleDigitMonth(t *testing.T) {
	p := domain.MonthPeriod(2024, 9)
	assert.Equal(t, "2024-09-01", p.From)
	assert.Equal(t, "2024-09-31", p.To)
}

func TestPeriodFor(t *testing.T) {
	month := 6
	assert.Equal(t, domain.MonthPeriod(2024, 6), domain.PeriodFor(2024, &month))
	assert.Equal(t, domain.YearPeriod(2024), domain.PeriodFor(2024, nil))
}
