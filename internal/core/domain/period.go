package domain

import "fmt"

// Period is an inclusive date range in YYYY-MM-DD form. Bounds are compared
// lexicographically against entry dates, never calendar-validated.
type Period struct {
	From string
	To   string
}

// YearPeriod covers one full calendar year.
func YearPeriod(year int) Period {
	return Period{
		From: fmt.Sprintf("%04d-01-01", year),
		To:   fmt.Sprintf("%04d-12-31", year),
	}
}

// MonthPeriod covers one calendar month. The upper bound is always day 31:
// under lexicographic comparison an inclusive "-31" bound admits every real
// date of the month and nothing beyond it, so the true month length does
// not matter.
func MonthPeriod(year, month int) Period {
	return Period{
		From: fmt.Sprintf("%04d-%02d-01", year, month),
		To:   fmt.Sprintf("%04d-%02d-31", year, month),
	}
}

// PeriodFor selects the month range when a month is given, otherwise the
// full year.
func PeriodFor(year int, month *int) Period {
	if month != nil {
		return MonthPeriod(year, *month)
	}
	return YearPeriod(year)
}
