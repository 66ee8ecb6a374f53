package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/aozora-dev/blue_return_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// StatementService derives the reporting artifacts from the ledger. Every
// statement is recomputed from the store on each call; nothing is cached.
// Exported methods hold the shared service lock for their full duration, so
// each statement reflects one consistent snapshot even while entries are
// being mutated concurrently. The lock-free unexported composers let
// FinalStatement assemble everything under a single lock acquisition.
type StatementService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	assetRepo     portsrepo.FixedAssetRepository
	rentRepo      portsrepo.RentRepository
	lossRepo      portsrepo.LossRepository

	salesCode     int
	purchasesCode int
}

func NewStatementService(base BaseService, repos *portsrepo.RepositoryProvider, salesCode, purchasesCode int) *StatementService {
	return &StatementService{
		BaseService:   base,
		reportingRepo: repos.ReportingRepo,
		assetRepo:     repos.FixedAssetRepo,
		rentRepo:      repos.RentRepo,
		lossRepo:      repos.LossRepo,
		salesCode:     salesCode,
		purchasesCode: purchasesCode,
	}
}

func (s *StatementService) TrialBalance(ctx context.Context, year int, month *int) (*domain.TrialBalance, error) {
	defer s.lock()()
	return s.trialBalance(ctx, year, month)
}

func (s *StatementService) trialBalance(ctx context.Context, year int, month *int) (*domain.TrialBalance, error) {
	period := domain.PeriodFor(year, month)
	totals, err := s.reportingRepo.AccountPeriodTotals(ctx, period, nil)
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate trial balance", slog.Int("year", year))
		return nil, fmt.Errorf("failed to aggregate trial balance: %w", err)
	}

	tb := &domain.TrialBalance{
		Rows:             make([]domain.TrialBalanceRow, 0, len(totals)),
		DebitGrandTotal:  decimal.Zero,
		CreditGrandTotal: decimal.Zero,
	}
	for _, t := range totals {
		tb.Rows = append(tb.Rows, domain.TrialBalanceRow{
			AccountID:      t.AccountID,
			AccountCode:    t.AccountCode,
			AccountName:    t.AccountName,
			Classification: t.Classification,
			DebitTotal:     t.DebitTotal,
			CreditTotal:    t.CreditTotal,
			Balance:        t.Classification.SignedBalance(t.DebitTotal, t.CreditTotal),
		})
		tb.DebitGrandTotal = tb.DebitGrandTotal.Add(t.DebitTotal)
		tb.CreditGrandTotal = tb.CreditGrandTotal.Add(t.CreditTotal)
	}
	return tb, nil
}

func (s *StatementService) ProfitLoss(ctx context.Context, year int) (*domain.ProfitLoss, error) {
	defer s.lock()()
	return s.profitLoss(ctx, year)
}

func (s *StatementService) profitLoss(ctx context.Context, year int) (*domain.ProfitLoss, error) {
	period := domain.YearPeriod(year)
	totals, err := s.reportingRepo.AccountPeriodTotals(ctx, period,
		[]domain.Classification{domain.Revenue, domain.Expense})
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate profit and loss", slog.Int("year", year))
		return nil, fmt.Errorf("failed to aggregate profit and loss: %w", err)
	}

	pl := &domain.ProfitLoss{
		RevenueRows:  []domain.ProfitLossRow{},
		ExpenseRows:  []domain.ProfitLossRow{},
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, t := range totals {
		row := domain.ProfitLossRow{
			AccountID:   t.AccountID,
			AccountCode: t.AccountCode,
			AccountName: t.AccountName,
			Amount:      t.Classification.SignedBalance(t.DebitTotal, t.CreditTotal),
		}
		switch t.Classification {
		case domain.Revenue:
			pl.RevenueRows = append(pl.RevenueRows, row)
			pl.TotalRevenue = pl.TotalRevenue.Add(row.Amount)
		case domain.Expense:
			pl.ExpenseRows = append(pl.ExpenseRows, row)
			pl.TotalExpense = pl.TotalExpense.Add(row.Amount)
		}
	}
	pl.NetIncome = pl.TotalRevenue.Sub(pl.TotalExpense)
	return pl, nil
}

func (s *StatementService) BalanceSheet(ctx context.Context, year int) (*domain.BalanceSheet, error) {
	defer s.lock()()
	return s.balanceSheet(ctx, year)
}

// balanceSheet reports the full-year position. NetIncome is carried over
// from the derived profit and loss, not posted to the ledger, so the sheet
// stays consistent with the income statement without a closing entry.
func (s *StatementService) balanceSheet(ctx context.Context, year int) (*domain.BalanceSheet, error) {
	period := domain.YearPeriod(year)
	totals, err := s.reportingRepo.AccountPeriodTotals(ctx, period,
		[]domain.Classification{domain.Asset, domain.Liability, domain.Equity})
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate balance sheet", slog.Int("year", year))
		return nil, fmt.Errorf("failed to aggregate balance sheet: %w", err)
	}

	pl, err := s.profitLoss(ctx, year)
	if err != nil {
		return nil, err
	}

	bs := &domain.BalanceSheet{
		AssetRows:        []domain.BalanceSheetRow{},
		LiabilityRows:    []domain.BalanceSheetRow{},
		EquityRows:       []domain.BalanceSheetRow{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
		NetIncome:        pl.NetIncome,
	}
	for _, t := range totals {
		row := domain.BalanceSheetRow{
			AccountID:   t.AccountID,
			AccountCode: t.AccountCode,
			AccountName: t.AccountName,
			Amount:      t.Classification.SignedBalance(t.DebitTotal, t.CreditTotal),
		}
		switch t.Classification {
		case domain.Asset:
			bs.AssetRows = append(bs.AssetRows, row)
			bs.TotalAssets = bs.TotalAssets.Add(row.Amount)
		case domain.Liability:
			bs.LiabilityRows = append(bs.LiabilityRows, row)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(row.Amount)
		case domain.Equity:
			bs.EquityRows = append(bs.EquityRows, row)
			bs.TotalEquity = bs.TotalEquity.Add(row.Amount)
		}
	}
	return bs, nil
}

func (s *StatementService) DepreciationSchedule(ctx context.Context, year int) ([]domain.DepreciationRow, error) {
	defer s.lock()()
	return s.depreciationSchedule(ctx, year)
}

func (s *StatementService) depreciationSchedule(ctx context.Context, year int) ([]domain.DepreciationRow, error) {
	assets, err := s.assetRepo.ListFixedAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list fixed assets for depreciation", slog.Int("year", year))
		return nil, fmt.Errorf("failed to list fixed assets: %w", err)
	}

	rows := []domain.DepreciationRow{}
	for _, asset := range assets {
		if !asset.IsActive {
			continue
		}
		if row := accounting.DepreciationCharge(asset, year); row != nil {
			rows = append(rows, *row)
		}
	}
	return rows, nil
}

func (s *StatementService) LossCarryforwardSummary(ctx context.Context, year int) (*domain.LossCarryforwardSummary, error) {
	defer s.lock()()
	return s.lossCarryforwardSummary(ctx, year)
}

func (s *StatementService) lossCarryforwardSummary(ctx context.Context, year int) (*domain.LossCarryforwardSummary, error) {
	pl, err := s.profitLoss(ctx, year)
	if err != nil {
		return nil, err
	}

	losses, err := s.lossRepo.ListLossesInYearRange(ctx, year-domain.CarryforwardWindow, year-1)
	if err != nil {
		s.LogError(ctx, err, "failed to list loss carryforwards", slog.Int("year", year))
		return nil, fmt.Errorf("failed to list loss carryforwards: %w", err)
	}

	summary := accounting.ApplyLossCarryforward(pl.NetIncome, losses, year)
	return &summary, nil
}

func (s *StatementService) MonthlySalesPurchases(ctx context.Context, year int) ([]domain.MonthlySalesPurchase, error) {
	defer s.lock()()
	return s.monthlySalesPurchases(ctx, year)
}

// monthlySalesPurchases always yields twelve rows, zero-filled for months
// without activity.
func (s *StatementService) monthlySalesPurchases(ctx context.Context, year int) ([]domain.MonthlySalesPurchase, error) {
	period := domain.YearPeriod(year)
	buckets, err := s.reportingRepo.MonthlySalesPurchases(ctx, period, s.salesCode, s.purchasesCode)
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate monthly sales and purchases", slog.Int("year", year))
		return nil, fmt.Errorf("failed to aggregate monthly sales and purchases: %w", err)
	}

	months := make([]domain.MonthlySalesPurchase, 12)
	for i := range months {
		months[i] = domain.MonthlySalesPurchase{
			Month:     i + 1,
			Sales:     decimal.Zero,
			Purchases: decimal.Zero,
		}
	}
	for _, b := range buckets {
		if b.Month >= 1 && b.Month <= 12 {
			months[b.Month-1].Sales = b.Sales
			months[b.Month-1].Purchases = b.Purchases
		}
	}
	return months, nil
}

// FinalStatement assembles the consolidated annual filing statement from the
// individual composers under a single lock acquisition, so all of its parts
// describe the same ledger state.
func (s *StatementService) FinalStatement(ctx context.Context, year int) (*domain.FinalStatement, error) {
	defer s.lock()()

	pl, err := s.profitLoss(ctx, year)
	if err != nil {
		return nil, err
	}

	monthly, err := s.monthlySalesPurchases(ctx, year)
	if err != nil {
		return nil, err
	}
	annualSales, annualPurchases := decimal.Zero, decimal.Zero
	for _, m := range monthly {
		annualSales = annualSales.Add(m.Sales)
		annualPurchases = annualPurchases.Add(m.Purchases)
	}

	depRows, err := s.depreciationSchedule(ctx, year)
	if err != nil {
		return nil, err
	}
	depTotal := decimal.Zero
	for _, r := range depRows {
		depTotal = depTotal.Add(r.CurrentYearDep)
	}

	rents, err := s.rentRepo.ListRentDetails(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list rent details", slog.Int("year", year))
		return nil, fmt.Errorf("failed to list rent details: %w", err)
	}
	rentTotal := decimal.Zero
	for _, r := range rents {
		rentTotal = rentTotal.Add(r.BusinessPortion())
	}

	bs, err := s.balanceSheet(ctx, year)
	if err != nil {
		return nil, err
	}

	lossSummary, err := s.lossCarryforwardSummary(ctx, year)
	if err != nil {
		return nil, err
	}

	return &domain.FinalStatement{
		ProfitLoss:           *pl,
		Monthly:              monthly,
		AnnualSalesTotal:     annualSales,
		AnnualPurchasesTotal: annualPurchases,
		DepreciationRows:     depRows,
		DepreciationTotal:    depTotal,
		RentDetails:          rents,
		RentTotal:            rentTotal,
		BalanceSheet:         *bs,
		LossCarryforward:     *lossSummary,
	}, nil
}
