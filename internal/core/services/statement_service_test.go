package services_test

import (
	"context"
	"testing"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/aozora-dev/blue_return_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock repositories ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) AccountPeriodTotals(ctx context.Context, period domain.Period, classifications []domain.Classification) ([]domain.AccountPeriodTotal, error) {
	args := m.Called(ctx, period, classifications)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountPeriodTotal), args.Error(1)
}

func (m *MockReportingRepository) MonthlySalesPurchases(ctx context.Context, period domain.Period, salesCode, purchasesCode int) ([]domain.MonthlySalesPurchase, error) {
	args := m.Called(ctx, period, salesCode, purchasesCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySalesPurchase), args.Error(1)
}

type MockFixedAssetRepository struct {
	mock.Mock
}

func (m *MockFixedAssetRepository) SaveFixedAsset(ctx context.Context, asset domain.FixedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockFixedAssetRepository) DeleteFixedAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockFixedAssetRepository) ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

type MockRentRepository struct {
	mock.Mock
}

func (m *MockRentRepository) SaveRentDetail(ctx context.Context, rent domain.RentDetail) error {
	args := m.Called(ctx, rent)
	return args.Error(0)
}

func (m *MockRentRepository) DeleteRentDetail(ctx context.Context, rentID string) error {
	args := m.Called(ctx, rentID)
	return args.Error(0)
}

func (m *MockRentRepository) ListRentDetails(ctx context.Context) ([]domain.RentDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentDetail), args.Error(1)
}

type MockLossRepository struct {
	mock.Mock
}

func (m *MockLossRepository) SaveLossCarryforward(ctx context.Context, loss domain.LossCarryforward) error {
	args := m.Called(ctx, loss)
	return args.Error(0)
}

func (m *MockLossRepository) DeleteLossCarryforward(ctx context.Context, lossID string) error {
	args := m.Called(ctx, lossID)
	return args.Error(0)
}

func (m *MockLossRepository) FindLossCarryforwardByID(ctx context.Context, lossID string) (*domain.LossCarryforward, error) {
	args := m.Called(ctx, lossID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LossCarryforward), args.Error(1)
}

func (m *MockLossRepository) ListLossCarryforwards(ctx context.Context) ([]domain.LossCarryforward, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LossCarryforward), args.Error(1)
}

func (m *MockLossRepository) ListLossesInYearRange(ctx context.Context, fromYear, toYear int) ([]domain.LossCarryforward, error) {
	args := m.Called(ctx, fromYear, toYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LossCarryforward), args.Error(1)
}

func (m *MockLossRepository) UpdateLossUsage(ctx context.Context, lossID string, usedYear1, usedYear2, usedYear3 decimal.Decimal) error {
	args := m.Called(ctx, lossID, usedYear1, usedYear2, usedYear3)
	return args.Error(0)
}

// --- Test Suite Setup ---

type StatementServiceTestSuite struct {
	suite.Suite
	mockReporting *MockReportingRepository
	mockAssets    *MockFixedAssetRepository
	mockRents     *MockRentRepository
	mockLosses    *MockLossRepository
	service       *services.StatementService
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockReporting = new(MockReportingRepository)
	suite.mockAssets = new(MockFixedAssetRepository)
	suite.mockRents = new(MockRentRepository)
	suite.mockLosses = new(MockLossRepository)

	repos := &portsrepo.RepositoryProvider{
		ReportingRepo:  suite.mockReporting,
		FixedAssetRepo: suite.mockAssets,
		RentRepo:       suite.mockRents,
		LossRepo:       suite.mockLosses,
	}
	suite.service = services.NewStatementService(services.NewBaseService(), repos, 4100, 5100)
}

func total(id string, code int, name string, cls domain.Classification, debit, credit int64) domain.AccountPeriodTotal {
	return domain.AccountPeriodTotal{
		AccountID:      id,
		AccountCode:    code,
		AccountName:    name,
		Classification: cls,
		DebitTotal:     decimal.NewFromInt(debit),
		CreditTotal:    decimal.NewFromInt(credit),
	}
}

// --- Test Cases ---

func (suite *StatementServiceTestSuite) TestTrialBalance_GrandTotalsBalance() {
	ctx := context.Background()
	totals := []domain.AccountPeriodTotal{
		total("acc-cash", 1100, "Cash", domain.Asset, 5000, 1200),
		total("acc-sales", 4100, "Sales", domain.Revenue, 0, 5000),
		total("acc-supplies", 5200, "Supplies", domain.Expense, 1200, 0),
	}
	suite.mockReporting.On("AccountPeriodTotals", mock.Anything, domain.YearPeriod(2024), []domain.Classification(nil)).
		Return(totals, nil).Once()

	tb, err := suite.service.TrialBalance(ctx, 2024, nil)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), tb.Rows, 3)
	assert.True(suite.T(), tb.DebitGrandTotal.Equal(tb.CreditGrandTotal))
	assert.True(suite.T(), decimal.NewFromInt(6200).Equal(tb.DebitGrandTotal))
	// signed balances follow account nature
	assert.True(suite.T(), decimal.NewFromInt(3800).Equal(tb.Rows[0].Balance))
	assert.True(suite.T(), decimal.NewFromInt(5000).Equal(tb.Rows[1].Balance))
	assert.True(suite.T(), decimal.NewFromInt(1200).Equal(tb.Rows[2].Balance))
}

func (suite *StatementServiceTestSuite) TestTrialBalance_MonthScopesPeriod() {
	month := 3
	suite.mockReporting.On("AccountPeriodTotals", mock.Anything, domain.MonthPeriod(2024, 3), []domain.Classification(nil)).
		Return([]domain.AccountPeriodTotal{}, nil).Once()

	tb, err := suite.service.TrialBalance(context.Background(), 2024, &month)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), tb.Rows)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestProfitLoss_SplitsAndNets() {
	totals := []domain.AccountPeriodTotal{
		total("acc-sales", 4100, "Sales", domain.Revenue, 0, 900000),
		total("acc-supplies", 5200, "Supplies", domain.Expense, 150000, 0),
		total("acc-rent", 5300, "Rent", domain.Expense, 240000, 0),
	}
	suite.mockReporting.On("AccountPeriodTotals", mock.Anything, domain.YearPeriod(2024),
		[]domain.Classification{domain.Revenue, domain.Expense}).Return(totals, nil).Once()

	pl, err := suite.service.ProfitLoss(context.Background(), 2024)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), pl.RevenueRows, 1)
	assert.Len(suite.T(), pl.ExpenseRows, 2)
	assert.True(suite.T(), decimal.NewFromInt(900000).Equal(pl.TotalRevenue))
	assert.True(suite.T(), decimal.NewFromInt(390000).Equal(pl.TotalExpense))
	assert.True(suite.T(), decimal.NewFromInt(510000).Equal(pl.NetIncome))
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_CarriesNetIncome() {
	bsTotals := []domain.AccountPeriodTotal{
		total("acc-cash", 1100, "Cash", domain.Asset, 800000, 200000),
		total("acc-loan", 2100, "Loan", domain.Liability, 0, 90000),
	}
	plTotals := []domain.AccountPeriodTotal{
		total("acc-sales", 4100, "Sales", domain.Revenue, 0, 510000),
	}
	suite.mockReporting.On("AccountPeriodTotals", mock.Anything, domain.YearPeriod(2024),
		[]domain.Classification{domain.Asset, domain.Liability, domain.Equity}).Return(bsTotals, nil).Once()
	suite.mockReporting.On("AccountPeriodTotals", mock.Anything, domain.YearPeriod(2024),
		[]domain.Classification{domain.Revenue, domain.Expense}).Return(plTotals, nil).Once()

	bs, err := suite.service.BalanceSheet(context.Background(), 2024)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromInt(600000).Equal(bs.TotalAssets))
	assert.True(suite.T(), decimal.NewFromInt(90000).Equal(bs.TotalLiabilities))
	assert.True(suite.T(), bs.TotalEquity.IsZero())
	assert.True(suite.T(), decimal.NewFromInt(510000).Equal(bs.NetIncome))
}

func (suite *StatementServiceTestSuite) TestDepreciationSchedule_SkipsInactiveAssets() {
	assets := []domain.FixedAsset{
		{
			AssetID:          "a1",
			Name:             "Van",
			AcquisitionDate:  "2022-01-10",
			AcquisitionCost:  decimal.NewFromInt(1200000),
			DepreciationRate: 2000,
			AccumulatedDep:   decimal.Zero,
			IsActive:         true,
		},
		{
			AssetID:          "a2",
			Name:             "Old printer",
			AcquisitionDate:  "2020-01-10",
			AcquisitionCost:  decimal.NewFromInt(50000),
			DepreciationRate: 2000,
			AccumulatedDep:   decimal.Zero,
			IsActive:         false,
		},
	}
	suite.mockAssets.On("ListFixedAssets", mock.Anything).Return(assets, nil).Once()

	rows, err := suite.service.DepreciationSchedule(context.Background(), 2024)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), "a1", rows[0].AssetID)
	assert.True(suite.T(), decimal.NewFromInt(240000).Equal(rows[0].CurrentYearDep))
}

func (suite *StatementServiceTestSuite) TestLossCarryforwardSummary_QueriesThreeYearWindow() {
	plTotals := []domain.AccountPeriodTotal{
		total("acc-sales", 4100, "Sales", domain.Revenue, 0, 300000),
	}
	suite.mockReporting.On("AccountPeriodTotals", mock.Anything, domain.YearPeriod(2024),
		[]domain.Classification{domain.Revenue, domain.Expense}).Return(plTotals, nil).Once()
	losses := []domain.LossCarryforward{
		{
			LossID:     "l1",
			LossYear:   2022,
			LossAmount: decimal.NewFromInt(100000),
			UsedYear1:  decimal.Zero,
			UsedYear2:  decimal.Zero,
			UsedYear3:  decimal.Zero,
		},
	}
	suite.mockLosses.On("ListLossesInYearRange", mock.Anything, 2021, 2023).Return(losses, nil).Once()

	summary, err := suite.service.LossCarryforwardSummary(context.Background(), 2024)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromInt(100000).Equal(summary.TotalApplied))
	assert.True(suite.T(), decimal.NewFromInt(200000).Equal(summary.IncomeAfter))
	suite.mockLosses.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestMonthlySalesPurchases_ZeroFillsTwelveMonths() {
	buckets := []domain.MonthlySalesPurchase{
		{Month: 3, Sales: decimal.NewFromInt(80000), Purchases: decimal.NewFromInt(20000)},
		{Month: 11, Sales: decimal.NewFromInt(120000), Purchases: decimal.Zero},
	}
	suite.mockReporting.On("MonthlySalesPurchases", mock.Anything, domain.YearPeriod(2024), 4100, 5100).
		Return(buckets, nil).Once()

	months, err := suite.service.MonthlySalesPurchases(context.Background(), 2024)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), months, 12)
	for i, m := range months {
		assert.Equal(suite.T(), i+1, m.Month)
	}
	assert.True(suite.T(), decimal.NewFromInt(80000).Equal(months[2].Sales))
	assert.True(suite.T(), decimal.NewFromInt(120000).Equal(months[10].Sales))
	assert.True(suite.T(), months[0].Sales.IsZero())
	assert.True(suite.T(), months[0].Purchases.IsZero())
}

func (suite *StatementServiceTestSuite) TestFinalStatement_ComposesAllParts() {
	plTotals := []domain.AccountPeriodTotal{
		total("acc-sales", 4100, "Sales", domain.Revenue, 0, 500000),
		total("acc-supplies", 5200, "Supplies", domain.Expense, 100000, 0),
	}
	bsTotals := []domain.AccountPeriodTotal{
		total("acc-cash", 1100, "Cash", domain.Asset, 500000, 100000),
	}
	// the income statement is derived twice: once directly and once for the
	// balance sheet's attached result
	suite.mockReporting.On("AccountPeriodTotals", mock.Anything, domain.YearPeriod(2024),
		[]domain.Classification{domain.Revenue, domain.Expense}).Return(plTotals, nil)
	suite.mockReporting.On("AccountPeriodTotals", mock.Anything, domain.YearPeriod(2024),
		[]domain.Classification{domain.Asset, domain.Liability, domain.Equity}).Return(bsTotals, nil).Once()
	suite.mockReporting.On("MonthlySalesPurchases", mock.Anything, domain.YearPeriod(2024), 4100, 5100).
		Return([]domain.MonthlySalesPurchase{
			{Month: 1, Sales: decimal.NewFromInt(500000), Purchases: decimal.NewFromInt(100000)},
		}, nil).Once()
	suite.mockAssets.On("ListFixedAssets", mock.Anything).Return([]domain.FixedAsset{}, nil).Once()
	suite.mockRents.On("ListRentDetails", mock.Anything).Return([]domain.RentDetail{
		{RentID: "r1", AnnualTotal: decimal.NewFromInt(600000), BusinessRatio: 50},
	}, nil).Once()
	suite.mockLosses.On("ListLossesInYearRange", mock.Anything, 2021, 2023).
		Return([]domain.LossCarryforward{}, nil).Once()

	statement, err := suite.service.FinalStatement(context.Background(), 2024)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromInt(400000).Equal(statement.ProfitLoss.NetIncome))
	assert.Len(suite.T(), statement.Monthly, 12)
	assert.True(suite.T(), decimal.NewFromInt(500000).Equal(statement.AnnualSalesTotal))
	assert.True(suite.T(), decimal.NewFromInt(100000).Equal(statement.AnnualPurchasesTotal))
	assert.True(suite.T(), statement.DepreciationTotal.IsZero())
	assert.True(suite.T(), decimal.NewFromInt(300000).Equal(statement.RentTotal))
	assert.True(suite.T(), decimal.NewFromInt(400000).Equal(statement.BalanceSheet.NetIncome))
	assert.True(suite.T(), statement.LossCarryforward.TotalApplied.IsZero())
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
