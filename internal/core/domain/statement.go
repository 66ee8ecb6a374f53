package domain

import (
	"github.com/shopspring/decimal"
)

// AccountPeriodTotal is one row of the period aggregation: per-account debit
// and credit totals over an inclusive date range. Accounts with no activity
// in the period are never reported.
type AccountPeriodTotal struct {
	AccountID      string          `json:"accountID"`
	AccountCode    int             `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	Classification Classification  `json:"classification"`
	DebitTotal     decimal.Decimal `json:"debitTotal"`
	CreditTotal    decimal.Decimal `json:"creditTotal"`
}

// TrialBalanceRow is one account line of the trial balance.
type TrialBalanceRow struct {
	AccountID      string          `json:"accountID"`
	AccountCode    int             `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	Classification Classification  `json:"classification"`
	DebitTotal     decimal.Decimal `json:"debitTotal"`
	CreditTotal    decimal.Decimal `json:"creditTotal"`
	Balance        decimal.Decimal `json:"balance"`
}

// TrialBalance is the balanced ledger snapshot for a period. For any valid
// ledger the two grand totals are equal; that equality is the primary
// reconciliation check exposed to callers.
type TrialBalance struct {
	Rows             []TrialBalanceRow `json:"rows"`
	DebitGrandTotal  decimal.Decimal   `json:"debitGrandTotal"`
	CreditGrandTotal decimal.Decimal   `json:"creditGrandTotal"`
}

// ProfitLossRow is one revenue or expense account line.
type ProfitLossRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode int             `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitLoss is the full-year profit and loss statement.
type ProfitLoss struct {
	RevenueRows  []ProfitLossRow `json:"revenueRows"`
	ExpenseRows  []ProfitLossRow `json:"expenseRows"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetIncome    decimal.Decimal `json:"netIncome"`
}

// BalanceSheetRow is one asset, liability or equity account line.
type BalanceSheetRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode int             `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceSheet is the full-year balance sheet. NetIncome is the current-year
// result carried over from the profit and loss statement; it is attached to
// the report, not posted as a ledger entry.
type BalanceSheet struct {
	AssetRows        []BalanceSheetRow `json:"assetRows"`
	LiabilityRows    []BalanceSheetRow `json:"liabilityRows"`
	EquityRows       []BalanceSheetRow `json:"equityRows"`
	TotalAssets      decimal.Decimal   `json:"totalAssets"`
	TotalLiabilities decimal.Decimal   `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal   `json:"totalEquity"`
	NetIncome        decimal.Decimal   `json:"netIncome"`
}

// DepreciationRow is the proposed current-year depreciation of one asset.
type DepreciationRow struct {
	AssetID            string          `json:"assetID"`
	AssetName          string          `json:"assetName"`
	AcquisitionDate    string          `json:"acquisitionDate"`
	AcquisitionCost    decimal.Decimal `json:"acquisitionCost"`
	DepreciationMethod string          `json:"depreciationMethod"`
	UsefulLife         int             `json:"usefulLife"`
	DepreciationRate   int             `json:"depreciationRate"`
	AccumulatedDepPrev decimal.Decimal `json:"accumulatedDepPrev"`
	CurrentYearDep     decimal.Decimal `json:"currentYearDep"`
	AccumulatedDepEnd  decimal.Decimal `json:"accumulatedDepEnd"`
	BookValueEnd       decimal.Decimal `json:"bookValueEnd"`
}

// MonthlySalesPurchase is one month's sales and purchases bucket. The rollup
// always yields twelve rows, months 1-12, zero-filled where absent.
type MonthlySalesPurchase struct {
	Month     int             `json:"month"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

// LossCarryforwardApplied is the application result for one loss record.
// AppliedThisYear is zero when the record's slot for the target year was
// already consumed by a previously accepted application.
type LossCarryforwardApplied struct {
	LossYear        int             `json:"lossYear"`
	OriginalLoss    decimal.Decimal `json:"originalLoss"`
	AlreadyUsed     decimal.Decimal `json:"alreadyUsed"`
	AppliedThisYear decimal.Decimal `json:"appliedThisYear"`
	Remaining       decimal.Decimal `json:"remaining"`
}

// LossCarryforwardSummary is the advisory loss application for a target year.
type LossCarryforwardSummary struct {
	Rows         []LossCarryforwardApplied `json:"rows"`
	TotalApplied decimal.Decimal           `json:"totalApplied"`
	IncomeBefore decimal.Decimal           `json:"incomeBefore"`
	IncomeAfter  decimal.Decimal           `json:"incomeAfter"`
}

// FinalStatement is the consolidated annual filing statement.
type FinalStatement struct {
	ProfitLoss           ProfitLoss              `json:"profitLoss"`
	Monthly              []MonthlySalesPurchase  `json:"monthly"`
	AnnualSalesTotal     decimal.Decimal         `json:"annualSalesTotal"`
	AnnualPurchasesTotal decimal.Decimal         `json:"annualPurchasesTotal"`
	DepreciationRows     []DepreciationRow       `json:"depreciationRows"`
	DepreciationTotal    decimal.Decimal         `json:"depreciationTotal"`
	RentDetails          []RentDetail            `json:"rentDetails"`
	RentTotal            decimal.Decimal         `json:"rentTotal"`
	BalanceSheet         BalanceSheet            `json:"balanceSheet"`
	LossCarryforward     LossCarryforwardSummary `json:"lossCarryforward"`
}
