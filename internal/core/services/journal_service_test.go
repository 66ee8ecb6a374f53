package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/aozora-dev/blue_return_app/internal/apperrors"
	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/aozora-dev/blue_return_app/internal/core/services"
	"github.com/aozora-dev/blue_return_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock repositories ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         *services.JournalService
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(services.NewBaseService(), suite.mockJournalRepo, suite.mockAccountRepo)
}

func (suite *JournalServiceTestSuite) validRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Date:            "2024-03-15",
		DebitAccountID:  "acc-cash",
		DebitAmount:     decimal.NewFromInt(5000),
		CreditAccountID: "acc-sales",
		CreditAmount:    decimal.NewFromInt(5000),
		Description:     "cash sale",
	}
}

func (suite *JournalServiceTestSuite) stubAccounts() {
	cash := &domain.Account{AccountID: "acc-cash", Code: 1100, Name: "Cash", Classification: domain.Asset}
	sales := &domain.Account{AccountID: "acc-sales", Code: 4100, Name: "Sales", Classification: domain.Revenue}
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, "acc-cash").Return(cash, nil)
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, "acc-sales").Return(sales, nil)
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := suite.validRequest()
	suite.stubAccounts()

	suite.mockJournalRepo.On("SaveEntry", mock.Anything, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()
	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, mock.AnythingOfType("string")).
		Return(&domain.JournalEntry{
			EntryID:           "entry-1",
			Date:              req.Date,
			DebitAccountID:    req.DebitAccountID,
			DebitAccountName:  "Cash",
			DebitAmount:       req.DebitAmount,
			CreditAccountID:   req.CreditAccountID,
			CreditAccountName: "Sales",
			CreditAmount:      req.CreditAmount,
			Description:       req.Description,
			CreatedAt:         time.Now(),
		}, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), entry)
	assert.Equal(suite.T(), "Cash", entry.DebitAccountName)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnbalancedRejected() {
	req := suite.validRequest()
	req.CreditAmount = decimal.NewFromInt(4999)

	entry, err := suite.service.CreateEntry(context.Background(), req)

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NonPositiveAmountRejected() {
	req := suite.validRequest()
	req.DebitAmount = decimal.Zero
	req.CreditAmount = decimal.Zero

	entry, err := suite.service.CreateEntry(context.Background(), req)

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_MissingAccountRejected() {
	req := suite.validRequest()
	cash := &domain.Account{AccountID: "acc-cash", Code: 1100, Name: "Cash", Classification: domain.Asset}
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, "acc-cash").Return(cash, nil)
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, "acc-sales").Return(nil, apperrors.ErrNotFound)

	entry, err := suite.service.CreateEntry(context.Background(), req)

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestUpdateEntry_NotFound() {
	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.UpdateEntry(context.Background(), "missing", dto.UpdateJournalEntryRequest{
		Date:            "2024-03-15",
		DebitAccountID:  "acc-cash",
		DebitAmount:     decimal.NewFromInt(100),
		CreditAccountID: "acc-sales",
		CreditAmount:    decimal.NewFromInt(100),
	})

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestListEntries_MonthNarrowsPeriod() {
	month := 2
	expected := domain.MonthPeriod(2024, 2)
	suite.mockJournalRepo.On("ListEntries", mock.Anything, expected).Return([]domain.JournalEntry{}, nil).Once()

	entries, err := suite.service.ListEntries(context.Background(), 2024, &month)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), entries)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
