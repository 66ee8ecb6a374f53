package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aozora-dev/blue_return_app/internal/apperrors"
	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/aozora-dev/blue_return_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalService manages journal entries. Every write passes through
// validateLegs, which is the only place the two-leg balance invariant is
// enforced; the statement composers downstream assume it holds.
type JournalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

func NewJournalService(base BaseService, journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) *JournalService {
	return &JournalService{
		BaseService: base,
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// validateLegs checks amount positivity, the balance invariant and that both
// referenced accounts exist. Callers hold the service lock.
func (s *JournalService) validateLegs(ctx context.Context, debitAccountID, creditAccountID string, debitAmount, creditAmount decimal.Decimal) error {
	if debitAmount.LessThanOrEqual(decimal.Zero) || creditAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: entry amounts must be positive", apperrors.ErrValidation)
	}
	if !debitAmount.Equal(creditAmount) {
		return fmt.Errorf("%w: debit amount %s does not equal credit amount %s", apperrors.ErrValidation, debitAmount, creditAmount)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, debitAccountID); err != nil {
		return fmt.Errorf("debit account %s: %w", debitAccountID, err)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, creditAccountID); err != nil {
		return fmt.Errorf("credit account %s: %w", creditAccountID, err)
	}
	return nil
}

func (s *JournalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	defer s.lock()()

	if err := s.validateLegs(ctx, req.DebitAccountID, req.CreditAccountID, req.DebitAmount, req.CreditAmount); err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		Date:            req.Date,
		DebitAccountID:  req.DebitAccountID,
		DebitAmount:     req.DebitAmount,
		CreditAccountID: req.CreditAccountID,
		CreditAmount:    req.CreditAmount,
		Description:     req.Description,
		CreatedAt:       time.Now(),
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to save journal entry", slog.String("date", entry.Date))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	saved, err := s.journalRepo.FindEntryByID(ctx, entry.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload journal entry %s: %w", entry.EntryID, err)
	}

	s.LogInfo(ctx, "journal entry created", slog.String("entry_id", entry.EntryID), slog.String("date", entry.Date))
	return saved, nil
}

func (s *JournalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	defer s.lock()()

	existing, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	if err := s.validateLegs(ctx, req.DebitAccountID, req.CreditAccountID, req.DebitAmount, req.CreditAmount); err != nil {
		return nil, err
	}

	existing.Date = req.Date
	existing.DebitAccountID = req.DebitAccountID
	existing.DebitAmount = req.DebitAmount
	existing.CreditAccountID = req.CreditAccountID
	existing.CreditAmount = req.CreditAmount
	existing.Description = req.Description

	if err := s.journalRepo.UpdateEntry(ctx, *existing); err != nil {
		s.LogError(ctx, err, "failed to update journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry %s: %w", entryID, err)
	}

	updated, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload journal entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "journal entry updated", slog.String("entry_id", entryID))
	return updated, nil
}

func (s *JournalService) DeleteEntry(ctx context.Context, entryID string) error {
	defer s.lock()()

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "failed to delete journal entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *JournalService) ListEntries(ctx context.Context, year int, month *int) ([]domain.JournalEntry, error) {
	defer s.lock()()

	period := domain.PeriodFor(year, month)
	entries, err := s.journalRepo.ListEntries(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "failed to list journal entries", slog.String("from", period.From), slog.String("to", period.To))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}
