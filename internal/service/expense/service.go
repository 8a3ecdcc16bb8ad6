package expense

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"spendbook/internal/domain"
	"spendbook/internal/repository"
)

// ErrMissingFields is returned when a required field is absent.
var ErrMissingFields = errors.New("title, amount and category are required")

// Service manages expense records scoped to their owning account.
type Service struct {
	expenses repository.ExpenseRepository
	logger   *slog.Logger
}

// New constructs a Service.
func New(expenses repository.ExpenseRepository, logger *slog.Logger) Service {
	return Service{expenses: expenses, logger: logger}
}

// CreateInput carries the fields for a new expense. Amount is a pointer so
// an absent field is distinguishable from zero.
type CreateInput struct {
	Title      string     `json:"title"`
	Amount     *float64   `json:"amount"`
	Category   string     `json:"category"`
	OccurredAt *time.Time `json:"occurred_at"`
}

// Create persists a new expense for ownerID. OccurredAt defaults to the
// current time when unspecified.
func (s Service) Create(ctx context.Context, ownerID string, input CreateInput) (*domain.Expense, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	if title == "" || category == "" || input.Amount == nil {
		return nil, ErrMissingFields
	}
	occurredAt := time.Now().UTC()
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}
	record := &domain.Expense{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Title:      title,
		Amount:     *input.Amount,
		Category:   category,
		OccurredAt: occurredAt,
	}
	if err := s.expenses.CreateExpense(ctx, record); err != nil {
		return nil, err
	}
	s.logger.Info("expense created", "expense_id", record.ID, "owner_id", ownerID)
	return record, nil
}

// List returns the owner's expenses, most recent first.
func (s Service) List(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	return s.expenses.ListExpensesByOwner(ctx, ownerID)
}

// Delete removes the expense when it belongs to ownerID. A missing or
// non-owned id is a silent no-op.
func (s Service) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.expenses.DeleteExpenseOwned(ctx, id, ownerID); err != nil {
		return err
	}
	s.logger.Info("expense delete processed", "expense_id", id, "owner_id", ownerID)
	return nil
}
