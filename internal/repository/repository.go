package repository

import (
	"context"

	"spendbook/internal/domain"
)

// UserRepository persists accounts. Accounts are created once and never
// updated or deleted through any exposed operation.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ExpenseRepository persists expense records. Every read and delete is
// scoped to the owning account.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense *domain.Expense) error
	ListExpensesByOwner(ctx context.Context, ownerID string) ([]domain.Expense, error)
	DeleteExpenseOwned(ctx context.Context, id, ownerID string) error
}
