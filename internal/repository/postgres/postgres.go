package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"spendbook/internal/domain"
	"spendbook/internal/repository"
)

// Repository implements persistence interfaces on PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// New constructs a Repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ensure Repository satisfies interfaces.
var (
	_ repository.UserRepository    = (*Repository)(nil)
	_ repository.ExpenseRepository = (*Repository)(nil)
)

// CreateUser inserts an account. A duplicate email surfaces as
// repository.ErrDuplicateEmail.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	const query = `INSERT INTO users (id, email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query, user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetUserByEmail fetches an account by email. The match is exact and
// case-sensitive, as stored.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1`
	row := r.pool.QueryRow(ctx, query, email)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateExpense inserts an expense record.
func (r *Repository) CreateExpense(ctx context.Context, expense *domain.Expense) error {
	const query = `INSERT INTO expenses (id, owner_id, title, amount, category, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query, expense.ID, expense.OwnerID, expense.Title, expense.Amount, expense.Category, expense.OccurredAt)
	return err
}

// ListExpensesByOwner returns the owner's expenses, most recent first.
func (r *Repository) ListExpensesByOwner(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	const query = `SELECT id, owner_id, title, amount, category, occurred_at
		FROM expenses
		WHERE owner_id = $1
		ORDER BY occurred_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Amount, &e.Category, &e.OccurredAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// DeleteExpenseOwned deletes the record only when it belongs to ownerID.
// A missing or non-owned id deletes nothing and returns nil.
func (r *Repository) DeleteExpenseOwned(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM expenses WHERE id = $1 AND owner_id = $2`
	_, err := r.pool.Exec(ctx, query, id, ownerID)
	return err
}
