package monthly

import (
	"context"
	"errors"
	"time"

	"github.com/budgetpulse/budgetpulse/internal/domain"
)

// ErrUserNotFound is returned when a store is asked for records of a user it
// does not hold. Resolving the user is the caller's responsibility; this is
// the only hard failure the monthly reporter surfaces.
var ErrUserNotFound = errors.New("user not found")

// Store is the persistence collaborator the monthly reporter reads from.
// Implementations return records with dates in [from, to).
type Store interface {
	GetExpenses(ctx context.Context, userID int, from, to time.Time) ([]domain.Expense, error)
	GetIncomes(ctx context.Context, userID int, from, to time.Time) ([]domain.Income, error)
}

// LedgerStore is an in-memory Store over a loaded ledger file. It holds the
// records of a single user.
type LedgerStore struct {
	userID   int
	expenses []domain.Expense
	incomes  []domain.Income
}

// NewLedgerStore creates a store holding one user's records
func NewLedgerStore(userID int, expenses []domain.Expense, incomes []domain.Income) *LedgerStore {
	return &LedgerStore{
		userID:   userID,
		expenses: expenses,
		incomes:  incomes,
	}
}

// GetExpenses returns the user's expenses dated in [from, to)
func (s *LedgerStore) GetExpenses(_ context.Context, userID int, from, to time.Time) ([]domain.Expense, error) {
	if userID != s.userID {
		return nil, ErrUserNotFound
	}
	matched := []domain.Expense{}
	for _, e := range s.expenses {
		if inWindow(e.Date, from, to) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// GetIncomes returns the user's incomes dated in [from, to)
func (s *LedgerStore) GetIncomes(_ context.Context, userID int, from, to time.Time) ([]domain.Income, error) {
	if userID != s.userID {
		return nil, ErrUserNotFound
	}
	matched := []domain.Income{}
	for _, in := range s.incomes {
		if inWindow(in.Date, from, to) {
			matched = append(matched, in)
		}
	}
	return matched, nil
}

func inWindow(date, from, to time.Time) bool {
	return !date.Before(from) && date.Before(to)
}
