package repositories

import (
	"context"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
// Every method is scoped to the owning user; other users' accounts are not found.
type AccountReader interface {
	FindAccountByID(ctx context.Context, userID string, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with its assigned ID.
	SaveAccount(ctx context.Context, userID string, account domain.Account) (domain.Account, error)
	UpdateAccount(ctx context.Context, userID string, account domain.Account) error
	DeleteAccount(ctx context.Context, userID string, accountID int64) error
	// AdjustBalance adds delta to the balance of an account.
	AdjustBalance(ctx context.Context, userID string, accountID int64, delta decimal.Decimal) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
