package repositories

import (
	"context"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions returns the user's transactions, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, userID string, tx domain.Transaction) (domain.Transaction, error)
	DeleteTransactionsByAccount(ctx context.Context, userID string, accountID int64) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
