package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/lifedash/internal/core/domain"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
)

type TransactionRepository struct {
	mu   sync.RWMutex
	data ownedRows[domain.Transaction]
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{data: newOwnedRows[domain.Transaction]()}
}

func (r *TransactionRepository) SaveTransaction(_ context.Context, userID string, tx domain.Transaction) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.ID = r.data.newID()
	r.data.rows[userID] = append(r.data.rows[userID], tx)
	return tx, nil
}

func (r *TransactionRepository) ListTransactions(_ context.Context, userID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	out := r.data.list(userID)
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *TransactionRepository) DeleteTransactionsByAccount(_ context.Context, userID string, accountID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.data.rows[userID][:0]
	for _, tx := range r.data.rows[userID] {
		if tx.AccountID != accountID {
			kept = append(kept, tx)
		}
	}
	r.data.rows[userID] = kept
	return nil
}
