package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type AccountRepository struct {
	mu   sync.RWMutex
	data ownedRows[domain.Account]
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{data: newOwnedRows[domain.Account]()}
}

func byAccountID(id int64) func(domain.Account) bool {
	return func(a domain.Account) bool { return a.ID == id }
}

func (r *AccountRepository) SaveAccount(_ context.Context, userID string, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = r.data.newID()
	r.data.rows[userID] = append(r.data.rows[userID], account)
	return account, nil
}

func (r *AccountRepository) FindAccountByID(_ context.Context, userID string, accountID int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.data.index(userID, byAccountID(accountID))
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	acc := r.data.rows[userID][i]
	return &acc, nil
}

func (r *AccountRepository) ListAccounts(_ context.Context, userID string) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data.list(userID), nil
}

// UpdateAccount replaces every field but the balance, which only moves through AdjustBalance.
func (r *AccountRepository) UpdateAccount(_ context.Context, userID string, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.data.index(userID, byAccountID(account.ID))
	if i < 0 {
		return apperrors.ErrNotFound
	}
	account.Balance = r.data.rows[userID][i].Balance
	r.data.rows[userID][i] = account
	return nil
}

func (r *AccountRepository) DeleteAccount(_ context.Context, userID string, accountID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.data.index(userID, byAccountID(accountID))
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.data.remove(userID, i)
	return nil
}

func (r *AccountRepository) AdjustBalance(_ context.Context, userID string, accountID int64, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.data.index(userID, byAccountID(accountID))
	if i < 0 {
		return apperrors.ErrNotFound
	}
	acc := &r.data.rows[userID][i]
	acc.Balance = acc.Balance.Add(delta)
	return nil
}
