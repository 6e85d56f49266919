package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
)

type SubscriptionRepository struct {
	mu   sync.RWMutex
	data ownedRows[domain.Subscription]
}

var _ portsrepo.SubscriptionRepositoryFacade = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{data: newOwnedRows[domain.Subscription]()}
}

func bySubscriptionID(id int64) func(domain.Subscription) bool {
	return func(s domain.Subscription) bool { return s.ID == id }
}

func (r *SubscriptionRepository) SaveSubscription(_ context.Context, userID string, sub domain.Subscription) (domain.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.ID = r.data.newID()
	r.data.rows[userID] = append(r.data.rows[userID], sub)
	return sub, nil
}

func (r *SubscriptionRepository) ListSubscriptions(_ context.Context, userID string) ([]domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data.list(userID), nil
}

func (r *SubscriptionRepository) UpdateSubscription(_ context.Context, userID string, sub domain.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.data.index(userID, bySubscriptionID(sub.ID))
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.data.rows[userID][i] = sub
	return nil
}

func (r *SubscriptionRepository) DeleteSubscription(_ context.Context, userID string, subscriptionID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.data.index(userID, bySubscriptionID(subscriptionID))
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.data.remove(userID, i)
	return nil
}
