package repositories

import (
	"context"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

type SubscriptionReader interface {
	ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)
}

type SubscriptionWriter interface {
	SaveSubscription(ctx context.Context, userID string, sub domain.Subscription) (domain.Subscription, error)
	UpdateSubscription(ctx context.Context, userID string, sub domain.Subscription) error
	DeleteSubscription(ctx context.Context, userID string, subscriptionID int64) error
}

// SubscriptionRepositoryFacade combines all subscription-related repository interfaces
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
}
