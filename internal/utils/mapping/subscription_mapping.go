package mapping

import (
	"encoding/json"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

var subscriptionSchema = struct {
	ID, Name, Amount, Currency, Frequency, Kind, IsVariable,
	NextPaymentDate, LastPaymentDate, AccountID aliases
}{
	ID:              aliases{"id", "subscription_id", "subscriptionId"},
	Name:            aliases{"name"},
	Amount:          aliases{"amount"},
	Currency:        aliases{"currency", "currency_code"},
	Frequency:       aliases{"frequency", "billing_frequency", "billingFrequency"},
	Kind:            aliases{"type", "kind"},
	IsVariable:      aliases{"isVariable", "is_variable"},
	NextPaymentDate: aliases{"nextPaymentDate", "next_payment_date"},
	LastPaymentDate: aliases{"lastPaymentDate", "last_payment_date"},
	AccountID:       aliases{"accountId", "account_id"},
}

// NormalizeSubscriptions converts a wire list of subscriptions.
func NormalizeSubscriptions(raw json.RawMessage) []domain.Subscription {
	items := decodeList(raw)
	subs := make([]domain.Subscription, 0, len(items))
	for _, item := range items {
		subs = append(subs, toDomainSubscription(item))
	}
	return subs
}

func toDomainSubscription(o rawObject) domain.Subscription {
	s := subscriptionSchema
	sub := domain.Subscription{
		ID:         o.int64(s.ID),
		Name:       o.str(s.Name),
		Amount:     o.decimal(s.Amount),
		Currency:   o.str(s.Currency),
		Frequency:  domain.BillingFrequency(o.str(s.Frequency)),
		Kind:       domain.SubscriptionKind(o.str(s.Kind)),
		IsVariable: o.bool(s.IsVariable),
		AccountID:  o.optInt64(s.AccountID),
	}
	sub.NextPaymentDate, _ = o.optTime(s.NextPaymentDate)
	sub.LastPaymentDate, _ = o.optTime(s.LastPaymentDate)
	if !sub.Frequency.Valid() {
		sub.Frequency = domain.BilledMonthly
	}
	if !sub.Kind.Valid() {
		sub.Kind = domain.Service
	}
	return sub
}
