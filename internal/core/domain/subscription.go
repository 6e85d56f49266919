package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingFrequency is the native billing period of a subscription.
type BillingFrequency string

const (
	BilledMonthly BillingFrequency = "monthly"
	BilledYearly  BillingFrequency = "yearly"
)

func (f BillingFrequency) Valid() bool {
	return f == BilledMonthly || f == BilledYearly
}

// SubscriptionKind separates memberships (gyms, clubs) from services (streaming, software).
type SubscriptionKind string

const (
	Membership SubscriptionKind = "membership"
	Service    SubscriptionKind = "service"
)

func (k SubscriptionKind) Valid() bool {
	return k == Membership || k == Service
}

// Subscription is a recurring charge.
type Subscription struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	Frequency       BillingFrequency `json:"frequency"`
	Kind            SubscriptionKind `json:"type"`
	IsVariable      bool             `json:"isVariable"` // amount may differ per charge
	NextPaymentDate *time.Time       `json:"nextPaymentDate,omitempty"`
	LastPaymentDate *time.Time       `json:"lastPaymentDate,omitempty"`
	AccountID       *int64           `json:"accountId,omitempty"`
}
