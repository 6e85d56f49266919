package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubscriptionRequest defines the data needed to create or replace a subscription.
type SubscriptionRequest struct {
	Name            string                  `json:"name" binding:"required"`
	Amount          decimal.Decimal         `json:"amount"`
	Currency        string                  `json:"currency" binding:"required,len=3"`
	Frequency       domain.BillingFrequency `json:"frequency" binding:"required,oneof=monthly yearly"`
	Kind            domain.SubscriptionKind `json:"type" binding:"required,oneof=membership service"`
	IsVariable      bool                    `json:"isVariable"`
	NextPaymentDate *time.Time              `json:"nextPaymentDate,omitempty"`
	LastPaymentDate *time.Time              `json:"lastPaymentDate,omitempty"`
	AccountID       *int64                  `json:"accountId,omitempty"`
}

func (r SubscriptionRequest) Validate() error {
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// SubscriptionResponse is how the backend serializes a subscription.
type SubscriptionResponse struct {
	ID              int64                   `json:"id"`
	Name            string                  `json:"name"`
	Amount          decimal.Decimal         `json:"amount"`
	Currency        string                  `json:"currency"`
	Frequency       domain.BillingFrequency `json:"frequency"`
	Kind            domain.SubscriptionKind `json:"type"`
	IsVariable      bool                    `json:"is_variable"`
	NextPaymentDate *time.Time              `json:"next_payment_date,omitempty"`
	LastPaymentDate *time.Time              `json:"last_payment_date,omitempty"`
	AccountID       *int64                  `json:"account_id,omitempty"`
}

// ToSubscriptionRequest builds the write payload for an existing subscription.
func ToSubscriptionRequest(s domain.Subscription) SubscriptionRequest {
	return SubscriptionRequest{
		Name:            s.Name,
		Amount:          s.Amount,
		Currency:        s.Currency,
		Frequency:       s.Frequency,
		Kind:            s.Kind,
		IsVariable:      s.IsVariable,
		NextPaymentDate: s.NextPaymentDate,
		LastPaymentDate: s.LastPaymentDate,
		AccountID:       s.AccountID,
	}
}

// ToSubscriptionResponse converts a domain.Subscription to its wire shape.
func ToSubscriptionResponse(s *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:              s.ID,
		Name:            s.Name,
		Amount:          s.Amount,
		Currency:        s.Currency,
		Frequency:       s.Frequency,
		Kind:            s.Kind,
		IsVariable:      s.IsVariable,
		NextPaymentDate: s.NextPaymentDate,
		LastPaymentDate: s.LastPaymentDate,
		AccountID:       s.AccountID,
	}
}
