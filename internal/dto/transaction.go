package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to post a transaction.
type CreateTransactionRequest struct {
	AccountID      int64                  `json:"accountId" binding:"required,gt=0"`
	Type           domain.TransactionType `json:"type" binding:"required,oneof=income expense investment credit_payment loan_payment transfer"`
	Amount         decimal.Decimal        `json:"amount"`
	Category       string                 `json:"category" binding:"required"`
	Description    string                 `json:"description"`
	Date           time.Time              `json:"date"`
	SubscriptionID *int64                 `json:"subscriptionId,omitempty"`
}

// Validate checks the rules tags cannot express.
func (r CreateTransactionRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// AccountRef is the embedded account the backend attaches to a transaction.
type AccountRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TransactionResponse is how the backend serializes a transaction.
type TransactionResponse struct {
	ID             int64                  `json:"id"`
	AccountID      int64                  `json:"accountId"`
	Type           domain.TransactionType `json:"type"`
	Amount         decimal.Decimal        `json:"amount"`
	Category       string                 `json:"category"`
	Description    string                 `json:"description"`
	Date           time.Time              `json:"date"`
	SubscriptionID *int64                 `json:"subscriptionId,omitempty"`
	Account        *AccountRef            `json:"account,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction, attaching the account name when known.
func ToTransactionResponse(tx *domain.Transaction, accountName string) TransactionResponse {
	res := TransactionResponse{
		ID:             tx.ID,
		AccountID:      tx.AccountID,
		Type:           tx.Type,
		Amount:         tx.Amount,
		Category:       tx.Category,
		Description:    tx.Description,
		Date:           tx.Date,
		SubscriptionID: tx.SubscriptionID,
	}
	if accountName != "" {
		res.Account = &AccountRef{ID: tx.AccountID, Name: accountName}
	}
	return res
}
