package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType states what a transaction does to the money it moves.
// Amounts are always stored positive; the sign is implied by the type.
type TransactionType string

const (
	Income        TransactionType = "income"
	Expense       TransactionType = "expense"
	InvestmentTx  TransactionType = "investment"
	CreditPayment TransactionType = "credit_payment"
	LoanPayment   TransactionType = "loan_payment"
	Transfer      TransactionType = "transfer"
)

func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, InvestmentTx, CreditPayment, LoanPayment, Transfer:
		return true
	}
	return false
}

// Transaction is a single money movement against one account.
type Transaction struct {
	ID             int64           `json:"id"`
	AccountID      int64           `json:"accountId"` // must reference a live account, enforced by the backend
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"` // positive
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Date           time.Time       `json:"date"`
	SubscriptionID *int64          `json:"subscriptionId,omitempty"`
	AccountName    string          `json:"accountName,omitempty"` // display name of the embedded account, if sent
}

// SignedAmount returns the contribution of the transaction to income minus expense.
// Only income and expense contribute; every other type is neutral.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Type {
	case Income:
		return t.Amount
	case Expense:
		return t.Amount.Neg()
	}
	return decimal.Zero
}
