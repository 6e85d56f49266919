package dto

import (
	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRequest defines the data needed to create or replace an account.
// The same tags are used by gin binding on the server and by the client-side validator.
type AccountRequest struct {
	Name             string                  `json:"name" binding:"required"`
	Type             domain.AccountType      `json:"type" binding:"required,oneof=card loan investment cash savings"`
	SubType          domain.AccountSubType   `json:"sub_type" binding:"omitempty,oneof=debit credit payroll n/a"`
	Balance          decimal.Decimal         `json:"balance"`
	CreditLimit      decimal.Decimal         `json:"credit_limit"`
	InterestRate     decimal.Decimal         `json:"interest_rate"`
	MonthlyPayment   decimal.Decimal         `json:"monthly_payment"`
	PaymentFrequency domain.PaymentFrequency `json:"payment_frequency" binding:"omitempty,oneof=weekly biweekly monthly"`
	CutoffDay        int                     `json:"cutoff_day" binding:"min=0,max=31"`
	PaymentDay       int                     `json:"payment_day" binding:"min=0,max=31"`
	Currency         string                  `json:"currency" binding:"required,len=3"`
}

// AccountResponse is how the backend serializes an account: snake_case keys
// and decimals as strings.
type AccountResponse struct {
	ID               int64                   `json:"id"`
	Name             string                  `json:"name"`
	Type             domain.AccountType      `json:"type"`
	SubType          domain.AccountSubType   `json:"sub_type"`
	Balance          decimal.Decimal         `json:"balance"`
	CreditLimit      decimal.Decimal         `json:"credit_limit"`
	InterestRate     decimal.Decimal         `json:"interest_rate"`
	MonthlyPayment   decimal.Decimal         `json:"monthly_payment"`
	PaymentFrequency domain.PaymentFrequency `json:"payment_frequency"`
	CutoffDay        int                     `json:"cutoff_day"`
	PaymentDay       int                     `json:"payment_day"`
	Currency         string                  `json:"currency"`
}

// ToAccountRequest builds the write payload for an existing account.
func ToAccountRequest(acc domain.Account) AccountRequest {
	return AccountRequest{
		Name:             acc.Name,
		Type:             acc.Type,
		SubType:          acc.SubType,
		Balance:          acc.Balance,
		CreditLimit:      acc.CreditLimit,
		InterestRate:     acc.InterestRate,
		MonthlyPayment:   acc.MonthlyPayment,
		PaymentFrequency: acc.PaymentFrequency,
		CutoffDay:        acc.CutoffDay,
		PaymentDay:       acc.PaymentDay,
		Currency:         acc.Currency,
	}
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:               acc.ID,
		Name:             acc.Name,
		Type:             acc.Type,
		SubType:          acc.SubType,
		Balance:          acc.Balance,
		CreditLimit:      acc.CreditLimit,
		InterestRate:     acc.InterestRate,
		MonthlyPayment:   acc.MonthlyPayment,
		PaymentFrequency: acc.PaymentFrequency,
		CutoffDay:        acc.CutoffDay,
		PaymentDay:       acc.PaymentDay,
		Currency:         acc.Currency,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
