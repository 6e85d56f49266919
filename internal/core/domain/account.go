package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines what kind of financial product an account is.
type AccountType string

const (
	Card       AccountType = "card"
	Loan       AccountType = "loan"
	Investment AccountType = "investment"
	Cash       AccountType = "cash"
	Savings    AccountType = "savings"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Card, Loan, Investment, Cash, Savings:
		return true
	}
	return false
}

// AccountSubType refines card and cash accounts.
type AccountSubType string

const (
	Debit        AccountSubType = "debit"
	Credit       AccountSubType = "credit"
	Payroll      AccountSubType = "payroll"
	NotAvailable AccountSubType = "n/a"
)

func (t AccountSubType) Valid() bool {
	switch t {
	case Debit, Credit, Payroll, NotAvailable:
		return true
	}
	return false
}

// PaymentFrequency is how often a loan or card payment is due.
type PaymentFrequency string

const (
	Weekly   PaymentFrequency = "weekly"
	Biweekly PaymentFrequency = "biweekly"
	Monthly  PaymentFrequency = "monthly"
)

func (f PaymentFrequency) Valid() bool {
	switch f {
	case Weekly, Biweekly, Monthly:
		return true
	}
	return false
}

// AccountPalette is the cyclic set of card gradients assigned by list position.
var AccountPalette = []string{
	"from-blue-600 to-blue-800",
	"from-emerald-500 to-emerald-700",
	"from-purple-600 to-purple-800",
	"from-rose-500 to-rose-700",
	"from-amber-500 to-amber-700",
	"from-slate-600 to-slate-800",
}

// Account represents a financial account as mirrored from the backend.
// Color is presentation only: it is never sent to the server and is recomputed
// from list position on every fetch.
type Account struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Type             AccountType      `json:"type"`
	SubType          AccountSubType   `json:"sub_type"`
	Balance          decimal.Decimal  `json:"balance"` // signed
	CreditLimit      decimal.Decimal  `json:"credit_limit"`
	InterestRate     decimal.Decimal  `json:"interest_rate"`
	MonthlyPayment   decimal.Decimal  `json:"monthly_payment"`
	PaymentFrequency PaymentFrequency `json:"payment_frequency"`
	CutoffDay        int              `json:"cutoff_day"`  // 1-31, 0 = unset
	PaymentDay       int              `json:"payment_day"` // 1-31, 0 = unset
	Currency         string           `json:"currency"`
	Color            string           `json:"-"`
}
