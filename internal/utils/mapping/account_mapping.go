package mapping

import (
	"encoding/json"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

// accountSchema lists the accepted wire names per canonical account field.
// Rate and day fields default to 0 when absent.
var accountSchema = struct {
	ID, Name, Type, SubType, Balance, CreditLimit, InterestRate,
	MonthlyPayment, PaymentFrequency, CutoffDay, PaymentDay, Currency aliases
}{
	ID:               aliases{"id", "account_id", "accountId"},
	Name:             aliases{"name", "account_name", "accountName"},
	Type:             aliases{"type", "account_type", "accountType"},
	SubType:          aliases{"sub_type", "subType", "subtype"},
	Balance:          aliases{"balance", "current_balance", "currentBalance"},
	CreditLimit:      aliases{"credit_limit", "creditLimit"},
	InterestRate:     aliases{"interest_rate", "interestRate"},
	MonthlyPayment:   aliases{"monthly_payment", "monthlyPayment"},
	PaymentFrequency: aliases{"payment_frequency", "paymentFrequency"},
	CutoffDay:        aliases{"cutoff_day", "cutoffDay", "cut_off_day"},
	PaymentDay:       aliases{"payment_day", "paymentDay"},
	Currency:         aliases{"currency", "currency_code", "currencyCode"},
}

// NormalizeAccounts converts a wire list of accounts into canonical records and
// assigns each a palette color from its position in the normalized list.
func NormalizeAccounts(raw json.RawMessage) []domain.Account {
	items := decodeList(raw)
	accounts := make([]domain.Account, 0, len(items))
	for _, item := range items {
		accounts = append(accounts, toDomainAccount(item))
	}
	AssignColors(accounts)
	return accounts
}

// AssignColors sets Color = palette[index mod len(palette)] on every account.
func AssignColors(accounts []domain.Account) {
	n := len(domain.AccountPalette)
	for i := range accounts {
		accounts[i].Color = domain.AccountPalette[i%n]
	}
}

func toDomainAccount(o rawObject) domain.Account {
	s := accountSchema
	acc := domain.Account{
		ID:               o.int64(s.ID),
		Name:             o.str(s.Name),
		Type:             domain.AccountType(o.str(s.Type)),
		SubType:          domain.AccountSubType(o.str(s.SubType)),
		Balance:          o.decimal(s.Balance),
		CreditLimit:      o.decimal(s.CreditLimit),
		InterestRate:     o.decimal(s.InterestRate),
		MonthlyPayment:   o.decimal(s.MonthlyPayment),
		PaymentFrequency: domain.PaymentFrequency(o.str(s.PaymentFrequency)),
		CutoffDay:        clampDay(o.int(s.CutoffDay)),
		PaymentDay:       clampDay(o.int(s.PaymentDay)),
		Currency:         o.str(s.Currency),
	}
	if !acc.Type.Valid() {
		acc.Type = domain.Cash
	}
	if !acc.SubType.Valid() {
		acc.SubType = domain.NotAvailable
	}
	if !acc.PaymentFrequency.Valid() {
		acc.PaymentFrequency = domain.Monthly
	}
	return acc
}

// clampDay keeps day-of-month fields in 0..31, where 0 means unset.
func clampDay(d int) int {
	if d < 0 || d > 31 {
		return 0
	}
	return d
}
