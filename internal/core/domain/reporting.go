package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialSummary bundles the derived metrics of the finance collections.
type FinancialSummary struct {
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpense       decimal.Decimal `json:"totalExpense"`
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	NetBudget          decimal.Decimal `json:"netBudget"`
	TotalFixedExpenses decimal.Decimal `json:"totalFixedExpenses"` // monthly equivalent
}

// CategoryAmount is the total spent in one category.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
