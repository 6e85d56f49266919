package accounting

import (
	"sort"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// sumWhere adds the amounts of every transaction whose type is in types.
func sumWhere(transactions []domain.Transaction, types ...domain.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range transactions {
		for _, t := range types {
			if tx.Type == t {
				sum = sum.Add(tx.Amount)
				break
			}
		}
	}
	return sum
}

// TotalIncome is the sum of income transaction amounts.
func TotalIncome(transactions []domain.Transaction) decimal.Decimal {
	return sumWhere(transactions, domain.Income)
}

// TotalExpense is the sum of expense transaction amounts.
func TotalExpense(transactions []domain.Transaction) decimal.Decimal {
	return sumWhere(transactions, domain.Expense)
}

// TotalBalance sums the balance of every account regardless of type.
func TotalBalance(accounts []domain.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, acc := range accounts {
		sum = sum.Add(acc.Balance)
	}
	return sum
}

// NetBudget is income minus expenses and loan payments.
func NetBudget(transactions []domain.Transaction) decimal.Decimal {
	return TotalIncome(transactions).Sub(sumWhere(transactions, domain.Expense, domain.LoanPayment))
}

// MonthlyEquivalent normalizes a subscription to its cost per month.
func MonthlyEquivalent(sub domain.Subscription) decimal.Decimal {
	if sub.Frequency == domain.BilledYearly {
		return sub.Amount.Div(monthsPerYear)
	}
	return sub.Amount
}

// TotalFixedExpenses is the monthly-equivalent cost of all subscriptions.
func TotalFixedExpenses(subscriptions []domain.Subscription) decimal.Decimal {
	sum := decimal.Zero
	for _, sub := range subscriptions {
		sum = sum.Add(MonthlyEquivalent(sub))
	}
	return sum
}

// Summarize derives every metric from the given collections. It holds no state,
// so calling it twice on the same input yields identical results.
func Summarize(accounts []domain.Account, transactions []domain.Transaction, subscriptions []domain.Subscription) domain.FinancialSummary {
	return domain.FinancialSummary{
		TotalIncome:        TotalIncome(transactions),
		TotalExpense:       TotalExpense(transactions),
		TotalBalance:       TotalBalance(accounts),
		NetBudget:          NetBudget(transactions),
		TotalFixedExpenses: TotalFixedExpenses(subscriptions),
	}
}

// ExpenseByCategory totals expense amounts per category, largest first.
// Ties are ordered by category name.
func ExpenseByCategory(transactions []domain.Transaction) []domain.CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != domain.Expense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	out := make([]domain.CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		out = append(out, domain.CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// FuelEfficiency returns the distance covered per liter between the first and
// last full-tank logs, counting the liters of every log after the first full
// tank. It is zero when there are fewer than two full-tank logs.
func FuelEfficiency(v domain.Vehicle) decimal.Decimal {
	first, last := -1, -1
	for i, l := range v.FuelLogs {
		if !l.IsFullTank {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 || last == first {
		return decimal.Zero
	}
	liters := decimal.Zero
	for _, l := range v.FuelLogs[first+1 : last+1] {
		liters = liters.Add(l.Liters)
	}
	distance := v.FuelLogs[last].Odometer.Sub(v.FuelLogs[first].Odometer)
	if !liters.IsPositive() || distance.IsNegative() {
		return decimal.Zero
	}
	return distance.DivRound(liters, 2)
}
