package mapping_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/utils/accounting"
	"github.com/SscSPs/lifedash/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNormalizeAccounts_ColorsCycleByPosition(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":1,"name":"A"},{"id":2,"name":"B"},{"id":3,"name":"C"},
		{"id":4,"name":"A"},{"id":5,"name":"B"},{"id":6,"name":"C"},
		{"id":7,"name":"A"}
	]`)

	accounts := mapping.NormalizeAccounts(raw)

	require.Len(t, accounts, 7)
	p := domain.AccountPalette
	want := []string{p[0], p[1], p[2], p[3], p[4], p[5], p[0]}
	got := make([]string, len(accounts))
	for i, a := range accounts {
		got[i] = a.Color
	}
	assert.Equal(t, want, got)

	// same ordering, same colors
	again := mapping.NormalizeAccounts(raw)
	for i := range accounts {
		assert.Equal(t, accounts[i].Color, again[i].Color)
	}
}

func TestNormalizeAccounts_MixedCasingAndStringNumbers(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":"12","name":"Nu Crédito","type":"card","subType":"credit","balance":"-2100.00",
		 "creditLimit":"15000","interest_rate":"45.5","monthlyPayment":null,"payment_frequency":"biweekly",
		 "cutoffDay":"15","payment_day":5,"currency":"MXN"},
		{"id":13,"name":"Efectivo","type":"wallet","balance":"n/a","cutoff_day":45}
	]`)

	accounts := mapping.NormalizeAccounts(raw)
	require.Len(t, accounts, 2)

	card := accounts[0]
	assert.Equal(t, int64(12), card.ID)
	assert.Equal(t, domain.Card, card.Type)
	assert.Equal(t, domain.Credit, card.SubType)
	assert.True(t, dec("-2100").Equal(card.Balance))
	assert.True(t, dec("15000").Equal(card.CreditLimit))
	assert.True(t, dec("45.5").Equal(card.InterestRate))
	assert.True(t, card.MonthlyPayment.IsZero())
	assert.Equal(t, domain.Biweekly, card.PaymentFrequency)
	assert.Equal(t, 15, card.CutoffDay)
	assert.Equal(t, 5, card.PaymentDay)
	assert.Equal(t, "MXN", card.Currency)

	cash := accounts[1]
	assert.Equal(t, domain.Cash, cash.Type, "unknown type defaults to cash")
	assert.Equal(t, domain.NotAvailable, cash.SubType)
	assert.Equal(t, domain.Monthly, cash.PaymentFrequency)
	assert.True(t, cash.Balance.IsZero(), "malformed balance coerces to zero")
	assert.Equal(t, 0, cash.CutoffDay, "out of range day is unset")
	assert.True(t, cash.InterestRate.IsZero())
}

func TestNormalizeAccounts_NonArrayPayload(t *testing.T) {
	assert.Empty(t, mapping.NormalizeAccounts(json.RawMessage(`{"id":1}`)))
	assert.Empty(t, mapping.NormalizeAccounts(nil))
	assert.Len(t, mapping.NormalizeAccounts(json.RawMessage(`[1,"x",{"id":3}]`)), 1)
}

func TestNormalizeTransactions(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":1,"accountId":3,"type":"expense","amount":"120.50","category":"Comida",
		 "description":"Tacos","date":"2026-03-01T12:30:00Z","account":{"id":3,"name":"BBVA Nómina","balance":"10"}},
		{"id":2,"account_id":"4","type":"income","amount":15000,"category":"Salario",
		 "date":"2026-02-28","subscription_id":9},
		{"id":3,"accountId":4,"type":"mystery","amount":"abc","date":"yesterday"}
	]`)

	txs := mapping.NormalizeTransactions(raw)
	require.Len(t, txs, 3)

	assert.Equal(t, "BBVA Nómina", txs[0].AccountName)
	assert.True(t, dec("120.5").Equal(txs[0].Amount))
	assert.Equal(t, time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC), txs[0].Date)
	assert.Nil(t, txs[0].SubscriptionID)

	assert.Equal(t, int64(4), txs[1].AccountID)
	assert.Equal(t, domain.Income, txs[1].Type)
	assert.True(t, dec("15000").Equal(txs[1].Amount))
	require.NotNil(t, txs[1].SubscriptionID)
	assert.Equal(t, int64(9), *txs[1].SubscriptionID)

	assert.Equal(t, domain.TransactionType("mystery"), txs[2].Type)
	assert.False(t, txs[2].Type.Valid())
	assert.True(t, txs[2].Amount.IsZero())
	assert.True(t, txs[2].Date.IsZero())
}

func TestNormalizeSubscriptions(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":1,"name":"Gym","amount":"1200","currency":"MXN","frequency":"yearly","type":"membership",
		 "is_variable":"true","next_payment_date":"2026-11-01","account_id":2},
		{"id":2,"name":"Streaming","amount":199,"frequency":"weekly","kind":"other"}
	]`)

	subs := mapping.NormalizeSubscriptions(raw)
	require.Len(t, subs, 2)
	assert.Equal(t, domain.BilledYearly, subs[0].Frequency)
	assert.Equal(t, domain.Membership, subs[0].Kind)
	assert.True(t, subs[0].IsVariable)
	require.NotNil(t, subs[0].NextPaymentDate)
	assert.Nil(t, subs[0].LastPaymentDate)
	require.NotNil(t, subs[0].AccountID)

	assert.Equal(t, domain.BilledMonthly, subs[1].Frequency)
	assert.Equal(t, domain.Service, subs[1].Kind)
	assert.False(t, subs[1].IsVariable)
	assert.Nil(t, subs[1].AccountID)
}

func TestNormalizeVehicles_NestedFuelLogs(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":5,"name":"Vocho","plate":"ABC-123","year":"1998","logs":[
			{"id":1,"date":"2026-01-10","odometer":"120500","liters":"35.2","price_per_liter":"23.99",
			 "total_cost":"844.45","is_full_tank":true,"tank_level_before":"0.25"},
			{"id":2,"vehicleId":5,"odometer":"bad","liters":40}
		]},
		{"id":6,"name":"Moto"}
	]`)

	vehicles := mapping.NormalizeVehicles(raw)
	require.Len(t, vehicles, 2)
	v := vehicles[0]
	assert.Equal(t, 1998, v.Year)
	require.Len(t, v.FuelLogs, 2)

	first := v.FuelLogs[0]
	assert.Equal(t, int64(5), first.VehicleID, "back-reference filled from owner")
	assert.True(t, dec("120500").Equal(first.Odometer))
	assert.True(t, dec("35.2").Equal(first.Liters))
	assert.True(t, dec("23.99").Equal(first.PricePerLiter))
	assert.True(t, dec("844.45").Equal(first.TotalCost))
	assert.True(t, first.IsFullTank)
	require.NotNil(t, first.TankLevelBefore)
	assert.Nil(t, first.TankLevelAfter)

	assert.True(t, v.FuelLogs[1].Odometer.IsZero())
	assert.True(t, dec("40").Equal(v.FuelLogs[1].Liters))

	assert.Empty(t, vehicles[1].FuelLogs)
	assert.NotNil(t, vehicles[1].FuelLogs)
}

func TestNormalizeTasks(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":1,"title":"Taxes","duration_minutes":"90","deadline":"2026-04-30T18:00","auto_distribute":1,
		 "status":"in_progress","budget":"500","priority":2,
		 "schedule":[{"start":"2026-04-01T09:00","duration_minutes":45}]},
		{"id":2,"title":"Oil change","status":"someday"}
	]`)

	tasks := mapping.NormalizeTasks(raw)
	require.Len(t, tasks, 2)
	assert.Equal(t, 90, tasks[0].DurationMinutes)
	assert.Equal(t, time.Date(2026, 4, 30, 18, 0, 0, 0, time.UTC), tasks[0].Deadline)
	assert.True(t, tasks[0].AutoDistribute)
	assert.Equal(t, domain.InProgress, tasks[0].Status)
	require.NotNil(t, tasks[0].Priority)
	assert.Equal(t, 2, *tasks[0].Priority)
	require.Len(t, tasks[0].Schedule, 1)
	assert.Equal(t, 45, tasks[0].Schedule[0].DurationMinutes)

	assert.Equal(t, domain.Pending, tasks[1].Status)
	assert.Nil(t, tasks[1].Priority)
}

func TestNormalizeAuth(t *testing.T) {
	token, user := mapping.NormalizeAuth(json.RawMessage(`{"token":"abc","user":{"id":42,"email":"a@b.mx"}}`))
	assert.Equal(t, "abc", token)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "a@b.mx", user.Email)

	token, user = mapping.NormalizeAuth(json.RawMessage(`"nope"`))
	assert.Empty(t, token)
	assert.Equal(t, domain.User{}, user)
}

func TestNormalizeTransactions_UnknownTypeAndSignedAmountAreKept(t *testing.T) {
	txs := mapping.NormalizeTransactions(json.RawMessage(`[
		{"id":1,"type":"income","amount":1000},
		{"id":2,"type":"refund","amount":300},
		{"id":3,"type":"expense","amount":"-40"}
	]`))
	require.Len(t, txs, 3)

	assert.Equal(t, domain.TransactionType("refund"), txs[1].Type)
	assert.True(t, dec("-40").Equal(txs[2].Amount))

	assert.True(t, dec("-40").Equal(accounting.TotalExpense(txs)))
	assert.True(t, dec("1040").Equal(accounting.NetBudget(txs)))
	assert.True(t, txs[1].SignedAmount().IsZero())
}
