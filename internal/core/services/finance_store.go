package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/core/ports"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/utils/accounting"
	"github.com/SscSPs/lifedash/internal/utils/mapping"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	accountsPath      = "finance/accounts"
	transactionsPath  = "finance/transactions"
	subscriptionsPath = "finance/subscriptions"
)

// FinanceStore mirrors accounts, transactions and subscriptions and derives
// the financial metrics from them on every read.
type FinanceStore struct {
	BaseService
	gw        ports.Gateway
	validator *validator.Validate

	Accounts      *Collection[domain.Account]
	Transactions  *Collection[domain.Transaction]
	Subscriptions *Collection[domain.Subscription]
	Categories    *CategorySet
}

func NewFinanceStore(gw ports.Gateway) *FinanceStore {
	return &FinanceStore{
		gw:            gw,
		validator:     newRequestValidator(),
		Accounts:      NewCollection[domain.Account](),
		Transactions:  NewCollection[domain.Transaction](),
		Subscriptions: NewCollection[domain.Subscription](),
		Categories:    NewCategorySet(DefaultCategories...),
	}
}

func (s *FinanceStore) validate(req any) error {
	return validateRequest(s.validator, req)
}

func (s *FinanceStore) FetchAccounts(ctx context.Context) error {
	return fetchInto(ctx, &s.BaseService, s.gw, s.Accounts, accountsPath, mapping.NormalizeAccounts)
}

// FetchTransactions also feeds every category seen into the category set.
func (s *FinanceStore) FetchTransactions(ctx context.Context) error {
	if err := fetchInto(ctx, &s.BaseService, s.gw, s.Transactions, transactionsPath, mapping.NormalizeTransactions); err != nil {
		return err
	}
	for _, tx := range s.Transactions.Items() {
		s.Categories.Add(tx.Category)
	}
	return nil
}

func (s *FinanceStore) FetchSubscriptions(ctx context.Context) error {
	return fetchInto(ctx, &s.BaseService, s.gw, s.Subscriptions, subscriptionsPath, mapping.NormalizeSubscriptions)
}

func (s *FinanceStore) CreateAccount(ctx context.Context, req dto.AccountRequest) error {
	if err := write(ctx, &s.BaseService, s.gw, s.Accounts, s.validate, http.MethodPost, accountsPath, req); err != nil {
		return err
	}
	return s.FetchAccounts(ctx)
}

func (s *FinanceStore) UpdateAccount(ctx context.Context, id int64, req dto.AccountRequest) error {
	if err := write(ctx, &s.BaseService, s.gw, s.Accounts, s.validate, http.MethodPut, fmt.Sprintf("%s/%d", accountsPath, id), req); err != nil {
		return err
	}
	return s.FetchAccounts(ctx)
}

// DeleteAccount refetches transactions too since the server may cascade.
func (s *FinanceStore) DeleteAccount(ctx context.Context, id int64) error {
	if err := write[domain.Account](ctx, &s.BaseService, s.gw, s.Accounts, nil, http.MethodDelete, fmt.Sprintf("%s/%d", accountsPath, id), nil); err != nil {
		return err
	}
	return firstErr(s.FetchAccounts(ctx), s.FetchTransactions(ctx))
}

// AddTransaction posts a transaction and refetches transactions and the
// accounts whose balances the server adjusted.
func (s *FinanceStore) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) error {
	if err := write(ctx, &s.BaseService, s.gw, s.Transactions, s.validate, http.MethodPost, transactionsPath, req); err != nil {
		return err
	}
	s.Categories.Add(req.Category)
	return firstErr(s.FetchTransactions(ctx), s.FetchAccounts(ctx))
}

func (s *FinanceStore) CreateSubscription(ctx context.Context, req dto.SubscriptionRequest) error {
	if err := write(ctx, &s.BaseService, s.gw, s.Subscriptions, s.validate, http.MethodPost, subscriptionsPath, req); err != nil {
		return err
	}
	return s.FetchSubscriptions(ctx)
}

func (s *FinanceStore) UpdateSubscription(ctx context.Context, id int64, req dto.SubscriptionRequest) error {
	if err := write(ctx, &s.BaseService, s.gw, s.Subscriptions, s.validate, http.MethodPut, fmt.Sprintf("%s/%d", subscriptionsPath, id), req); err != nil {
		return err
	}
	return s.FetchSubscriptions(ctx)
}

func (s *FinanceStore) DeleteSubscription(ctx context.Context, id int64) error {
	if err := write[domain.Subscription](ctx, &s.BaseService, s.gw, s.Subscriptions, nil, http.MethodDelete, fmt.Sprintf("%s/%d", subscriptionsPath, id), nil); err != nil {
		return err
	}
	return s.FetchSubscriptions(ctx)
}

// AddCategory registers a category locally; there is no server endpoint.
func (s *FinanceStore) AddCategory(name string) bool {
	return s.Categories.Add(name)
}

func (s *FinanceStore) TotalIncome() decimal.Decimal {
	return accounting.TotalIncome(s.Transactions.Items())
}

func (s *FinanceStore) TotalExpense() decimal.Decimal {
	return accounting.TotalExpense(s.Transactions.Items())
}

func (s *FinanceStore) TotalBalance() decimal.Decimal {
	return accounting.TotalBalance(s.Accounts.Items())
}

func (s *FinanceStore) NetBudget() decimal.Decimal {
	return accounting.NetBudget(s.Transactions.Items())
}

func (s *FinanceStore) TotalFixedExpenses() decimal.Decimal {
	return accounting.TotalFixedExpenses(s.Subscriptions.Items())
}

// Summary derives every metric from the current snapshots.
func (s *FinanceStore) Summary() domain.FinancialSummary {
	return accounting.Summarize(s.Accounts.Items(), s.Transactions.Items(), s.Subscriptions.Items())
}

func (s *FinanceStore) ExpenseByCategory() []domain.CategoryAmount {
	return accounting.ExpenseByCategory(s.Transactions.Items())
}
