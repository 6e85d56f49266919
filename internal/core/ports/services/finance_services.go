package services

import (
	"context"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/dto"
)

// FinanceSvcFacade owns accounts, transactions and subscriptions, including
// the balance effects of transactions.
type FinanceSvcFacade interface {
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	CreateAccount(ctx context.Context, userID string, req dto.AccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, userID string, accountID int64, req dto.AccountRequest) (*domain.Account, error)
	// DeleteAccount also removes the account's transactions.
	DeleteAccount(ctx context.Context, userID string, accountID int64) error

	// ListTransactions returns transactions newest first with AccountName filled in.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)
	CreateSubscription(ctx context.Context, userID string, req dto.SubscriptionRequest) (*domain.Subscription, error)
	UpdateSubscription(ctx context.Context, userID string, subscriptionID int64, req dto.SubscriptionRequest) (*domain.Subscription, error)
	DeleteSubscription(ctx context.Context, userID string, subscriptionID int64) error
}

// GarageSvcFacade owns vehicles and fuel logs.
type GarageSvcFacade interface {
	ListVehicles(ctx context.Context, userID string) ([]domain.Vehicle, error)
	CreateVehicle(ctx context.Context, userID string, req dto.CreateVehicleRequest) (*domain.Vehicle, error)
	// AddFuelLog posts an expense against req.AccountID when it is set.
	AddFuelLog(ctx context.Context, userID string, req dto.CreateFuelLogRequest) (*domain.FuelLog, error)
}

// TaskSvcFacade owns tasks.
type TaskSvcFacade interface {
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, userID string, req dto.TaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, userID string, taskID int64, req dto.TaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID string, taskID int64) error
}
