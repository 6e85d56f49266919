package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/shopspring/decimal"
)

// ErrAccountNotFound is returned when a transaction names an account the user does not own.
var ErrAccountNotFound = fmt.Errorf("%w: account not found", apperrors.ErrNotFound)

// ledgerService is the backend finance service. It owns the balance effects
// of transactions; clients only ever read balances.
type ledgerService struct {
	BaseService
	accountRepo      portsrepo.AccountRepositoryFacade
	transactionRepo  portsrepo.TransactionRepositoryFacade
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade

	// serializes posting so a transaction and its balance change land together
	postMu sync.Mutex
}

// NewLedgerService creates the backend finance service.
func NewLedgerService(
	accountRepo portsrepo.AccountRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade,
) portssvc.FinanceSvcFacade {
	return &ledgerService{
		accountRepo:      accountRepo,
		transactionRepo:  transactionRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func accountFromRequest(req dto.AccountRequest) domain.Account {
	acc := domain.Account{
		Name:             strings.TrimSpace(req.Name),
		Type:             req.Type,
		SubType:          req.SubType,
		Balance:          req.Balance,
		CreditLimit:      req.CreditLimit,
		InterestRate:     req.InterestRate,
		MonthlyPayment:   req.MonthlyPayment,
		PaymentFrequency: req.PaymentFrequency,
		CutoffDay:        req.CutoffDay,
		PaymentDay:       req.PaymentDay,
		Currency:         strings.ToUpper(req.Currency),
	}
	if acc.SubType == "" {
		acc.SubType = domain.NotAvailable
	}
	if acc.PaymentFrequency == "" {
		acc.PaymentFrequency = domain.Monthly
	}
	return acc
}

func (s *ledgerService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, userID)
}

func (s *ledgerService) CreateAccount(ctx context.Context, userID string, req dto.AccountRequest) (*domain.Account, error) {
	acc, err := s.accountRepo.SaveAccount(ctx, userID, accountFromRequest(req))
	if err != nil {
		s.LogError(ctx, err, "Failed to save account")
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	s.LogInfo(ctx, "Account created", slog.Int64("account_id", acc.ID))
	return &acc, nil
}

// UpdateAccount replaces the account details. The balance in req is ignored;
// balances only move through transactions.
func (s *ledgerService) UpdateAccount(ctx context.Context, userID string, accountID int64, req dto.AccountRequest) (*domain.Account, error) {
	acc := accountFromRequest(req)
	acc.ID = accountID
	if err := s.accountRepo.UpdateAccount(ctx, userID, acc); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, userID, accountID)
}

func (s *ledgerService) DeleteAccount(ctx context.Context, userID string, accountID int64) error {
	s.postMu.Lock()
	defer s.postMu.Unlock()
	if err := s.accountRepo.DeleteAccount(ctx, userID, accountID); err != nil {
		return err
	}
	return s.transactionRepo.DeleteTransactionsByAccount(ctx, userID, accountID)
}

func (s *ledgerService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txs, err := s.transactionRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}
	for i := range txs {
		txs[i].AccountName = names[txs[i].AccountID]
	}
	return txs, nil
}

// balanceDelta is how a transaction moves its account: income adds, every
// other type takes money out.
func balanceDelta(tx domain.Transaction) decimal.Decimal {
	if tx.Type == domain.Income {
		return tx.Amount
	}
	return tx.Amount.Neg()
}

// CreateTransaction stores the transaction and applies its balance effect.
func (s *ledgerService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	s.postMu.Lock()
	defer s.postMu.Unlock()

	acc, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	tx := domain.Transaction{
		AccountID:      req.AccountID,
		Type:           req.Type,
		Amount:         req.Amount,
		Category:       strings.TrimSpace(req.Category),
		Description:    req.Description,
		Date:           req.Date,
		SubscriptionID: req.SubscriptionID,
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}

	// The balance moves first and is reverted if the transaction cannot be stored,
	// so a stored transaction always carries its balance effect.
	delta := balanceDelta(tx)
	if err := s.accountRepo.AdjustBalance(ctx, userID, acc.ID, delta); err != nil {
		return nil, fmt.Errorf("failed to apply balance change: %w", err)
	}
	saved, err := s.transactionRepo.SaveTransaction(ctx, userID, tx)
	if err != nil {
		if rerr := s.accountRepo.AdjustBalance(ctx, userID, acc.ID, delta.Neg()); rerr != nil {
			s.LogError(ctx, rerr, "Failed to revert balance change", slog.Int64("account_id", acc.ID))
		}
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	saved.AccountName = acc.Name
	s.LogInfo(ctx, "Transaction posted",
		slog.Int64("transaction_id", saved.ID),
		slog.Int64("account_id", acc.ID),
		slog.String("type", string(saved.Type)),
		slog.String("amount", saved.Amount.String()),
	)
	return &saved, nil
}

func subscriptionFromRequest(req dto.SubscriptionRequest) domain.Subscription {
	return domain.Subscription{
		Name:            strings.TrimSpace(req.Name),
		Amount:          req.Amount,
		Currency:        strings.ToUpper(req.Currency),
		Frequency:       req.Frequency,
		Kind:            req.Kind,
		IsVariable:      req.IsVariable,
		NextPaymentDate: req.NextPaymentDate,
		LastPaymentDate: req.LastPaymentDate,
		AccountID:       req.AccountID,
	}
}

func (s *ledgerService) ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	return s.subscriptionRepo.ListSubscriptions(ctx, userID)
}

func (s *ledgerService) CreateSubscription(ctx context.Context, userID string, req dto.SubscriptionRequest) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.SaveSubscription(ctx, userID, subscriptionFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return &sub, nil
}

func (s *ledgerService) UpdateSubscription(ctx context.Context, userID string, subscriptionID int64, req dto.SubscriptionRequest) (*domain.Subscription, error) {
	sub := subscriptionFromRequest(req)
	sub.ID = subscriptionID
	if err := s.subscriptionRepo.UpdateSubscription(ctx, userID, sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *ledgerService) DeleteSubscription(ctx context.Context, userID string, subscriptionID int64) error {
	return s.subscriptionRepo.DeleteSubscription(ctx, userID, subscriptionID)
}
