package mapping

import (
	"encoding/json"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

var transactionSchema = struct {
	ID, AccountID, Type, Amount, Category, Description, Date, SubscriptionID,
	Account, AccountName aliases
}{
	ID:             aliases{"id", "transaction_id", "transactionId"},
	AccountID:      aliases{"accountId", "account_id"},
	Type:           aliases{"type", "transaction_type", "transactionType"},
	Amount:         aliases{"amount"},
	Category:       aliases{"category"},
	Description:    aliases{"description", "notes"},
	Date:           aliases{"date", "transaction_date", "transactionDate", "created_at", "createdAt"},
	SubscriptionID: aliases{"subscriptionId", "subscription_id"},
	Account:        aliases{"account", "Account"},
	AccountName:    aliases{"accountName", "account_name"},
}

// NormalizeTransactions converts a wire list of transactions. An embedded
// account object is reduced to its display name.
func NormalizeTransactions(raw json.RawMessage) []domain.Transaction {
	items := decodeList(raw)
	txs := make([]domain.Transaction, 0, len(items))
	for _, item := range items {
		txs = append(txs, toDomainTransaction(item))
	}
	return txs
}

func toDomainTransaction(o rawObject) domain.Transaction {
	s := transactionSchema
	tx := domain.Transaction{
		ID:             o.int64(s.ID),
		AccountID:      o.int64(s.AccountID),
		Type:           domain.TransactionType(o.str(s.Type)),
		Amount:         o.decimal(s.Amount),
		Category:       o.str(s.Category),
		Description:    o.str(s.Description),
		Date:           o.time(s.Date),
		SubscriptionID: o.optInt64(s.SubscriptionID),
		AccountName:    o.str(s.AccountName),
	}
	if acc := o.object(s.Account); acc != nil {
		if name := acc.str(accountSchema.Name); name != "" {
			tx.AccountName = name
		}
		if tx.AccountID == 0 {
			tx.AccountID = acc.int64(accountSchema.ID)
		}
	}
	// An unrecognized type is kept as sent. It fails Valid and no total counts it.
	return tx
}
