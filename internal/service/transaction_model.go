package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID                uuid.UUID
	AccountID         uuid.UUID
	Type              ledger.TransactionType
	Amount            decimal.Decimal
	Description       string
	Category          string
	Date              time.Time
	IsRecurring       bool
	RecurringInterval *ledger.RecurringInterval
	NextRecurringDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTransaction is the input for CreateTransaction. A zero Date means now.
type NewTransaction struct {
	AccountID         uuid.UUID
	Type              ledger.TransactionType
	Amount            decimal.Decimal
	Description       string
	Category          string
	Date              time.Time
	IsRecurring       bool
	RecurringInterval *ledger.RecurringInterval
}

// TransactionPatch is the input for UpdateTransaction. Unset fields keep their
// stored value; a null RecurringInterval clears it.
type TransactionPatch struct {
	AccountID         omit.Val[uuid.UUID]
	Type              omit.Val[ledger.TransactionType]
	Amount            omit.Val[decimal.Decimal]
	Description       omit.Val[string]
	Category          omit.Val[string]
	Date              omit.Val[time.Time]
	IsRecurring       omit.Val[bool]
	RecurringInterval omitnull.Val[ledger.RecurringInterval]
}

func (p TransactionPatch) toStorage() transaction.TransactionUpdate {
	return transaction.TransactionUpdate{
		AccountID:         p.AccountID,
		Type:              p.Type,
		Amount:            p.Amount,
		Description:       p.Description,
		Category:          p.Category,
		Date:              p.Date,
		IsRecurring:       p.IsRecurring,
		RecurringInterval: p.RecurringInterval,
	}
}

// BulkDeleteResult reports what a bulk delete removed. AffectedAccountIDs lists
// every account that lost at least one transaction, in sorted order.
type BulkDeleteResult struct {
	Success            bool
	DeletedCount       int
	AffectedAccountIDs []uuid.UUID
}

func transactionFromStorage(row *transaction.Transaction) *Transaction {
	return &Transaction{
		ID:                row.ID,
		AccountID:         row.AccountID,
		Type:              row.Type,
		Amount:            row.Amount,
		Description:       row.Description,
		Category:          row.Category,
		Date:              row.Date,
		IsRecurring:       row.IsRecurring,
		RecurringInterval: row.RecurringInterval,
		NextRecurringDate: row.NextRecurringDate,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
