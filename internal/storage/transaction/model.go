package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Transaction represents a transaction record. Amount is always positive; Type carries the sign.
type Transaction struct {
	ID                uuid.UUID
	AccountID         uuid.UUID
	OwnerID           uuid.UUID
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

// Entry is the part of the record the reconciler needs.
func (t *Transaction) Entry() ledger.Entry {
	return ledger.Entry{
		ID:        t.ID,
		AccountID: t.AccountID,
		Type:      t.Type,
		Amount:    t.Amount,
	}
}

// TransactionCreate is the input for inserting a transaction.
type TransactionCreate struct {
	AccountID         uuid.UUID
	OwnerID           uuid.UUID
	Type              ledger.TransactionType
	Amount            decimal.Decimal
	Description       string
	Category          string
	Date              time.Time
	IsRecurring       bool
	RecurringInterval *ledger.RecurringInterval
	NextRecurringDate *time.Time
}

// TransactionUpdate is a partial update. Unset fields are left as stored.
type TransactionUpdate struct {
	AccountID         omit.Val[uuid.UUID]
	Type              omit.Val[ledger.TransactionType]
	Amount            omit.Val[decimal.Decimal]
	Description       omit.Val[string]
	Category          omit.Val[string]
	Date              omit.Val[time.Time]
	IsRecurring       omit.Val[bool]
	RecurringInterval omitnull.Val[ledger.RecurringInterval]
	NextRecurringDate omitnull.Val[time.Time]
}

// SortField is a column transactions can be listed by.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
)

func (f SortField) Valid() bool {
	return f == SortByDate || f == SortByAmount || f == SortByCategory
}

// TransactionFilter selects a page of one account's transactions.
type TransactionFilter struct {
	OwnerID   uuid.UUID
	AccountID uuid.UUID
	// Search matches description case-insensitively.
	Search    string
	Type      *ledger.TransactionType
	Recurring *bool
	SortField SortField
	SortDesc  bool
	Limit     int
	Offset    int
}

// TransactionListResult is a page plus the number of rows matching the filter.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int
}

// IReader is the read side of the transaction store. Missing rows are ledger.ErrNotFound.
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) (*TransactionListResult, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error)
	SumExpenses(ctx context.Context, accountID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}

// IWriter is the transaction store as seen from inside an atomic unit.
//
//go:generate mockery --name IWriter --inpackage --with-expecter --filename mock_IWriter.go
type IWriter interface {
	IReader
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindOwnedForUpdate(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	DeleteByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int64, error)
}

var columns = []string{
	"id", "account_id", "owner_id", "type", "amount", "description", "category",
	"date", "is_recurring", "recurring_interval", "next_recurring_date",
	"created_at", "updated_at",
}

type transactionRow struct {
	ID                uuid.UUID       `db:"id"`
	AccountID         uuid.UUID       `db:"account_id"`
	OwnerID           uuid.UUID       `db:"owner_id"`
	Type              string          `db:"type"`
	Amount            decimal.Decimal `db:"amount"`
	Description       string          `db:"description"`
	Category          string          `db:"category"`
	Date              time.Time       `db:"date"`
	IsRecurring       bool            `db:"is_recurring"`
	RecurringInterval *string         `db:"recurring_interval"`
	NextRecurringDate *time.Time      `db:"next_recurring_date"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func rowToTransaction(row *transactionRow) *Transaction {
	t := &Transaction{
		ID:                row.ID,
		AccountID:         row.AccountID,
		OwnerID:           row.OwnerID,
		Type:              ledger.TransactionType(row.Type),
		Amount:            row.Amount,
		Description:       row.Description,
		Category:          row.Category,
		Date:              row.Date,
		IsRecurring:       row.IsRecurring,
		NextRecurringDate: row.NextRecurringDate,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
	if row.RecurringInterval != nil {
		interval := ledger.RecurringInterval(*row.RecurringInterval)
		t.RecurringInterval = &interval
	}
	return t
}

func rowsToTransactions(rows []*transactionRow) []*Transaction {
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result
}
