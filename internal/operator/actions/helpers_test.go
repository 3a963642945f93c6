package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type nopCommitter struct{}

func (nopCommitter) Commit(context.Context) error   { return nil }
func (nopCommitter) Rollback(context.Context) error { return nil }

type testStores struct {
	accounts     *account.MockIWriter
	transactions *transaction.MockIWriter
	budgets      *budget.MockIWriter
}

func newTestWriter(t *testing.T) (*storage.Writer, testStores) {
	t.Helper()
	stores := testStores{
		accounts:     account.NewMockIWriter(t),
		transactions: transaction.NewMockIWriter(t),
		budgets:      budget.NewMockIWriter(t),
	}
	return storage.NewWriterFrom(nopCommitter{}, stores.accounts, stores.transactions, stores.budgets), stores
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func storedTransaction(ownerID, accountID uuid.UUID, t ledger.TransactionType, amount string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:        newID(),
		AccountID: accountID,
		OwnerID:   ownerID,
		Type:      t,
		Amount:    dec(amount),
	}
}

// decEq matches a decimal argument by value rather than representation.
func decEq(want string) func(decimal.Decimal) bool {
	return func(got decimal.Decimal) bool {
		return got.Equal(dec(want))
	}
}
