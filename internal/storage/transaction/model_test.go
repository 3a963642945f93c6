package transaction

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

func TestTransaction_Entry(t *testing.T) {
	tx := &Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		AccountID:   uuid.Must(uuid.NewV4()),
		OwnerID:     uuid.Must(uuid.NewV4()),
		Type:        ledger.TransactionTypeExpense,
		Amount:      decimal.RequireFromString("19.99"),
		Description: "Groceries",
	}

	entry := tx.Entry()
	assert.Equal(t, tx.ID, entry.ID)
	assert.Equal(t, tx.AccountID, entry.AccountID)
	assert.Equal(t, ledger.TransactionTypeExpense, entry.Type)
	assert.True(t, entry.Amount.Equal(tx.Amount))
}

func TestRowToTransaction_RecurringInterval(t *testing.T) {
	monthly := "MONTHLY"
	next := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tx := rowToTransaction(&transactionRow{
		Type:              "INCOME",
		IsRecurring:       true,
		RecurringInterval: &monthly,
		NextRecurringDate: &next,
	})
	if assert.NotNil(t, tx.RecurringInterval) {
		assert.Equal(t, ledger.RecurringMonthly, *tx.RecurringInterval)
	}
	assert.Equal(t, &next, tx.NextRecurringDate)

	oneOff := rowToTransaction(&transactionRow{Type: "EXPENSE"})
	assert.Nil(t, oneOff.RecurringInterval)
	assert.Nil(t, oneOff.NextRecurringDate)
}

func TestSortField_Valid(t *testing.T) {
	assert.True(t, SortByDate.Valid())
	assert.True(t, SortByAmount.Valid())
	assert.True(t, SortByCategory.Valid())
	assert.False(t, SortField("description").Valid())
	assert.False(t, SortField("").Valid())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "coffee", escapeLike("coffee"))
	assert.Equal(t, `50\% off`, escapeLike("50% off"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\temp`, escapeLike(`c:\temp`))
}
