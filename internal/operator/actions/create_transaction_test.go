package actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func TestCreateTransaction_InsertsAndIncrements(t *testing.T) {
	writer, stores := newTestWriter(t)
	owner, accountID := newID(), newID()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	stores.accounts.EXPECT().FindByID(mock.Anything, accountID).Return(&account.Account{ID: accountID, OwnerID: owner}, nil)
	stores.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.OwnerID == owner && c.AccountID == accountID && c.Date.Equal(date) && c.NextRecurringDate == nil
	})).RunAndReturn(func(_ context.Context, c *transaction.TransactionCreate) (*transaction.Transaction, error) {
		return &transaction.Transaction{ID: newID(), AccountID: c.AccountID, OwnerID: c.OwnerID, Type: c.Type, Amount: c.Amount, Date: c.Date}, nil
	})
	stores.accounts.EXPECT().IncrementBalance(mock.Anything, accountID, mock.MatchedBy(decEq("-42.50"))).Return(nil)

	action := &CreateTransaction{
		OwnerID:   owner,
		AccountID: accountID,
		Type:      ledger.TransactionTypeExpense,
		Amount:    dec("42.50"),
		Date:      date,
	}
	assert.NoError(t, action.Perform(context.Background(), writer))
	assert.NotNil(t, action.Result)
}

func TestCreateTransaction_RecurringSetsNextDate(t *testing.T) {
	writer, stores := newTestWriter(t)
	owner, accountID := newID(), newID()
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	monthly := ledger.RecurringMonthly

	stores.accounts.EXPECT().FindByID(mock.Anything, accountID).Return(&account.Account{ID: accountID, OwnerID: owner}, nil)
	stores.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.NextRecurringDate != nil && c.NextRecurringDate.Equal(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC))
	})).Return(&transaction.Transaction{ID: newID(), AccountID: accountID, OwnerID: owner, Type: ledger.TransactionTypeIncome, Amount: dec("3000")}, nil)
	stores.accounts.EXPECT().IncrementBalance(mock.Anything, accountID, mock.MatchedBy(decEq("3000"))).Return(nil)

	action := &CreateTransaction{
		OwnerID:           owner,
		AccountID:         accountID,
		Type:              ledger.TransactionTypeIncome,
		Amount:            dec("3000"),
		Date:              date,
		IsRecurring:       true,
		RecurringInterval: &monthly,
	}
	assert.NoError(t, action.Perform(context.Background(), writer))
}

func TestCreateTransaction_ForeignAccount(t *testing.T) {
	writer, stores := newTestWriter(t)
	owner, accountID := newID(), newID()

	stores.accounts.EXPECT().FindByID(mock.Anything, accountID).Return(&account.Account{ID: accountID, OwnerID: newID()}, nil)

	action := &CreateTransaction{OwnerID: owner, AccountID: accountID, Type: ledger.TransactionTypeIncome, Amount: dec("1")}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ledger.ErrForbidden)
}

func TestCreateTransaction_Validation(t *testing.T) {
	daily := ledger.RecurringDaily
	tests := []struct {
		name   string
		action CreateTransaction
		want   error
	}{
		{"zero amount", CreateTransaction{Type: ledger.TransactionTypeIncome, Amount: dec("0")}, ledger.ErrInvalidAmount},
		{"negative amount", CreateTransaction{Type: ledger.TransactionTypeExpense, Amount: dec("-3")}, ledger.ErrInvalidAmount},
		{"unknown type", CreateTransaction{Type: "TRANSFER", Amount: dec("3")}, ledger.ErrInvalidTransactionKind},
		{"interval without recurrence", CreateTransaction{Type: ledger.TransactionTypeIncome, Amount: dec("3"), RecurringInterval: &daily}, ledger.ErrInvalidRecurrence},
		{"recurrence without interval", CreateTransaction{Type: ledger.TransactionTypeIncome, Amount: dec("3"), IsRecurring: true}, ledger.ErrInvalidRecurrence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, _ := newTestWriter(t)
			action := tt.action
			action.OwnerID = newID()
			action.AccountID = newID()
			assert.ErrorIs(t, action.Perform(context.Background(), writer), tt.want)
		})
	}
}
